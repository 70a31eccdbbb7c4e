package store

import (
	"context"
	"fmt"

	"github.com/dishalabs/disha/ent"
	"github.com/dishalabs/disha/ent/llmrequestevent"
)

type llmEventRepo struct {
	client *ent.Client
}

func (r *llmEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) Recent(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMEventRecord, len(rows))
	for i, row := range rows {
		out[i] = eventRecord(row)
	}
	return out, nil
}

func (r *llmEventRepo) Get(ctx context.Context, id int) (*LLMEventRecord, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := eventRecord(row)
	return &rec, nil
}

func eventRecord(row *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:           row.ID,
		Timestamp:    row.CreatedAt,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}

func (r *llmEventRepo) Usage(ctx context.Context) ([]ModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Requests     int    `json:"requests"`
		InputTokens  int    `json:"sum_input_tokens"`
		OutputTokens int    `json:"sum_output_tokens"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "requests"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage: %w", err)
	}

	out := make([]ModelUsage, len(rows))
	for i, row := range rows {
		out[i] = ModelUsage{
			Model:        row.Model,
			Requests:     row.Requests,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		}
	}
	return out, nil
}

func (r *llmEventRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"sum_input_tokens"`
		OutputTokens int     `json:"sum_output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by purpose: %w", err)
	}

	out := make([]PurposeUsage, len(rows))
	for i, row := range rows {
		out[i] = PurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		}
	}
	return out, nil
}
