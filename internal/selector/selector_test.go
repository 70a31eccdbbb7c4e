package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
)

func q(id string, domains ...riasec.Domain) bank.Question {
	return bank.Question{ID: id, Domains: domains, Type: bank.TypeLikert}
}

func TestChooseNextExhaustion(t *testing.T) {
	s := New()

	if _, ok := s.ChooseNext(context.Background(), nil, nil, nil); ok {
		t.Error("empty pool should report exhaustion")
	}

	pool := []bank.Question{q("r-01", riasec.Realistic)}
	asked := map[string]bool{"r-01": true}
	if _, ok := s.ChooseNext(context.Background(), pool, asked, nil); ok {
		t.Error("fully asked pool should report exhaustion")
	}
}

func TestChooseNextNeverRepeats(t *testing.T) {
	s := New()
	pool := []bank.Question{
		q("r-01", riasec.Realistic),
		q("r-02", riasec.Realistic),
		q("i-01", riasec.Investigative),
	}

	asked := map[string]bool{}
	for range pool {
		id, ok := s.ChooseNext(context.Background(), pool, asked, nil)
		if !ok {
			t.Fatal("unexpected exhaustion")
		}
		if asked[id] {
			t.Fatalf("question %q chosen twice", id)
		}
		asked[id] = true
	}
	if _, ok := s.ChooseNext(context.Background(), pool, asked, nil); ok {
		t.Error("expected exhaustion after all questions asked")
	}
}

func TestUniformPriorityWithoutSnapshot(t *testing.T) {
	s := New()
	pool := []bank.Question{
		q("c-01", riasec.Conventional),
		q("r-01", riasec.Realistic),
	}
	// No snapshot: all domains tie at zero evidence, alphabet order puts R first.
	id, ok := s.ChooseNext(context.Background(), pool, nil, nil)
	if !ok || id != "r-01" {
		t.Errorf("chose %q, want r-01", id)
	}
}

func TestLeastEvidencedDomainPreferred(t *testing.T) {
	s := New()
	pool := []bank.Question{
		q("r-01", riasec.Realistic),
		q("r-02", riasec.Realistic),
		q("i-01", riasec.Investigative),
	}
	snap := &scoring.Snapshot{Domains: map[riasec.Domain]scoring.DomainScore{
		riasec.Realistic: {RawWeight: 2, Score: 80},
	}}

	id, ok := s.ChooseNext(context.Background(), pool, nil, snap)
	if !ok || id != "i-01" {
		t.Errorf("chose %q, want i-01 (I has no evidence yet)", id)
	}
}

func TestLowestIDTieBreak(t *testing.T) {
	s := New()
	pool := []bank.Question{
		q("r-03", riasec.Realistic),
		q("r-01", riasec.Realistic),
		q("r-02", riasec.Realistic),
	}
	id, ok := s.ChooseNext(context.Background(), pool, nil, nil)
	if !ok || id != "r-01" {
		t.Errorf("chose %q, want r-01", id)
	}
}

func TestReproducibleForSameHistory(t *testing.T) {
	s := New()
	pool := []bank.Question{
		q("r-01", riasec.Realistic),
		q("i-01", riasec.Investigative),
		q("a-01", riasec.Artistic),
		q("sc-01", riasec.Realistic, riasec.Investigative),
	}
	asked := map[string]bool{"r-01": true}
	snap := &scoring.Snapshot{Domains: map[riasec.Domain]scoring.DomainScore{
		riasec.Realistic: {RawWeight: 1, Score: 100},
	}}

	first, _ := s.ChooseNext(context.Background(), pool, asked, snap)
	for i := 0; i < 10; i++ {
		again, _ := s.ChooseNext(context.Background(), pool, asked, snap)
		if again != first {
			t.Fatalf("run %d chose %q, first run chose %q", i, again, first)
		}
	}
}

type stubChooser struct {
	id  string
	err error
}

func (c stubChooser) ChooseNextQuestionID(_ context.Context, _ ChooseInput) (string, error) {
	return c.id, c.err
}

func TestChooserAnswerUsedWhenEligible(t *testing.T) {
	s := New(WithChooser(stubChooser{id: "a-01"}))
	pool := []bank.Question{
		q("r-01", riasec.Realistic),
		q("a-01", riasec.Artistic),
	}
	id, ok := s.ChooseNext(context.Background(), pool, nil, nil)
	if !ok || id != "a-01" {
		t.Errorf("chose %q, want chooser's a-01", id)
	}
}

func TestChooserFallbacks(t *testing.T) {
	pool := []bank.Question{
		q("r-01", riasec.Realistic),
		q("a-01", riasec.Artistic),
	}

	// Chooser error: deterministic algorithm decides.
	s := New(WithChooser(stubChooser{err: errors.New("unavailable")}))
	id, ok := s.ChooseNext(context.Background(), pool, nil, nil)
	if !ok || id != "r-01" {
		t.Errorf("chose %q, want deterministic r-01 on chooser error", id)
	}

	// Chooser names an already-asked question: ignored.
	s = New(WithChooser(stubChooser{id: "r-01"}))
	id, ok = s.ChooseNext(context.Background(), pool, map[string]bool{"r-01": true}, nil)
	if !ok || id != "a-01" {
		t.Errorf("chose %q, want a-01 when chooser picks an asked id", id)
	}

	// Chooser invents an id: ignored.
	s = New(WithChooser(stubChooser{id: "zz-99"}))
	id, ok = s.ChooseNext(context.Background(), pool, nil, nil)
	if !ok || id != "r-01" {
		t.Errorf("chose %q, want r-01 when chooser invents an id", id)
	}
}
