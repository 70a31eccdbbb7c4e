// Package catalog provides course recommendation candidates keyed by
// stream and domain signals. The engine treats it as an external
// collaborator: failures degrade to an empty list, never an error that
// blocks completion.
package catalog

import (
	"context"
	"sort"

	"github.com/dishalabs/disha/internal/riasec"
)

// Course is a recommendable course or program.
type Course struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Stream  string          `json:"stream"`
	Domains []riasec.Domain `json:"domains"`
}

// Reader returns recommendation candidates for a stream and domain profile.
type Reader interface {
	Courses(ctx context.Context, stream string, domains []riasec.Domain, limit int) ([]Course, error)
}

// Static is the built-in catalog. Stream matches rank ahead of
// domain-overlap matches; within a rank, course code order decides.
type Static struct {
	courses []Course
}

// NewStatic creates a catalog backed by the built-in course list.
func NewStatic() *Static {
	return &Static{courses: builtinCourses}
}

// DefaultLimit is the number of courses recommended when the caller does
// not say otherwise.
const DefaultLimit = 6

func (s *Static) Courses(_ context.Context, stream string, domains []riasec.Domain, limit int) ([]Course, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	wanted := make(map[riasec.Domain]bool, len(domains))
	for _, d := range domains {
		wanted[d] = true
	}

	type ranked struct {
		course Course
		rank   int
	}
	var matches []ranked
	for _, c := range s.courses {
		switch {
		case c.Stream == stream:
			matches = append(matches, ranked{c, 0})
		case overlaps(c.Domains, wanted):
			matches = append(matches, ranked{c, 1})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].course.Code < matches[j].course.Code
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Course, len(matches))
	for i, m := range matches {
		out[i] = m.course
	}
	return out, nil
}

func overlaps(domains []riasec.Domain, wanted map[riasec.Domain]bool) bool {
	for _, d := range domains {
		if wanted[d] {
			return true
		}
	}
	return false
}
