package catalog

import (
	"context"
	"testing"

	"github.com/dishalabs/disha/internal/riasec"
)

func TestStreamMatchesRankFirst(t *testing.T) {
	c := NewStatic()
	got, err := c.Courses(context.Background(), "Commerce", []riasec.Domain{riasec.Enterprising}, 10)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("no courses returned")
	}
	for i := 0; i < 3 && i < len(got); i++ {
		if got[i].Stream != "Commerce" {
			t.Errorf("course %d = %s (%s), want Commerce first", i, got[i].Code, got[i].Stream)
		}
	}
}

func TestDomainOverlapIncluded(t *testing.T) {
	c := NewStatic()
	got, err := c.Courses(context.Background(), "Fine Arts", []riasec.Domain{riasec.Social}, 20)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	var sawOverlap bool
	for _, course := range got {
		if course.Stream != "Fine Arts" {
			sawOverlap = true
		}
	}
	if !sawOverlap {
		t.Error("expected domain-overlap courses after stream matches")
	}
}

func TestLimitAndDeterminism(t *testing.T) {
	c := NewStatic()
	a, _ := c.Courses(context.Background(), "Science (PCM)", []riasec.Domain{riasec.Realistic, riasec.Investigative}, 4)
	b, _ := c.Courses(context.Background(), "Science (PCM)", []riasec.Domain{riasec.Realistic, riasec.Investigative}, 4)

	if len(a) > 4 {
		t.Errorf("limit ignored: got %d courses", len(a))
	}
	if len(a) != len(b) {
		t.Fatal("non-deterministic result size")
	}
	for i := range a {
		if a[i].Code != b[i].Code {
			t.Errorf("position %d differs: %s vs %s", i, a[i].Code, b[i].Code)
		}
	}
}

func TestUnknownStreamStillReturnsDomainMatches(t *testing.T) {
	c := NewStatic()
	got, err := c.Courses(context.Background(), "no-such-stream", []riasec.Domain{riasec.Artistic}, 0)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(got) == 0 {
		t.Error("expected domain-based fallback matches")
	}
}
