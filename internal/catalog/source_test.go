package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testSource() *SampleSource {
	s := NewSampleSource()
	// No artificial latency in tests.
	s.FetchAllDelay = 0
	s.FetchOneDelay = 0
	return s
}

func TestSampleSourceFetchAll(t *testing.T) {
	s := testSource()
	agents, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(agents) == 0 {
		t.Fatal("expected non-empty sample catalog")
	}
	for _, a := range agents {
		if a.ID == "" || a.Name == "" {
			t.Errorf("agent %+v missing identity", a)
		}
		if !a.Category.Valid() {
			t.Errorf("agent %q has unknown category %q", a.Name, a.Category)
		}
		if a.Rating < 0 || a.Rating > 5 {
			t.Errorf("agent %q rating %v out of range", a.Name, a.Rating)
		}
		if a.ReviewCount < 0 {
			t.Errorf("agent %q negative review count", a.Name)
		}
	}
}

func TestSampleSourceFetchAllReturnsCopy(t *testing.T) {
	s := testSource()
	first, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	first[0].Name = "mutated"
	second, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if second[0].Name == "mutated" {
		t.Fatal("FetchAll shares backing storage with callers")
	}
}

func TestSampleSourceFetchOne(t *testing.T) {
	s := testSource()
	want := s.Agents[0]
	got, err := s.FetchOne(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("FetchOne: %v", err)
	}
	if got == nil || got.Name != want.Name {
		t.Fatalf("FetchOne(%q) = %+v, want %q", want.ID, got, want.Name)
	}
}

func TestSampleSourceFetchOneAbsent(t *testing.T) {
	s := testSource()
	got, err := s.FetchOne(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("absent lookup should not error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}

func TestSampleSourceFailFetch(t *testing.T) {
	s := testSource()
	s.FailFetch = true
	if _, err := s.FetchAll(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("FetchAll err = %v, want ErrUnavailable", err)
	}
	if _, err := s.FetchOne(context.Background(), "x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("FetchOne err = %v, want ErrUnavailable", err)
	}
}

func TestSampleSourceHonorsContext(t *testing.T) {
	s := testSource()
	s.FetchAllDelay = time.Minute
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.FetchAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
