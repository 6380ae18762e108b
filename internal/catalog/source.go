package catalog

import (
	"context"
	"errors"
	"time"
)

// Source supplies the agent catalog. Implementations may be remote or local;
// the browsing core only depends on this contract.
//
// FetchOne returns (nil, nil) when no agent has the given id — absence is not
// an error, only transport failures are.
type Source interface {
	FetchAll(ctx context.Context) ([]Agent, error)
	FetchOne(ctx context.Context, id string) (*Agent, error)
}

// ErrUnavailable is returned by sources that cannot reach their backing data.
var ErrUnavailable = errors.New("catalog unavailable")

// Simulated latencies for the sample source, matching what a modest network
// round trip would feel like.
const (
	sampleFetchAllDelay = 1000 * time.Millisecond
	sampleFetchOneDelay = 500 * time.Millisecond
)

// SampleSource serves the built-in sample catalog after an artificial delay.
// FailFetch makes every call fail, for exercising error paths in tests.
type SampleSource struct {
	Agents        []Agent
	FetchAllDelay time.Duration
	FetchOneDelay time.Duration
	FailFetch     bool
}

// NewSampleSource returns a source over the built-in sample catalog with the
// default simulated latency.
func NewSampleSource() *SampleSource {
	return &SampleSource{
		Agents:        SampleAgents(),
		FetchAllDelay: sampleFetchAllDelay,
		FetchOneDelay: sampleFetchOneDelay,
	}
}

func (s *SampleSource) FetchAll(ctx context.Context) ([]Agent, error) {
	if err := s.wait(ctx, s.FetchAllDelay); err != nil {
		return nil, err
	}
	if s.FailFetch {
		return nil, ErrUnavailable
	}
	out := make([]Agent, len(s.Agents))
	copy(out, s.Agents)
	return out, nil
}

func (s *SampleSource) FetchOne(ctx context.Context, id string) (*Agent, error) {
	if err := s.wait(ctx, s.FetchOneDelay); err != nil {
		return nil, err
	}
	if s.FailFetch {
		return nil, ErrUnavailable
	}
	for _, a := range s.Agents {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (s *SampleSource) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
