package simulator

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
)

// Simulator stands in for a network round-trip by delivering a prepared
// outcome after a delay
type Simulator struct {
	after func(d time.Duration) <-chan time.Time
}

// Option configures a Simulator
type Option func(*Simulator)

// WithTimer replaces the timer used to wait for the delay
func WithTimer(after func(d time.Duration) <-chan time.Time) Option {
	return func(s *Simulator) {
		s.after = after
	}
}

// New creates a new Simulator
func New(opts ...Option) *Simulator {
	s := &Simulator{
		after: time.After,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate schedules a single outcome delivered after delay. The returned
// channel always receives exactly one value: a failure when shouldFail is
// set, otherwise a success carrying payload unchanged. Once scheduled the
// simulation cannot be cancelled.
func (s *Simulator) Simulate(payload []model.Record, delay time.Duration, shouldFail bool) <-chan model.Outcome {
	// Buffered so the goroutine finishes even if nobody reads the result
	ch := make(chan model.Outcome, 1)
	outcome := model.Success(payload)
	if shouldFail {
		outcome = model.Failure(goerr.New(model.SimulatedFailureMessage,
			goerr.V("delay", delay),
			goerr.T(model.ErrTagSimulated)))
	}

	timer := s.after(delay)
	go func() {
		<-timer
		ch <- outcome
	}()

	return ch
}

// Source returns a function that runs one simulation and waits for it.
// The context is not consulted: simulations always run to completion.
func (s *Simulator) Source(payload []model.Record, delay time.Duration, shouldFail bool) func(ctx context.Context) model.Outcome {
	return func(ctx context.Context) model.Outcome {
		return <-s.Simulate(payload, delay, shouldFail)
	}
}
