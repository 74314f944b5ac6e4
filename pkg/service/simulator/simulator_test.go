package simulator_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/service/simulator"
)

// recordingTimer fires immediately and remembers the requested delays
type recordingTimer struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingTimer) after(d time.Duration) <-chan time.Time {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func waitOutcome(t *testing.T, ch <-chan model.Outcome) model.Outcome {
	t.Helper()
	select {
	case outcome := <-ch:
		return outcome
	case <-time.After(time.Second):
		t.Fatal("simulation did not complete within timeout")
		return model.Outcome{}
	}
}

func TestSimulate(t *testing.T) {
	t.Run("Success returns payload unchanged", func(t *testing.T) {
		timer := &recordingTimer{}
		sim := simulator.New(simulator.WithTimer(timer.after))
		payload := model.UsersToRecords(model.DefaultSampleData().Users)

		outcome := waitOutcome(t, sim.Simulate(payload, 1500*time.Millisecond, false))

		gt.True(t, outcome.IsSuccess())
		got := outcome.Records()
		gt.A(t, got).Length(len(payload))
		for i := range payload {
			gt.Equal(t, payload[i], got[i])
		}
		gt.A(t, timer.delays).Length(1)
		gt.Equal(t, 1500*time.Millisecond, timer.delays[0])
	})

	t.Run("Failure has the fixed message", func(t *testing.T) {
		sim := simulator.New(simulator.WithTimer((&recordingTimer{}).after))

		outcome := waitOutcome(t, sim.Simulate(nil, time.Second, true))

		gt.False(t, outcome.IsSuccess())
		gt.Equal(t, model.SimulatedFailureMessage, outcome.Reason())
		gt.True(t, goerr.HasTag(outcome.Err(), model.ErrTagSimulated))
	})

	t.Run("Failure ignores the payload", func(t *testing.T) {
		sim := simulator.New(simulator.WithTimer((&recordingTimer{}).after))
		payload := model.PostsToRecords(model.DefaultSampleData().Posts)

		outcome := waitOutcome(t, sim.Simulate(payload, 0, true))
		gt.False(t, outcome.IsSuccess())
		gt.True(t, outcome.Reason() != "")
		gt.V(t, outcome.Records()).Nil()
	})

	t.Run("Waits for the real delay", func(t *testing.T) {
		sim := simulator.New()
		start := time.Now()

		outcome := waitOutcome(t, sim.Simulate(nil, 50*time.Millisecond, false))

		gt.True(t, outcome.IsSuccess())
		gt.True(t, time.Since(start) >= 50*time.Millisecond)
	})

	t.Run("Completes even when nobody reads", func(t *testing.T) {
		fired := make(chan time.Time, 1)
		sim := simulator.New(simulator.WithTimer(func(d time.Duration) <-chan time.Time {
			return fired
		}))

		ch := sim.Simulate(nil, time.Second, false)
		fired <- time.Now()

		// the buffered result stays available after the goroutine exits
		outcome := waitOutcome(t, ch)
		gt.True(t, outcome.IsSuccess())
	})
}

func TestSource(t *testing.T) {
	sim := simulator.New(simulator.WithTimer((&recordingTimer{}).after))
	payload := model.PostsToRecords(model.DefaultSampleData().Posts)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a cancelled context does not stop the simulation
	outcome := sim.Source(payload, time.Second, false)(ctx)
	gt.True(t, outcome.IsSuccess())
	gt.A(t, outcome.Records()).Length(3)
}
