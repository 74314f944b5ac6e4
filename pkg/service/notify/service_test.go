package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/service/notify"
)

type scheduled struct {
	d time.Duration
	f func()
}

// manualTimer collects scheduled functions and runs them on demand
type manualTimer struct {
	mu      sync.Mutex
	pending []scheduled
}

func (m *manualTimer) afterFunc(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, scheduled{d: d, f: f})
}

// fireNext runs the oldest pending function and returns its delay
func (m *manualTimer) fireNext(t *testing.T) time.Duration {
	t.Helper()
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		t.Fatal("no pending timer")
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()

	next.f()
	return next.d
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Visible, then hidden, then removed", func(t *testing.T) {
		timer := &manualTimer{}
		svc := notify.New(notify.WithAfterFunc(timer.afterFunc))

		n, err := svc.Notify(ctx, "Posts loaded", types.NotificationSuccess)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.NotificationVisible, n.Phase)

		active := svc.Active()
		gt.A(t, active).Length(1)
		gt.Equal(t, "Posts loaded", active[0].Message)
		gt.Equal(t, types.NotificationSuccess, active[0].Kind)

		gt.Equal(t, 4000*time.Millisecond, timer.fireNext(t))
		active = svc.Active()
		gt.A(t, active).Length(1)
		gt.Equal(t, types.NotificationHidden, active[0].Phase)

		gt.Equal(t, 300*time.Millisecond, timer.fireNext(t))
		gt.A(t, svc.Active()).Length(0)
	})

	t.Run("Notifications stack independently without de-duplication", func(t *testing.T) {
		timer := &manualTimer{}
		svc := notify.New(notify.WithAfterFunc(timer.afterFunc))

		first, err := svc.Notify(ctx, "same", types.NotificationError)
		gt.NoError(t, err).Required()
		second, err := svc.Notify(ctx, "same", types.NotificationError)
		gt.NoError(t, err).Required()
		gt.NotEqual(t, first.ID, second.ID)

		active := svc.Active()
		gt.A(t, active).Length(2)
		gt.Equal(t, first.ID, active[0].ID)

		// dismissing the first leaves the second untouched
		timer.fireNext(t)
		timer.fireNext(t)
		active = svc.Active()
		gt.Equal(t, types.NotificationHidden, active[0].Phase)
		gt.Equal(t, types.NotificationHidden, active[1].Phase)
		timer.fireNext(t)
		active = svc.Active()
		gt.A(t, active).Length(1)
		gt.Equal(t, second.ID, active[0].ID)
	})

	t.Run("Returned notification is a copy", func(t *testing.T) {
		svc := notify.New(notify.WithAfterFunc((&manualTimer{}).afterFunc))
		n, err := svc.Notify(ctx, "info", types.NotificationInfo)
		gt.NoError(t, err).Required()
		n.Message = "changed"
		gt.Equal(t, "info", svc.Active()[0].Message)
	})

	t.Run("Invalid notification is rejected", func(t *testing.T) {
		svc := notify.New(notify.WithAfterFunc((&manualTimer{}).afterFunc))
		_, err := svc.Notify(ctx, "", types.NotificationInfo)
		gt.Error(t, err)
		_, err = svc.Notify(ctx, "x", types.NotificationKind("warning"))
		gt.Error(t, err)
		gt.A(t, svc.Active()).Length(0)
	})

	t.Run("Real timers remove the notification", func(t *testing.T) {
		svc := notify.New(notify.WithDurations(10*time.Millisecond, 10*time.Millisecond))
		_, err := svc.Notify(ctx, "short lived", types.NotificationSuccess)
		gt.NoError(t, err).Required()

		deadline := time.Now().Add(time.Second)
		for len(svc.Active()) > 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		gt.A(t, svc.Active()).Length(0)
	})

	t.Run("Returned copy is taken before the hide timer runs", func(t *testing.T) {
		svc := notify.New(notify.WithDurations(0, time.Hour))

		var wg sync.WaitGroup
		phases := make(chan types.NotificationPhase, 200)
		for i := 0; i < 200; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n, err := svc.Notify(ctx, "burst", types.NotificationInfo)
				if err == nil {
					phases <- n.Phase
				}
			}()
		}
		wg.Wait()
		close(phases)

		count := 0
		for phase := range phases {
			gt.Equal(t, types.NotificationVisible, phase)
			count++
		}
		gt.Equal(t, 200, count)
	})
}

func TestServiceSink(t *testing.T) {
	published := make(chan *model.Notification, 1)
	sink := &mocks.NotificationSinkMock{
		PublishFunc: func(ctx context.Context, n *model.Notification) error {
			published <- n
			return nil
		},
	}
	svc := notify.New(
		notify.WithAfterFunc((&manualTimer{}).afterFunc),
		notify.WithSink(sink),
	)

	n, err := svc.Notify(context.Background(), "Users loaded", types.NotificationSuccess)
	gt.NoError(t, err).Required()

	select {
	case got := <-published:
		gt.Equal(t, n.ID, got.ID)
		gt.Equal(t, "Users loaded", got.Message)
	case <-time.After(time.Second):
		t.Fatal("sink did not receive the notification")
	}
}
