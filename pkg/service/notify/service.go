package notify

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/utils/async"
	"github.com/secmon-lab/ajaxdemo/pkg/utils/metrics"
)

const (
	// DefaultVisibleFor is how long a notification stays visible
	DefaultVisibleFor = 4000 * time.Millisecond
	// DefaultRemoveAfter is how long a hidden notification lingers before removal
	DefaultRemoveAfter = 300 * time.Millisecond
)

// Service keeps transient notifications. Each notification is visible for
// a fixed duration, then hidden, then removed. There is no queue and no
// de-duplication: concurrent notifications stack independently.
type Service struct {
	mu            sync.RWMutex
	notifications []*model.Notification

	visibleFor  time.Duration
	removeAfter time.Duration
	afterFunc   func(d time.Duration, f func())
	sinks       []interfaces.NotificationSink
}

var _ interfaces.Notifier = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithDurations overrides the visible and removal durations
func WithDurations(visibleFor, removeAfter time.Duration) Option {
	return func(s *Service) {
		s.visibleFor = visibleFor
		s.removeAfter = removeAfter
	}
}

// WithAfterFunc replaces the timer used to schedule phase changes
func WithAfterFunc(afterFunc func(d time.Duration, f func())) Option {
	return func(s *Service) {
		s.afterFunc = afterFunc
	}
}

// WithSink adds a sink receiving a copy of every notification
func WithSink(sink interfaces.NotificationSink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sinks = append(s.sinks, sink)
		}
	}
}

// New creates a new notification Service
func New(opts ...Option) *Service {
	s := &Service{
		visibleFor:  DefaultVisibleFor,
		removeAfter: DefaultRemoveAfter,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify shows a new notification and schedules its dismissal
func (s *Service) Notify(ctx context.Context, message string, kind types.NotificationKind) (*model.Notification, error) {
	n, err := model.NewNotification(message, kind)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create notification")
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	snapshot := *n
	s.mu.Unlock()

	metrics.NotificationsTotal.WithLabelValues(kind.String()).Inc()
	ctxlog.From(ctx).Info("notification shown",
		"id", n.ID,
		"kind", kind,
		"message", message,
	)

	id := n.ID
	s.afterFunc(s.visibleFor, func() {
		s.hide(id)
		s.afterFunc(s.removeAfter, func() {
			s.remove(id)
		})
	})

	for _, sink := range s.sinks {
		sink := sink
		async.Dispatch(ctx, func(ctx context.Context) error {
			published := snapshot
			return sink.Publish(ctx, &published)
		})
	}

	return &snapshot, nil
}

// Active returns copies of the current notifications, oldest first
func (s *Service) Active() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		result = append(result, *n)
	}
	return result
}

func (s *Service) hide(id types.NotificationID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID == id {
			n.Phase = types.NotificationHidden
			return
		}
	}
}

func (s *Service) remove(id types.NotificationID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}
