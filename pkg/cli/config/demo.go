package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/service/notify"
	"github.com/secmon-lab/ajaxdemo/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Demo holds the timing of simulated requests and notifications
type Demo struct {
	UsersDelay          time.Duration
	PostsDelay          time.Duration
	ErrorDelay          time.Duration
	NotificationVisible time.Duration
	NotificationRemove  time.Duration
}

// Flags returns CLI flags for Demo configuration
func (d *Demo) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "users-delay",
			Usage:       "Simulated latency of the users action",
			Category:    "Demo",
			Value:       usecase.DefaultUsersDelay,
			Sources:     cli.EnvVars("AJAXDEMO_USERS_DELAY"),
			Destination: &d.UsersDelay,
		},
		&cli.DurationFlag{
			Name:        "posts-delay",
			Usage:       "Simulated latency of the posts action",
			Category:    "Demo",
			Value:       usecase.DefaultPostsDelay,
			Sources:     cli.EnvVars("AJAXDEMO_POSTS_DELAY"),
			Destination: &d.PostsDelay,
		},
		&cli.DurationFlag{
			Name:        "error-delay",
			Usage:       "Simulated latency of the error action",
			Category:    "Demo",
			Value:       usecase.DefaultErrorDelay,
			Sources:     cli.EnvVars("AJAXDEMO_ERROR_DELAY"),
			Destination: &d.ErrorDelay,
		},
		&cli.DurationFlag{
			Name:        "notification-visible",
			Usage:       "How long a notification stays visible",
			Category:    "Demo",
			Value:       notify.DefaultVisibleFor,
			Sources:     cli.EnvVars("AJAXDEMO_NOTIFICATION_VISIBLE"),
			Destination: &d.NotificationVisible,
		},
		&cli.DurationFlag{
			Name:        "notification-remove",
			Usage:       "How long a hidden notification lingers before removal",
			Category:    "Demo",
			Value:       notify.DefaultRemoveAfter,
			Sources:     cli.EnvVars("AJAXDEMO_NOTIFICATION_REMOVE"),
			Destination: &d.NotificationRemove,
		},
	}
}

// Delays returns the simulated latencies
func (d *Demo) Delays() (usecase.Delays, error) {
	if d.UsersDelay < 0 || d.PostsDelay < 0 || d.ErrorDelay < 0 {
		return usecase.Delays{}, goerr.New("delay must not be negative",
			goerr.V("users", d.UsersDelay),
			goerr.V("posts", d.PostsDelay),
			goerr.V("error", d.ErrorDelay))
	}
	return usecase.Delays{
		Users: d.UsersDelay,
		Posts: d.PostsDelay,
		Error: d.ErrorDelay,
	}, nil
}

// NotifyOptions returns the notification service options
func (d *Demo) NotifyOptions() []notify.Option {
	return []notify.Option{
		notify.WithDurations(d.NotificationVisible, d.NotificationRemove),
	}
}

// LogValue returns structured log value
func (d Demo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("users_delay", d.UsersDelay),
		slog.Duration("posts_delay", d.PostsDelay),
		slog.Duration("error_delay", d.ErrorDelay),
		slog.Duration("notification_visible", d.NotificationVisible),
		slog.Duration("notification_remove", d.NotificationRemove),
	)
}
