package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/service/remote"
	"github.com/urfave/cli/v3"
)

const (
	TransportResty    = "resty"
	TransportCallback = "callback"
)

// Remote holds configuration of the remote API actions
type Remote struct {
	Disabled   bool
	BaseURL    string
	Timeout    time.Duration
	Transport  string
	PostsLimit int
	UsersLimit int
}

// Flags returns CLI flags for Remote configuration
func (r *Remote) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "remote-disabled",
			Usage:       "Disable the remote API actions",
			Category:    "Remote API",
			Sources:     cli.EnvVars("AJAXDEMO_REMOTE_DISABLED"),
			Destination: &r.Disabled,
		},
		&cli.StringFlag{
			Name:        "remote-base-url",
			Usage:       "Base URL of the remote JSON API",
			Category:    "Remote API",
			Value:       remote.DefaultBaseURL,
			Sources:     cli.EnvVars("AJAXDEMO_REMOTE_BASE_URL"),
			Destination: &r.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "remote-timeout",
			Usage:       "Timeout of a remote request (0 for none)",
			Category:    "Remote API",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("AJAXDEMO_REMOTE_TIMEOUT"),
			Destination: &r.Timeout,
		},
		&cli.StringFlag{
			Name:        "remote-transport",
			Usage:       "Transport used for remote requests (resty, callback)",
			Category:    "Remote API",
			Value:       TransportResty,
			Sources:     cli.EnvVars("AJAXDEMO_REMOTE_TRANSPORT"),
			Destination: &r.Transport,
		},
		&cli.IntFlag{
			Name:        "remote-posts-limit",
			Usage:       "Number of posts requested from the remote API",
			Category:    "Remote API",
			Value:       remote.DefaultPostsLimit,
			Sources:     cli.EnvVars("AJAXDEMO_REMOTE_POSTS_LIMIT"),
			Destination: &r.PostsLimit,
		},
		&cli.IntFlag{
			Name:        "remote-users-limit",
			Usage:       "Number of users requested from the remote API",
			Category:    "Remote API",
			Value:       remote.DefaultUsersLimit,
			Sources:     cli.EnvVars("AJAXDEMO_REMOTE_USERS_LIMIT"),
			Destination: &r.UsersLimit,
		},
	}
}

// ConfigureTransport creates the configured transport
func (r *Remote) ConfigureTransport() (interfaces.Transport, error) {
	switch r.Transport {
	case TransportResty, "":
		return remote.NewRestyTransport(r.Timeout), nil
	case TransportCallback:
		return remote.NewCallbackTransport(remote.NewHTTPLegacyClient(&http.Client{Timeout: r.Timeout})), nil
	default:
		return nil, goerr.New("invalid remote transport", goerr.V("transport", r.Transport))
	}
}

// Configure creates the remote fetcher, or nil when remote actions are disabled
func (r *Remote) Configure() (*remote.Fetcher, error) {
	if r.Disabled {
		return nil, nil
	}
	if r.PostsLimit <= 0 || r.UsersLimit <= 0 {
		return nil, goerr.New("remote limits must be positive",
			goerr.V("posts", r.PostsLimit),
			goerr.V("users", r.UsersLimit))
	}

	transport, err := r.ConfigureTransport()
	if err != nil {
		return nil, err
	}

	return remote.New(transport,
		remote.WithBaseURL(r.BaseURL),
		remote.WithLimits(r.PostsLimit, r.UsersLimit),
	), nil
}

// LogValue returns structured log value
func (r Remote) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("disabled", r.Disabled),
		slog.String("base_url", r.BaseURL),
		slog.Duration("timeout", r.Timeout),
		slog.String("transport", r.Transport),
		slog.Int("posts_limit", r.PostsLimit),
		slog.Int("users_limit", r.UsersLimit),
	)
}
