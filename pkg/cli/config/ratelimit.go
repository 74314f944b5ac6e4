package config

import (
	"log/slog"

	controller "github.com/secmon-lab/ajaxdemo/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// RateLimit holds the per-client limit on action triggers
type RateLimit struct {
	RPS   float64
	Burst int
}

// Flags returns CLI flags for RateLimit configuration
func (r *RateLimit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:        "rate-limit-rps",
			Usage:       "Action triggers allowed per second per client (0 disables the limit)",
			Category:    "Rate limit",
			Value:       2,
			Sources:     cli.EnvVars("AJAXDEMO_RATE_LIMIT_RPS"),
			Destination: &r.RPS,
		},
		&cli.IntFlag{
			Name:        "rate-limit-burst",
			Usage:       "Burst of action triggers per client",
			Category:    "Rate limit",
			Value:       5,
			Sources:     cli.EnvVars("AJAXDEMO_RATE_LIMIT_BURST"),
			Destination: &r.Burst,
		},
	}
}

// Configure creates the rate limiter, or nil when disabled
func (r *RateLimit) Configure() *controller.RateLimiter {
	if r.RPS <= 0 {
		return nil
	}
	burst := r.Burst
	if burst < 1 {
		burst = 1
	}
	return controller.NewRateLimiter(r.RPS, burst)
}

// LogValue returns structured log value
func (r RateLimit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("rps", r.RPS),
		slog.Int("burst", r.Burst),
	)
}
