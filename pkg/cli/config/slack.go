package config

import (
	"log/slog"

	"github.com/secmon-lab/ajaxdemo/pkg/service/notify"
	"github.com/slack-go/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds configuration of the notification mirror
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to mirror notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("AJAXDEMO_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel receiving mirrored notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("AJAXDEMO_SLACK_CHANNEL_ID"),
			Destination: &s.ChannelID,
		},
	}
}

// ConfigureOptional creates the Slack sink if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *notify.SlackSink {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured - notifications are not mirrored")
		return nil
	}

	logger.Info("Mirroring notifications to Slack", "channel", s.ChannelID)
	return notify.NewSlackSink(slack.New(s.OAuthToken), s.ChannelID)
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
