package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/slack-go/slack"
)

// SlackPoster is the subset of the Slack client used by SlackSink
type SlackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackSink mirrors notifications into a Slack channel
type SlackSink struct {
	client    SlackPoster
	channelID string
}

var _ interfaces.NotificationSink = (*SlackSink)(nil)

// NewSlackSink creates a new SlackSink
func NewSlackSink(client SlackPoster, channelID string) *SlackSink {
	return &SlackSink{
		client:    client,
		channelID: channelID,
	}
}

// Publish posts the notification message to the channel
func (s *SlackSink) Publish(ctx context.Context, notification *model.Notification) error {
	text := fmt.Sprintf("%s %s", slackEmoji(notification.Kind), notification.Message)

	if _, _, err := s.client.PostMessageContext(ctx, s.channelID, slack.MsgOptionText(text, false)); err != nil {
		return goerr.Wrap(err, "failed to post notification to slack",
			goerr.V("channel", s.channelID),
			goerr.V("notification", notification.ID))
	}
	return nil
}

func slackEmoji(kind types.NotificationKind) string {
	switch kind {
	case types.NotificationSuccess:
		return ":white_check_mark:"
	case types.NotificationError:
		return ":warning:"
	default:
		return ":information_source:"
	}
}
