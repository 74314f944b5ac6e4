package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Notification represents a transient, auto-dismissing status message
type Notification struct {
	ID        types.NotificationID    `json:"id"`
	Message   string                  `json:"message"`
	Kind      types.NotificationKind  `json:"kind"`
	Phase     types.NotificationPhase `json:"phase"`
	CreatedAt time.Time               `json:"created_at"`
}

// NewNotification creates a new visible notification
func NewNotification(message string, kind types.NotificationKind) (*Notification, error) {
	if message == "" {
		return nil, goerr.New("notification message is required")
	}
	if !kind.IsValid() {
		return nil, goerr.New("invalid notification kind", goerr.V("kind", kind))
	}

	return &Notification{
		ID:        types.NewNotificationID(),
		Message:   message,
		Kind:      kind,
		Phase:     types.NotificationVisible,
		CreatedAt: time.Now(),
	}, nil
}

// Icon returns the icon name used when displaying the notification
func (n *Notification) Icon() string {
	if n.Kind == types.NotificationSuccess {
		return "check-circle"
	}
	return "exclamation-triangle"
}
