package interfaces

//go:generate moq -stub -out mocks/notifier_mock.go -pkg mocks . Notifier NotificationSink

import (
	"context"

	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Notifier shows transient notifications
type Notifier interface {
	Notify(ctx context.Context, message string, kind types.NotificationKind) (*model.Notification, error)
}

// NotificationSink receives a copy of every notification shown
type NotificationSink interface {
	Publish(ctx context.Context, notification *model.Notification) error
}
