package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Notifier prints notifications as colored lines. A terminal line cannot be
// dismissed, so notifications are never hidden.
type Notifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier writing to w
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Notify(ctx context.Context, message string, kind types.NotificationKind) (*model.Notification, error) {
	notification, err := model.NewNotification(message, kind)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create notification")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	switch kind {
	case types.NotificationSuccess:
		fmt.Fprintln(n.w, color.Green.Sprintf("[ok] %s", message))
	case types.NotificationError:
		fmt.Fprintln(n.w, color.Red.Sprintf("[error] %s", message))
	default:
		fmt.Fprintln(n.w, color.Blue.Sprintf("[info] %s", message))
	}

	return notification, nil
}
