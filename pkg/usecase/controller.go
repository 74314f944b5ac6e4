package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/utils/apperr"
	"github.com/secmon-lab/ajaxdemo/pkg/utils/metrics"
)

// Source produces the outcome of one request. It may block until the
// outcome is available.
type Source func(ctx context.Context) model.Outcome

// Action describes how one demo action is presented
type Action struct {
	Name  types.ActionName
	Panel types.PanelID
	Kind  types.RecordKind

	// ClearOnStart empties the result region before awaiting the source
	ClearOnStart bool
	// SourceURL is shown as a footer under rendered records when set
	SourceURL string

	SuccessMessage string
	ErrorMessage   string
	ErrorHint      string
}

// Controller runs demo actions end-to-end: loading indicator, await,
// render, notify, and loading indicator cleared on every exit path.
//
// Overlapping actions on the same panel are not serialized. Their writes to
// the display race and the last writer wins.
type Controller struct {
	display  interfaces.Display
	renderer interfaces.Renderer
	notifier interfaces.Notifier

	mu     sync.RWMutex
	states map[types.PanelID]types.ActionState
}

// NewController creates a new Controller
func NewController(display interfaces.Display, renderer interfaces.Renderer, notifier interfaces.Notifier) *Controller {
	return &Controller{
		display:  display,
		renderer: renderer,
		notifier: notifier,
		states:   make(map[types.PanelID]types.ActionState),
	}
}

// State returns the current state of panel. Unknown panels are idle.
func (c *Controller) State(panel types.PanelID) types.ActionState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if state, ok := c.states[panel]; ok {
		return state
	}
	return types.ActionStateIdle
}

func (c *Controller) setState(panel types.PanelID, state types.ActionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[panel] = state
}

// RunAction shows the loading region of the action's panel, awaits source,
// renders the outcome and notifies. The returned outcome is the one
// produced by source, except that a failure while rendering a success is
// returned as a render failure.
func (c *Controller) RunAction(ctx context.Context, action Action, source Source) (outcome model.Outcome) {
	logger := ctxlog.From(ctx).With("action", action.Name, "panel", action.Panel)
	loading := action.Panel.LoadingRegion()
	started := time.Now()

	c.setState(action.Panel, types.ActionStateLoading)
	c.display.Show(loading)
	metrics.ActionsInFlight.Inc()
	logger.Debug("action started")

	defer func() {
		c.display.Hide(loading)
		c.setState(action.Panel, types.ActionStateIdle)
		metrics.ActionsInFlight.Dec()
		metrics.ActionDuration.WithLabelValues(action.Name.String()).Observe(time.Since(started).Seconds())
	}()

	if action.ClearOnStart {
		c.display.SetContent(action.Panel.ResultRegion(), "")
	}

	outcome = c.await(ctx, source)

	if outcome.IsSuccess() {
		if err := c.showRecords(ctx, action, outcome.Records()); err != nil {
			logger.Warn("failed to render records", "error", err)
			outcome = model.Failure(err)
			c.showRenderFailure(ctx, action)
			c.finish(ctx, action, types.ActionStateErrored, "render_failed")
			return outcome
		}
		c.finish(ctx, action, types.ActionStateRendered, "rendered")
		return outcome
	}

	logger.Info("action failed", "reason", outcome.Reason())
	if err := c.showError(ctx, action, outcome.Reason()); err != nil {
		// The error block itself could not be built; fall back to the generic message
		logger.Warn("failed to render error", "error", err)
		c.showRenderFailure(ctx, action)
	}
	c.finish(ctx, action, types.ActionStateErrored, "errored")
	return outcome
}

// await runs source and converts a panic into a failure outcome
func (c *Controller) await(ctx context.Context, source Source) (outcome model.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = model.Failure(goerr.New(fmt.Sprintf("%v", r)))
		}
	}()
	if source == nil {
		return model.Failure(goerr.New("no request source"))
	}
	return source(ctx)
}

// showRecords renders records and converts a panic raised while building
// the markup into a render failure
func (c *Controller) showRecords(ctx context.Context, action Action, records []model.Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.New(model.RenderFailureMessage,
				goerr.V("panic", r),
				goerr.T(model.ErrTagRender))
		}
	}()

	if err := c.renderer.ShowRecords(ctx, action.Panel.ResultRegion(), action.Kind, records, model.RenderOptions{Source: action.SourceURL}); err != nil {
		return goerr.New(model.RenderFailureMessage,
			goerr.V("cause", err),
			goerr.T(model.ErrTagRender))
	}
	return nil
}

// showError renders the failure reason and converts a panic raised while
// building the error block into a render failure
func (c *Controller) showError(ctx context.Context, action Action, reason string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.New(model.RenderFailureMessage,
				goerr.V("panic", r),
				goerr.T(model.ErrTagRender))
		}
	}()

	return c.renderer.ShowError(ctx, action.Panel.ResultRegion(), reason, action.ErrorHint)
}

func (c *Controller) showRenderFailure(ctx context.Context, action Action) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("panic while rendering failure", "recover", r)
		}
	}()

	if err := c.renderer.ShowError(ctx, action.Panel.ResultRegion(), model.RenderFailureMessage, ""); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to render failure message", goerr.V("action", action.Name)))
	}
}

func (c *Controller) finish(ctx context.Context, action Action, state types.ActionState, result string) {
	c.setState(action.Panel, state)
	metrics.ActionsTotal.WithLabelValues(action.Name.String(), result).Inc()

	message, kind := action.SuccessMessage, types.NotificationSuccess
	if state == types.ActionStateErrored {
		message, kind = action.ErrorMessage, types.NotificationError
	}
	if message == "" || c.notifier == nil {
		return
	}

	if _, err := c.notifier.Notify(ctx, message, kind); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to notify", goerr.V("action", action.Name)))
	}
}
