package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/utils/async"
)

// Demo exposes the named demo actions
type Demo struct {
	controller *Controller
	catalog    *Catalog
}

// NewDemo creates a new Demo
func NewDemo(controller *Controller, catalog *Catalog) *Demo {
	return &Demo{
		controller: controller,
		catalog:    catalog,
	}
}

// Actions returns the names of the available actions
func (d *Demo) Actions() []types.ActionName {
	return d.catalog.Names()
}

// Run executes the named action and waits for its outcome
func (d *Demo) Run(ctx context.Context, name types.ActionName) (model.Outcome, error) {
	action, source, err := d.catalog.Resolve(ctx, name)
	if err != nil {
		return model.Outcome{}, err
	}
	return d.controller.RunAction(ctx, action, source), nil
}

// Trigger starts the named action in the background and returns its
// description immediately. The action keeps running after ctx is done.
func (d *Demo) Trigger(ctx context.Context, name types.ActionName) (*Action, error) {
	action, source, err := d.catalog.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		outcome := d.controller.RunAction(ctx, action, source)
		ctxlog.From(ctx).Info("action finished",
			"action", action.Name,
			"success", outcome.IsSuccess(),
			"reason", outcome.Reason(),
		)
		return nil
	})

	return &action, nil
}

// State returns the current state of panel
func (d *Demo) State(panel types.PanelID) types.ActionState {
	return d.controller.State(panel)
}
