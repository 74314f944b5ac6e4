package http

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

type handler struct {
	demo          DemoUseCase
	regions       RegionReader
	notifications NotificationLister
}

type actionResponse struct {
	Action types.ActionName `json:"action"`
	Panel  types.PanelID    `json:"panel"`
}

type panelResponse struct {
	Panel   types.PanelID     `json:"panel"`
	State   types.ActionState `json:"state"`
	Loading bool              `json:"loading"`
	Content template.HTML     `json:"content"`
}

type notificationResponse struct {
	model.Notification
	Icon string `json:"icon"`
}

func (h *handler) listActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string][]types.ActionName{
		"actions": h.demo.Actions(),
	})
}

func (h *handler) triggerAction(w http.ResponseWriter, r *http.Request) {
	name := types.ActionName(chi.URLParam(r, "name"))

	action, err := h.demo.Trigger(r.Context(), name)
	if err != nil {
		if errors.Is(err, model.ErrUnknownAction) {
			writeError(w, r, err, http.StatusNotFound)
			return
		}
		ctxlog.From(r.Context()).Error("Failed to trigger action", "error", err, "action", name)
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusAccepted, actionResponse{
		Action: action.Name,
		Panel:  action.Panel,
	})
}

func (h *handler) getPanel(w http.ResponseWriter, r *http.Request) {
	panel := types.PanelID(chi.URLParam(r, "panel"))
	if panel != types.PanelDemo && panel != types.PanelAPI {
		writeError(w, r, goerr.Wrap(model.ErrUnknownPanel, "cannot read panel", goerr.V("panel", panel)), http.StatusNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, panelResponse{
		Panel:   panel,
		State:   h.demo.State(panel),
		Loading: h.regions.Get(panel.LoadingRegion()).Visible,
		Content: h.regions.Get(panel.ResultRegion()).Content,
	})
}

func (h *handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	active := lo.Map(h.notifications.Active(), func(n model.Notification, _ int) notificationResponse {
		return notificationResponse{Notification: n, Icon: n.Icon()}
	})
	writeJSON(w, r, http.StatusOK, map[string][]notificationResponse{
		"notifications": active,
	})
}
