package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/websocket"
)

// Dashboard handles GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboard.Dashboard(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, view)
}

// Analytics handles GET /api/analytics
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboard.Analytics(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, view)
}

// DashboardFeed handles GET /api/dashboard/ws. The current dashboard is sent
// on connect; refreshes follow from the scheduler.
func (h *Handler) DashboardFeed(w http.ResponseWriter, r *http.Request) {
	var initial *websocket.Message
	view, err := h.dashboard.Dashboard(r.Context())
	if err != nil {
		h.logger.Warn("initial dashboard unavailable for live feed", zap.Error(err))
	} else {
		initial = &websocket.Message{Type: websocket.MessageTypeDashboard, Data: view}
	}
	h.feed.ServeWS(w, r, websocket.TopicDashboard, initial)
}
