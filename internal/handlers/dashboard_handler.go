// internal/handlers/dashboard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"eitango_board/internal/model"
	"eitango_board/internal/service"
	"eitango_board/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
	logger  *slog.Logger
}

func NewDashboardHandler(s service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service: s,
		logger:  logger,
	}
}

// GetDashboard は登録数・習得数・ブックマーク数、最新アクティビティ、
// 習得ログをまとめて返すハンドラです。
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboard"))

	dashboard, err := h.service.GetDashboard(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, dashboard)
}

// GetActivities は全アクティビティを新しい順で返すハンドラです。
func (h *DashboardHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetActivities"))

	rows, err := h.service.ListActivities(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if rows == nil {
		rows = []*model.ActivityRow{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, rows)
}
