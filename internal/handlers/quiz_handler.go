// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"eitango_board/internal/model"
	"eitango_board/internal/service"
	"eitango_board/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// GetLearning は未習得単語の多択問題セットを返すハンドラです。
func (h *QuizHandler) GetLearning(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLearning"))

	items, err := h.service.BuildQuiz(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []*model.QuizItem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items)
}
