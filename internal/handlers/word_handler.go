// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"eitango_board/internal/model"
	"eitango_board/internal/service"
	"eitango_board/internal/webutil"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// GetEnglishList は単語一覧を返すハンドラです。
func (h *WordHandler) GetEnglishList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEnglishList"))

	rows, err := h.service.ListWords(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if rows == nil {
		rows = []*model.WordListRow{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, rows)
}

// GetBookmarks はブックマーク済みの単語一覧を返すハンドラです。
func (h *WordHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBookmarks"))

	rows, err := h.service.ListBookmarked(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if rows == nil {
		rows = []*model.BookmarkRow{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, rows)
}

// UpdateIsCorrect は習得フラグを更新するハンドラです。
func (h *WordHandler) UpdateIsCorrect(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateIsCorrect"))

	var req model.UpdateFlagRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	msg, err := h.service.UpdateCorrectFlag(r.Context(), int(*req.PKey), req.Flag == model.FlagTrue)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Correct flag updated", slog.Int("pkey", int(*req.PKey)), slog.String("flag", req.Flag))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Msg: msg})
}

// UpdateBookmark はブックマークフラグを更新するハンドラです。
func (h *WordHandler) UpdateBookmark(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateBookmark"))

	var req model.UpdateFlagRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	msg, err := h.service.UpdateBookmarkFlag(r.Context(), int(*req.PKey), req.Flag == model.FlagTrue)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark flag updated", slog.Int("pkey", int(*req.PKey)), slog.String("flag", req.Flag))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Msg: msg})
}

// Register は単語を登録するハンドラです。
func (h *WordHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	msg, err := h.service.Register(r.Context(), req.EngVal, *req.JapVal)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word registered", slog.String("english", req.EngVal))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Msg: msg})
}

// Delete は単語を削除するハンドラです。
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Delete"))

	var req model.DeleteRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	msg, err := h.service.Delete(r.Context(), int(*req.PKey))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted", slog.Int("pkey", int(*req.PKey)))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Msg: msg})
}
