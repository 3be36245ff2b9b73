// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eitango_board/internal/model"
)

// HandleError はエラーを解釈し、対応するステータスコードと空JSONボディを返します。
// 診断情報はサーバ側ログにのみ残し、クライアントへは一切渡しません。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	switch statusCode {
	case http.StatusInternalServerError:
		logger.Error("Request failed", slog.Any("error", err))
	default:
		logger.Warn("Request rejected", slog.Int("status", statusCode), slog.Any("error", err))
	}

	RespondWithEmptyJSON(w, statusCode)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします。
// 3種類の区別（不正入力/未存在/バックエンド障害）がこのサービスの対外契約です。
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		// ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します。
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", slog.Any("error", err))
		RespondWithEmptyJSON(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithEmptyJSON はボディ "{}" のレスポンスを返します。エラー系の共通形です。
func RespondWithEmptyJSON(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte("{}"))
}

// RespondWithHTML はHTMLレスポンスを返します。静的ファイルの404ページ用。
func RespondWithHTML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(code)
	w.Write([]byte(body))
}

// RespondWithStatic は拡張子から決まるコンテンツタイプで生のバイト列を返します。
func RespondWithStatic(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// NotFoundHandler は未知のAPIパス用のハンドラです。chi の NotFound と
// MethodNotAllowed の両方に登録し、ワイヤ上のステータスを {200,400,404,500} に保ちます。
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	RespondWithEmptyJSON(w, http.StatusNotFound)
}
