// internal/handlers/static_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"eitango_board/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// NotFoundPage は静的ファイルが見つからない場合の固定レスポンスです。
const NotFoundPage = `<!DOCTYPE html>
<html lang="ja">
<head><meta charset="UTF-8"><title>404 Not Found</title></head>
<body><h1>404 Not Found</h1></body>
</html>
`

// contentTypes は配信する拡張子の固定テーブルです。ここにない拡張子は配信しません。
var contentTypes = map[string]string{
	"js":  "text/javascript",
	"css": "text/css",
}

type StaticHandler struct {
	root   string
	logger *slog.Logger
}

func NewStaticHandler(root string, logger *slog.Logger) *StaticHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StaticHandler{
		root:   root,
		logger: logger,
	}
}

// Serve は /static/{dir}/{file} のファイルをそのまま返します。
// ファイルが無い、拡張子が無い、テーブルにない拡張子、のいずれも
// 固定のHTMLページ付き404です。
func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Static"))

	dir := chi.URLParam(r, "dir")
	file := chi.URLParam(r, "file")

	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	contentType, ok := contentTypes[ext]
	if !ok {
		logger.Warn("Static request with unsupported extension", slog.String("file", file))
		webutil.RespondWithHTML(w, http.StatusNotFound, NotFoundPage)
		return
	}

	// URLパラメータはパス区切りを含まないが、念のため正規化して root 配下に限定する
	path := filepath.Join(h.root, "static", filepath.Base(dir), filepath.Base(file))
	body, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Static file not found", slog.String("path", path), slog.Any("error", err))
		webutil.RespondWithHTML(w, http.StatusNotFound, NotFoundPage)
		return
	}

	webutil.RespondWithStatic(w, contentType, body)
}
