// internal/middleware/recover.go
package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"eitango_board/internal/webutil"
)

// Recoverer はハンドラ内のpanicを捕捉し、他の予期せぬ障害と同じく
// 空JSONボディの500として返します。スタックトレースはサーバ側ログのみに出力します。
func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				GetLogger(r.Context()).Error("Panic recovered",
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)
				webutil.RespondWithEmptyJSON(w, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
