// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー。ルータ境界でのHTTPステータス変換は
// この3種類だけを区別します（webutil.MapErrorToStatusCode）。
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
)
