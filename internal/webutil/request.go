// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"eitango_board/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のキーは許容します（このAPIの旧実装は余分なキーを無視していました）。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("decode json body: %v: %w", err, model.ErrInvalidInput)
	}
	return nil
}

// ValidateStruct は共有バリデータでDTOを検証します。
// どのフィールドがどう失敗しても、呼び出し側には ErrInvalidInput の一種類だけを返します。
// 翻訳済みメッセージはログ専用で、レスポンスボディには含めません。
func ValidateStruct(logger *slog.Logger, req interface{}) error {
	if logger == nil {
		logger = slog.Default()
	}
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		logger.Warn("Validation failed",
			slog.String("field", firstErr.Field()),
			slog.String("message", firstErr.Translate(Trans)),
		)
		return fmt.Errorf("validation failed on %s: %w", firstErr.Field(), model.ErrInvalidInput)
	}

	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	logger.Error("Unexpected error during validation", slog.Any("error", err))
	return fmt.Errorf("validator: %v: %w", err, model.ErrInternalServer)
}

// DecodeAndValidate はデコードとバリデーションをまとめて行います。
func DecodeAndValidate(r *http.Request, logger *slog.Logger, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return err
	}
	return ValidateStruct(logger, dst)
}
