// internal/model/word.go
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Word は単語帳の1行を表します。english が自然キーで、同じ単語の再登録は
// japanese の上書き（UPSERT）になります。
type Word struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	English   string `gorm:"uniqueIndex;not null" json:"english"`
	Japanese  string `gorm:"not null" json:"japanese"`
	IsCorrect bool   `gorm:"not null;default:false" json:"is_correct"`
	Bookmark  bool   `gorm:"not null;default:false" json:"bookmark"`
}

func (Word) TableName() string {
	return "word"
}

// フラグのワイヤ表現。大文字のトークンのみ受け付けます（"true" などは不正値）。
const (
	FlagTrue  = "TRUE"
	FlagFalse = "FALSE"
)

// PKey はリクエストボディの pkey フィールドです。
// JSON数値・数値文字列のどちらも整数に変換して受け付けます。
type PKey int

func (p *PKey) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("pkey: %w", ErrInvalidInput)
		}
		s = strings.TrimSpace(str)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("pkey is not an integer: %w", ErrInvalidInput)
	}
	*p = PKey(n)
	return nil
}

// フラグ更新リクエストDTO (/update/is_correct, /update/bookmark)
type UpdateFlagRequest struct {
	PKey *PKey  `json:"pkey" validate:"required"`
	Flag string `json:"flag" validate:"required,oneof=TRUE FALSE"`
}

// 単語登録リクエストDTO (/register)
// jap_val はキーの存在だけを要求し、値は空文字でもそのまま通します。
type RegisterRequest struct {
	EngVal string  `json:"eng_val" validate:"required"`
	JapVal *string `json:"jap_val" validate:"required"`
}

// 削除リクエストDTO (/delete)
type DeleteRequest struct {
	PKey *PKey `json:"pkey" validate:"required"`
}

// 単語一覧レスポンス行 (/english_list)
type WordListRow struct {
	English   string `json:"english"`
	Japanese  string `json:"japanese"`
	IsCorrect bool   `json:"is_correct"`
}

// ブックマーク一覧レスポンス行 (/bookmark)
type BookmarkRow struct {
	ID       uint   `json:"id"`
	English  string `json:"english"`
	Japanese string `json:"japanese"`
}

// 学習画面の1問 (/learning)
type QuizItem struct {
	ID           uint     `json:"id"`
	English      string   `json:"english"`
	Answers      []string `json:"answers"`
	Correct      string   `json:"correct"`
	BookmarkFlag bool     `json:"bookmark_flag"`
}

// 更新系エンドポイント共通の成功レスポンス
type MessageResponse struct {
	Msg string `json:"msg"`
}
