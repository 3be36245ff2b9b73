// internal/model/activity_test.go
package model_test

import (
	"testing"

	"eitango_board/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestActivityType_DisplayCategory(t *testing.T) {
	tests := []struct {
		name string
		typ  model.ActivityType
		want string
	}{
		{name: "習得", typ: model.ActivityLearning, want: "learning"},
		{name: "登録", typ: model.ActivityRegister, want: "english_list"},
		{name: "削除", typ: model.ActivityDelete, want: "english_list"},
		{name: "ブックマーク登録", typ: model.ActivityBookmarkSet, want: "bookmark"},
		{name: "ブックマーク解除", typ: model.ActivityBookmarkClear, want: "bookmark"},
		{name: "未知のコードは数値のまま", typ: model.ActivityType(9), want: "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.DisplayCategory())
		})
	}
}
