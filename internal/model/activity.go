// internal/model/activity.go
package model

import (
	"strconv"
	"time"
)

// Activity はアクティビティログの1行を表します。追記専用で、更新・削除は
// 行いません。「最新」は id の降順です。
type Activity struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Date   time.Time `gorm:"type:date;not null" json:"date"`
	Type   int       `gorm:"not null" json:"type"`
	Detail string    `gorm:"not null" json:"detail"`
}

func (Activity) TableName() string {
	return "activity"
}

// ActivityType はアクティビティ種別コードです。コードは固定で、
// 表示カテゴリ（フロントのCSSクラス）への変換は DisplayCategory が担います。
type ActivityType int

const (
	ActivityLearning      ActivityType = 0 // 習得 / 未習得に変更
	ActivityRegister      ActivityType = 1 // 単語登録
	ActivityDelete        ActivityType = 2 // 単語削除
	ActivityBookmarkSet   ActivityType = 3 // ブックマーク登録
	ActivityBookmarkClear ActivityType = 4 // ブックマーク解除
)

var displayCategories = map[ActivityType]string{
	ActivityLearning:      "learning",
	ActivityRegister:      "english_list",
	ActivityDelete:        "english_list",
	ActivityBookmarkSet:   "bookmark",
	ActivityBookmarkClear: "bookmark",
}

// DisplayCategory は表示カテゴリ名を返します。未知のコードは数値のまま返します。
func (t ActivityType) DisplayCategory() string {
	if category, ok := displayCategories[t]; ok {
		return category
	}
	return strconv.Itoa(int(t))
}

// ダッシュボードのアクティビティ表示行
type ActivityDisplay struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// アクティビティ一覧レスポンス行 (/activity)
type ActivityRow struct {
	Date   string `json:"date"`
	Detail string `json:"detail"`
}

// 習得ログの1日分
type LearningLogRow struct {
	Count int64  `json:"count"`
	Date  string `json:"date"`
}

// 登録数・習得数・ブックマーク数
type TotalCount struct {
	Word      int64 `json:"word"`
	IsCorrect int64 `json:"isCorrect"`
	Bookmark  int64 `json:"bookmark"`
}

// ダッシュボードレスポンス (/)
// キー名 "activitys" はフロントエンドがこの綴りを参照しているため変更しません。
type DashboardResponse struct {
	Total       TotalCount         `json:"total"`
	Activitys   []*ActivityDisplay `json:"activitys"`
	LearningLog []*LearningLogRow  `json:"learningLog"`
}
