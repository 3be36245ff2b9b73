// internal/service/activity_recorder.go
package service

import (
	"context"
	"fmt"
	"time"

	"eitango_board/internal/middleware"
	"eitango_board/internal/model"
	"eitango_board/internal/repository"

	"gorm.io/gorm"
)

// Clock は「今日」を決める時刻源です。プロセス起動時に固定せず呼び出しごとに
// 取得することで、日付をまたぐ長命プロセスでの日付ずれを避けます。
type Clock func() time.Time

// ActivityRecorder は更新系操作の結果から表示用テキストを生成し、
// アクティビティログに1行追記します。戻り値のテキストがそのまま
// レスポンスの msg になります。
type ActivityRecorder interface {
	RecordLearning(ctx context.Context, english string, learned bool) (string, error)
	RecordBookmark(ctx context.Context, english string, marked bool) (string, error)
	RecordRegister(ctx context.Context, english, japanese string) (string, error)
	RecordDelete(ctx context.Context, english string) (string, error)
}

type activityRecorder struct {
	db      *gorm.DB
	actRepo repository.ActivityRepository
	clock   Clock
}

func NewActivityRecorder(db *gorm.DB, actRepo repository.ActivityRepository, clock Clock) ActivityRecorder {
	if clock == nil {
		clock = time.Now
	}
	return &activityRecorder{
		db:      db,
		actRepo: actRepo,
		clock:   clock,
	}
}

func (s *activityRecorder) RecordLearning(ctx context.Context, english string, learned bool) (string, error) {
	action := "習得"
	if !learned {
		action = "未習得に変更"
	}
	text := fmt.Sprintf("%sを%sしました", english, action)
	return s.record(ctx, model.ActivityLearning, text)
}

func (s *activityRecorder) RecordBookmark(ctx context.Context, english string, marked bool) (string, error) {
	typ := model.ActivityBookmarkSet
	action := "ブックマーク登録"
	if !marked {
		typ = model.ActivityBookmarkClear
		action = "ブックマーク解除"
	}
	text := fmt.Sprintf("%sを%sしました", english, action)
	return s.record(ctx, typ, text)
}

func (s *activityRecorder) RecordRegister(ctx context.Context, english, japanese string) (string, error) {
	text := fmt.Sprintf("英語: %s 日本語: %s を登録しました", english, japanese)
	return s.record(ctx, model.ActivityRegister, text)
}

func (s *activityRecorder) RecordDelete(ctx context.Context, english string) (string, error) {
	text := fmt.Sprintf("%sを削除しました", english)
	return s.record(ctx, model.ActivityDelete, text)
}

func (s *activityRecorder) record(ctx context.Context, typ model.ActivityType, text string) (string, error) {
	if err := s.actRepo.Insert(ctx, s.db, Today(s.clock), typ, text); err != nil {
		return "", err
	}
	middleware.GetLogger(ctx).Info(text)
	return text, nil
}

// Today は時刻源から日付部分（その日の0時）を取り出します。
func Today(clock Clock) time.Time {
	now := clock()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
