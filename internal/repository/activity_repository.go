// internal/repository/activity_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"eitango_board/internal/middleware"
	"eitango_board/internal/model"

	"gorm.io/gorm"
)

// LearningLogCount は習得ログの日別集計行です。
type LearningLogCount struct {
	Count int64
	Date  time.Time
}

// ActivityRepository インターフェース
// activityテーブルは追記専用です。更新・削除操作は提供しません。
type ActivityRepository interface {
	Insert(ctx context.Context, db *gorm.DB, date time.Time, typ model.ActivityType, detail string) error
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.Activity, error)
	FindAllForDisplay(ctx context.Context, db *gorm.DB) ([]*model.Activity, error)
	CountLearnedByDate(ctx context.Context, db *gorm.DB, typ model.ActivityType, from, to time.Time, detailPattern string) ([]*LearningLogCount, error)
}

type gormActivityRepository struct{}

func NewGormActivityRepository() ActivityRepository {
	return &gormActivityRepository{}
}

func (r *gormActivityRepository) Insert(ctx context.Context, db *gorm.DB, date time.Time, typ model.ActivityType, detail string) error {
	logger := middleware.GetLogger(ctx)
	activity := &model.Activity{
		Date:   date,
		Type:   int(typ),
		Detail: detail,
	}
	result := db.WithContext(ctx).Create(activity)
	if result.Error != nil {
		logger.Error("Error inserting activity in DB",
			"error", result.Error,
			"type", int(typ),
		)
		return fmt.Errorf("gormActivityRepository.Insert: %w", result.Error)
	}
	return nil
}

// FindRecent は最新のアクティビティを id の降順で limit 件返します。
func (r *gormActivityRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.Activity, error) {
	logger := middleware.GetLogger(ctx)
	var activities []*model.Activity
	result := db.WithContext(ctx).
		Select("type", "detail").
		Order("id DESC").
		Limit(limit).
		Find(&activities)
	if result.Error != nil {
		logger.Error("Error finding recent activities in DB", "error", result.Error)
		return nil, fmt.Errorf("gormActivityRepository.FindRecent: %w", result.Error)
	}
	return activities, nil
}

func (r *gormActivityRepository) FindAllForDisplay(ctx context.Context, db *gorm.DB) ([]*model.Activity, error) {
	logger := middleware.GetLogger(ctx)
	var activities []*model.Activity
	result := db.WithContext(ctx).
		Select("date", "detail").
		Order("id DESC").
		Find(&activities)
	if result.Error != nil {
		logger.Error("Error finding all activities in DB", "error", result.Error)
		return nil, fmt.Errorf("gormActivityRepository.FindAllForDisplay: %w", result.Error)
	}
	return activities, nil
}

// CountLearnedByDate は習得ログを日別に集計します。
// detail のLIKEフィルタは表示文言とログスキーマを結合させる既知の脆さですが、
// 既存データとの互換のため種別コードでの絞り込みに置き換えずに残しています。
func (r *gormActivityRepository) CountLearnedByDate(ctx context.Context, db *gorm.DB, typ model.ActivityType, from, to time.Time, detailPattern string) ([]*LearningLogCount, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*LearningLogCount
	result := db.WithContext(ctx).Model(&model.Activity{}).
		Select("COUNT(date) AS count, date").
		Where("type = ? AND date >= ? AND date <= ? AND detail LIKE ?", int(typ), from, to, detailPattern).
		Group("date").
		Order("date").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting learned activities in DB", "error", result.Error)
		return nil, fmt.Errorf("gormActivityRepository.CountLearnedByDate: %w", result.Error)
	}
	return rows, nil
}
