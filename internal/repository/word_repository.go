// internal/repository/word_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"eitango_board/internal/middleware"
	"eitango_board/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WordRepository インターフェース
// 更新・削除の対象行が存在しない場合は model.ErrNotFound を返します。
// ドライバ由来の障害はラップして返し、詳細は呼び出し側に解釈させません。
type WordRepository interface {
	Upsert(ctx context.Context, db *gorm.DB, english, japanese string) error
	UpdateCorrectFlag(ctx context.Context, db *gorm.DB, id int, flag bool) (string, error)
	UpdateBookmarkFlag(ctx context.Context, db *gorm.DB, id int, flag bool) (string, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (string, error)
	FindLearning(ctx context.Context, db *gorm.DB) ([]*model.Word, error)
	FindIncorrectJapanese(ctx context.Context, db *gorm.DB) ([]string, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.WordListRow, error)
	FindBookmarked(ctx context.Context, db *gorm.DB) ([]*model.BookmarkRow, error)
	CountAll(ctx context.Context, db *gorm.DB) (int64, error)
	CountCorrect(ctx context.Context, db *gorm.DB) (int64, error)
	CountBookmarked(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

// Upsert は english をキーに登録します。既存の単語なら japanese を上書きします。
func (r *gormWordRepository) Upsert(ctx context.Context, db *gorm.DB, english, japanese string) error {
	logger := middleware.GetLogger(ctx)
	word := &model.Word{English: english, Japanese: japanese}
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "english"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"japanese": japanese}),
	}).Create(word)
	if result.Error != nil {
		logger.Error("Error upserting word in DB",
			"error", result.Error,
			"english", english,
		)
		return fmt.Errorf("gormWordRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) UpdateCorrectFlag(ctx context.Context, db *gorm.DB, id int, flag bool) (string, error) {
	return r.updateFlag(ctx, db, id, "is_correct", flag)
}

func (r *gormWordRepository) UpdateBookmarkFlag(ctx context.Context, db *gorm.DB, id int, flag bool) (string, error) {
	return r.updateFlag(ctx, db, id, "bookmark", flag)
}

// updateFlag は1行を更新し、更新後の取得で english を返します。
// 更新が0行だった場合は ErrNotFound です。
func (r *gormWordRepository) updateFlag(ctx context.Context, db *gorm.DB, id int, column string, flag bool) (string, error) {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Word{}).Where("id = ?", id).Update(column, flag)
	if result.Error != nil {
		logger.Error("Error updating word flag in DB",
			"error", result.Error,
			"id", id,
			"column", column,
		)
		return "", fmt.Errorf("gormWordRepository.updateFlag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", model.ErrNotFound
	}

	var word model.Word
	if err := db.WithContext(ctx).Select("english").First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		logger.Error("Error fetching word after flag update",
			"error", err,
			"id", id,
		)
		return "", fmt.Errorf("gormWordRepository.updateFlag: %w", err)
	}
	return word.English, nil
}

// Delete は1行を削除し、削除した行の english を返します。
func (r *gormWordRepository) Delete(ctx context.Context, db *gorm.DB, id int) (string, error) {
	logger := middleware.GetLogger(ctx)

	var word model.Word
	if err := db.WithContext(ctx).Select("english").First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		logger.Error("Error finding word for deletion", "error", err, "id", id)
		return "", fmt.Errorf("gormWordRepository.Delete: %w", err)
	}

	result := db.WithContext(ctx).Delete(&model.Word{}, id)
	if result.Error != nil {
		logger.Error("Error deleting word in DB", "error", result.Error, "id", id)
		return "", fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", model.ErrNotFound
	}
	return word.English, nil
}

func (r *gormWordRepository) FindLearning(ctx context.Context, db *gorm.DB) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).
		Select("id", "english", "japanese", "bookmark").
		Where("is_correct = ?", false).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error finding learning words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindLearning: %w", result.Error)
	}
	return words, nil
}

// FindIncorrectJapanese は不正解の選択肢プール（未習得単語の日本語）を返します。
func (r *gormWordRepository) FindIncorrectJapanese(ctx context.Context, db *gorm.DB) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var values []string
	result := db.WithContext(ctx).Model(&model.Word{}).
		Where("is_correct = ?", false).
		Pluck("japanese", &values)
	if result.Error != nil {
		logger.Error("Error finding incorrect pool in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindIncorrectJapanese: %w", result.Error)
	}
	return values, nil
}

// FindAll は単語一覧を挿入キーの昇順で返します。
func (r *gormWordRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.WordListRow, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*model.WordListRow
	result := db.WithContext(ctx).Model(&model.Word{}).
		Select("english", "japanese", "is_correct").
		Order("id").
		Find(&rows)
	if result.Error != nil {
		logger.Error("Error finding all words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindAll: %w", result.Error)
	}
	return rows, nil
}

func (r *gormWordRepository) FindBookmarked(ctx context.Context, db *gorm.DB) ([]*model.BookmarkRow, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*model.BookmarkRow
	result := db.WithContext(ctx).Model(&model.Word{}).
		Select("id", "english", "japanese").
		Where("bookmark = ?", true).
		Find(&rows)
	if result.Error != nil {
		logger.Error("Error finding bookmarked words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindBookmarked: %w", result.Error)
	}
	return rows, nil
}

func (r *gormWordRepository) CountAll(ctx context.Context, db *gorm.DB) (int64, error) {
	return r.count(ctx, db, nil)
}

func (r *gormWordRepository) CountCorrect(ctx context.Context, db *gorm.DB) (int64, error) {
	return r.count(ctx, db, map[string]interface{}{"is_correct": true})
}

func (r *gormWordRepository) CountBookmarked(ctx context.Context, db *gorm.DB) (int64, error) {
	return r.count(ctx, db, map[string]interface{}{"bookmark": true})
}

func (r *gormWordRepository) count(ctx context.Context, db *gorm.DB, where map[string]interface{}) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Word{})
	if where != nil {
		query = query.Where(where)
	}
	if result := query.Count(&count); result.Error != nil {
		logger.Error("Error counting words in DB", "error", result.Error)
		return 0, fmt.Errorf("gormWordRepository.count: %w", result.Error)
	}
	return count, nil
}
