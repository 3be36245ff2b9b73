// internal/repository/word_repository_test.go
package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"eitango_board/internal/model"
	"eitango_board/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB はテスト用のインメモリDBを作成し、スキーマを適用します。
// コネクションを1本に固定しないと :memory: がコネクションごとに別DBになる点に注意。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))
	return db
}

func TestWordRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	t.Run("同じenglishの再登録はjapaneseを上書きする", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, db, "apple", "りんご"))
		require.NoError(t, repo.Upsert(ctx, db, "apple", "林檎"))

		var words []model.Word
		require.NoError(t, db.Find(&words).Error)
		require.Len(t, words, 1)
		assert.Equal(t, "apple", words[0].English)
		assert.Equal(t, "林檎", words[0].Japanese)
		assert.False(t, words[0].IsCorrect)
		assert.False(t, words[0].Bookmark)
	})
}

func TestWordRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	// N件登録して挿入順で返ることを確認
	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Upsert(ctx, db, fmt.Sprintf("word-%d", i), fmt.Sprintf("単語%d", i)))
	}

	rows, err := repo.FindAll(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, n)
	for i, row := range rows {
		assert.Equal(t, fmt.Sprintf("word-%d", i), row.English)
	}
}

func TestWordRepository_UpdateFlags(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	require.NoError(t, repo.Upsert(ctx, db, "apple", "りんご"))

	t.Run("is_correct更新はenglishを返す", func(t *testing.T) {
		english, err := repo.UpdateCorrectFlag(ctx, db, 1, true)
		require.NoError(t, err)
		assert.Equal(t, "apple", english)

		var word model.Word
		require.NoError(t, db.First(&word, 1).Error)
		assert.True(t, word.IsCorrect)
	})

	t.Run("bookmark更新はenglishを返す", func(t *testing.T) {
		english, err := repo.UpdateBookmarkFlag(ctx, db, 1, true)
		require.NoError(t, err)
		assert.Equal(t, "apple", english)
	})

	t.Run("存在しないidはErrNotFound", func(t *testing.T) {
		_, err := repo.UpdateCorrectFlag(ctx, db, 999, true)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestWordRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	require.NoError(t, repo.Upsert(ctx, db, "apple", "りんご"))

	t.Run("削除した行のenglishを返す", func(t *testing.T) {
		english, err := repo.Delete(ctx, db, 1)
		require.NoError(t, err)
		assert.Equal(t, "apple", english)

		var count int64
		require.NoError(t, db.Model(&model.Word{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("存在しないidはErrNotFound", func(t *testing.T) {
		_, err := repo.Delete(ctx, db, 999)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestWordRepository_FindLearning(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	require.NoError(t, repo.Upsert(ctx, db, "apple", "りんご"))
	require.NoError(t, repo.Upsert(ctx, db, "grape", "ぶどう"))
	require.NoError(t, repo.Upsert(ctx, db, "peach", "もも"))
	_, err := repo.UpdateCorrectFlag(ctx, db, 3, true)
	require.NoError(t, err)
	_, err = repo.UpdateBookmarkFlag(ctx, db, 1, true)
	require.NoError(t, err)

	words, err := repo.FindLearning(ctx, db)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "apple", words[0].English)
	assert.True(t, words[0].Bookmark)
	assert.Equal(t, "grape", words[1].English)

	pool, err := repo.FindIncorrectJapanese(ctx, db)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"りんご", "ぶどう"}, pool)
}

func TestWordRepository_FindBookmarked(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	require.NoError(t, repo.Upsert(ctx, db, "apple", "りんご"))
	require.NoError(t, repo.Upsert(ctx, db, "grape", "ぶどう"))
	_, err := repo.UpdateBookmarkFlag(ctx, db, 2, true)
	require.NoError(t, err)

	rows, err := repo.FindBookmarked(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(2), rows[0].ID)
	assert.Equal(t, "grape", rows[0].English)
	assert.Equal(t, "ぶどう", rows[0].Japanese)
}

func TestWordRepository_Counts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	require.NoError(t, repo.Upsert(ctx, db, "apple", "りんご"))
	require.NoError(t, repo.Upsert(ctx, db, "grape", "ぶどう"))
	require.NoError(t, repo.Upsert(ctx, db, "peach", "もも"))
	_, err := repo.UpdateCorrectFlag(ctx, db, 1, true)
	require.NoError(t, err)
	_, err = repo.UpdateBookmarkFlag(ctx, db, 1, true)
	require.NoError(t, err)
	_, err = repo.UpdateBookmarkFlag(ctx, db, 2, true)
	require.NoError(t, err)

	all, err := repo.CountAll(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all)

	correct, err := repo.CountCorrect(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), correct)

	bookmarked, err := repo.CountBookmarked(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), bookmarked)
}
