// internal/collector/collector_test.go
package collector_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"eitango_board/internal/collector"
	"eitango_board/internal/model"
	"eitango_board/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

const samplePage = `<!DOCTYPE html>
<html>
<body>
<table>
<tr><td class="eng">apple</td><td class="jap">りんご</td></tr>
<tr><td class="eng">grape</td><td class="jap">ぶどう</td></tr>
<tr><td class="eng">日本語テキスト</td><td class="jap">除外される</td></tr>
<tr><td class="eng"> spaced word </td><td class="jap">空白付き</td></tr>
</table>
</body>
</html>`

func TestReadTargets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.txt")
	require.NoError(t, os.WriteFile(path, []byte("http://a.example/\n\n  http://b.example/  \n"), 0o644))

	urls, err := collector.ReadTargets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.example/", "http://b.example/"}, urls)

	_, err = collector.ReadTargets(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCollector_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	db := newTestDB(t)
	c := collector.New(db, repository.NewGormWordRepository(), 2, 3*time.Second, discardLogger())

	inserted, err := c.Run(context.Background(), []string{server.URL})
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	var words []model.Word
	require.NoError(t, db.Order("english").Find(&words).Error)
	require.Len(t, words, 3)
	assert.Equal(t, "apple", words[0].English)
	assert.Equal(t, "りんご", words[0].Japanese)
	assert.Equal(t, "grape", words[1].English)
	// 英語側は前後の空白を落として登録される
	assert.Equal(t, "spaced word", words[2].English)
	assert.Equal(t, "空白付き", words[2].Japanese)
}

func TestCollector_Run_SkipsFailedURLs(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<div class="eng">apple</div><div class="jap">りんご</div>`))
	}))
	defer ok.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	db := newTestDB(t)
	c := collector.New(db, repository.NewGormWordRepository(), 2, 3*time.Second, discardLogger())

	inserted, err := c.Run(context.Background(), []string{broken.URL, ok.URL, "http://127.0.0.1:1/unreachable"})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	var count int64
	require.NoError(t, db.Model(&model.Word{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCollector_Run_UpsertOverwrites(t *testing.T) {
	first := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if first {
			first = false
			w.Write([]byte(`<div class="eng">apple</div><div class="jap">りんご</div>`))
			return
		}
		w.Write([]byte(`<div class="eng">apple</div><div class="jap">林檎</div>`))
	}))
	defer server.Close()

	db := newTestDB(t)
	c := collector.New(db, repository.NewGormWordRepository(), 1, 3*time.Second, discardLogger())

	_, err := c.Run(context.Background(), []string{server.URL})
	require.NoError(t, err)
	_, err = c.Run(context.Background(), []string{server.URL})
	require.NoError(t, err)

	var words []model.Word
	require.NoError(t, db.Find(&words).Error)
	require.Len(t, words, 1)
	assert.Equal(t, "林檎", words[0].Japanese)
}
