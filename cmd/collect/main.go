// cmd/collect/main.go
//
// 設定されたURL群から英単語の組をスクレイピングし、wordテーブルに登録する
// オフラインジョブ。サーバと同じ設定ファイル・同じ永続化層を使います。
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"eitango_board/internal/collector"
	"eitango_board/internal/config"
	"eitango_board/internal/middleware"
	"eitango_board/internal/repository"
)

func main() {
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// 実行ごとのIDを全ログ行に付ける
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).
		With(slog.String("job", "collect"), slog.String("run_id", uuid.New().String()))
	slog.SetDefault(logger)

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	urls, err := collector.ReadTargets(config.Cfg.Collect.TargetsFile)
	if err != nil {
		logger.Error("Error reading collect targets", slog.Any("error", err))
		os.Exit(1)
	}
	if len(urls) == 0 {
		logger.Warn("No collect targets configured, nothing to do")
		return
	}

	c := collector.New(
		db,
		repository.NewGormWordRepository(),
		config.Cfg.Collect.Workers,
		time.Duration(config.Cfg.Collect.TimeoutSeconds)*time.Second,
		logger,
	)

	ctx := middleware.WithLogger(context.Background(), logger)
	if _, err := c.Run(ctx, urls); err != nil {
		logger.Error("Collect run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
