// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"eitango_board/internal/config"
	"eitango_board/internal/handlers"
	"eitango_board/internal/middleware"
	"eitango_board/internal/repository"
	"eitango_board/internal/service"
	"eitango_board/internal/webutil"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// データベース接続 (GORM)。スキーマ作成を含み、失敗したら起動しない。
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency Injection
	wordRepo := repository.NewGormWordRepository()
	actRepo := repository.NewGormActivityRepository()

	recorder := service.NewActivityRecorder(db, actRepo, time.Now)
	wordService := service.NewWordService(db, wordRepo, recorder)
	quizService := service.NewQuizService(db, wordRepo, &config.Cfg)
	dashboardService := service.NewDashboardService(db, wordRepo, actRepo, &config.Cfg, time.Now)

	wordHandler := handlers.NewWordHandler(wordService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	staticHandler := handlers.NewStaticHandler(config.Cfg.Server.StaticRoot, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.Cfg.CORS.AllowedOrigins,
		AllowedMethods: config.Cfg.CORS.AllowedMethods,
		AllowedHeaders: config.Cfg.CORS.AllowedHeaders,
	})
	r.Use(corsHandler.Handler)

	r.Use(middleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// 未知のパスも未対応のメソッドも空JSONの404。
	// ワイヤ上のステータスは 200/400/404/500 の4種類だけに保つ。
	r.NotFound(webutil.NotFoundHandler)
	r.MethodNotAllowed(webutil.NotFoundHandler)

	r.Get("/", dashboardHandler.GetDashboard)
	r.Get("/learning", quizHandler.GetLearning)
	r.Get("/english_list", wordHandler.GetEnglishList)
	r.Get("/bookmark", wordHandler.GetBookmarks)
	r.Get("/activity", dashboardHandler.GetActivities)
	r.Post("/update/is_correct", wordHandler.UpdateIsCorrect)
	r.Post("/update/bookmark", wordHandler.UpdateBookmark)
	r.Post("/register", wordHandler.Register)
	r.Post("/delete", wordHandler.Delete)
	r.Get("/static/{dir}/{file}", staticHandler.Serve)

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定に基づいて slog ロガーを初期化します。
// 開発環境 (APP_ENV=dev) では tint、それ以外ではJSONハンドラを使います。
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
