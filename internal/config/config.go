// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port       string `mapstructure:"port"`
		StaticRoot string `mapstructure:"static_root"`
	} `mapstructure:"server"`
	App struct {
		RecentActivityLimit int `mapstructure:"recent_activity_limit"`
		LearningLogDays     int `mapstructure:"learning_log_days"`
		QuizChoices         int `mapstructure:"quiz_choices"`
	} `mapstructure:"app"`
	Collect struct {
		TargetsFile    string `mapstructure:"targets_file"`
		Workers        int    `mapstructure:"workers"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"collect"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
		AllowedMethods []string `mapstructure:"allowed_methods"`
		AllowedHeaders []string `mapstructure:"allowed_headers"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("server.port", "PORT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Server.StaticRoot == "" {
		Cfg.Server.StaticRoot = DefaultStaticRoot
	}
	if Cfg.App.RecentActivityLimit <= 0 {
		Cfg.App.RecentActivityLimit = DefaultRecentActivityLimit
	}
	if Cfg.App.LearningLogDays <= 0 {
		Cfg.App.LearningLogDays = DefaultLearningLogDays
	}
	// 4択 (正解1 + 不正解3) 未満にはしない
	if Cfg.App.QuizChoices < 2 {
		Cfg.App.QuizChoices = DefaultQuizChoices
	}
	if Cfg.Collect.TargetsFile == "" {
		Cfg.Collect.TargetsFile = DefaultCollectTargetsFile
	}
	if Cfg.Collect.Workers <= 0 {
		Cfg.Collect.Workers = DefaultCollectWorkers
	}
	if Cfg.Collect.TimeoutSeconds <= 0 {
		Cfg.Collect.TimeoutSeconds = DefaultCollectTimeoutSeconds
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Content-Type"}
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Static Root: %s", Cfg.Server.StaticRoot)

	return nil
}
