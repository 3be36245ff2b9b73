// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "EitangoBoard"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort            = ":8080"
	DefaultStaticRoot            = "."
	DefaultLogLevel              = "info"
	DefaultRecentActivityLimit   = 7
	DefaultLearningLogDays       = 7
	DefaultQuizChoices           = 4
	DefaultCollectTargetsFile    = "./setting/collect_target.txt"
	DefaultCollectWorkers        = 4
	DefaultCollectTimeoutSeconds = 3
)
