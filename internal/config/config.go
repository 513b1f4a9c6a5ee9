package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DataDir     string // fileストアの保存先ディレクトリ
	StoreDriver string // file / redis
	RedisAddr   string // STORE_DRIVER=redis のとき必須

	NatsURL      string // 任意。設定時のみ注文イベントをNATSへ配信
	GeminiAPIKey string // 任意。未設定なら生成AIは固定文言のみ

	PollInterval time.Duration // 保存領域の突き合わせ間隔

	GoEnv string // dev/prod
}

const (
	defaultDataDir      = "./data"
	defaultStoreDriver  = "file"
	defaultPollInterval = 2 * time.Second
)

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		DataDir:     getenv("DATA_DIR", defaultDataDir),
		StoreDriver: getenv("STORE_DRIVER", defaultStoreDriver),
		RedisAddr:   os.Getenv("REDIS_ADDR"),

		NatsURL:      os.Getenv("NATS_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		PollInterval: defaultPollInterval,

		GoEnv: getenv("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}

	switch cfg.StoreDriver {
	case "file":
		// OK
	case "redis":
		if cfg.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is required when STORE_DRIVER=redis")
		}
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be file or redis")
	}

	if v := os.Getenv("POLL_INTERVAL_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("POLL_INTERVAL_MS must be a positive number")
		}
		cfg.PollInterval = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
