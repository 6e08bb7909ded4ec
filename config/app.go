package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Port     string
	Env      string
	Debug    bool
	MediaUrl string

	// Storefront pacing. These are UX constants, not synchronization:
	// the debounce window gates catalog recomputation, the settle delay
	// rate-limits pagination reveals.
	PageIncrement  int
	DebounceWindow time.Duration
	RevealSettle   time.Duration

	// Cart persistence
	CartKeyPrefix     string
	CartSessionHeader string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:           GetEnv("APP_NAME", "storefront"),
			Port:              os.Getenv("PORT"),
			Env:               os.Getenv("APP_ENV"),
			Debug:             os.Getenv("DEBUG") == "true",
			MediaUrl:          GetEnv("MEDIA_URL", "/media/catalog/"),
			PageIncrement:     envInt("SHOP_PAGE_INCREMENT", 12),
			DebounceWindow:    envDurationMs("SHOP_DEBOUNCE_MS", 800),
			RevealSettle:      envDurationMs("SHOP_REVEAL_SETTLE_MS", 600),
			CartKeyPrefix:     GetEnv("CART_KEY_PREFIX", "cart:"),
			CartSessionHeader: GetEnv("CART_SESSION_HEADER", "X-Cart-Session"),
		}
	})
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envDurationMs(key string, def int64) time.Duration {
	ms := def
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			ms = n
		}
	}
	return time.Duration(ms) * time.Millisecond
}
