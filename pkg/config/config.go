package config

import (
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetInt(key string) int
	GetInt64(key string) int64
	GetString(key string) string
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
}

type config struct {
	cfg *viper.Viper
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	_ = cfg.BindEnv("server.host", "SERVICE_HOST")
	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("store.base_url", "STORE_API_BASE_URL")
	_ = cfg.BindEnv("store.timeout", "STORE_API_TIMEOUT")
	_ = cfg.BindEnv("session.cookie_name", "SESSION_COOKIE_NAME")
	_ = cfg.BindEnv("pricing.free_delivery_threshold", "PRICING_FREE_DELIVERY_THRESHOLD")
	_ = cfg.BindEnv("pricing.delivery_fee", "PRICING_DELIVERY_FEE")
	_ = cfg.BindEnv("pricing.tax_rate", "PRICING_TAX_RATE")
	_ = cfg.BindEnv("pricing.currency_digits", "PRICING_CURRENCY_DIGITS")
	_ = cfg.BindEnv("offers.cache_ttl", "OFFERS_CACHE_TTL")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("redis.prefix", "REDIS_PREFIX")
	_ = cfg.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	if addrs := os.Getenv("REDIS_ADDRS"); addrs != "" {
		cfg.Set("redis.addrs", strings.Split(addrs, ","))
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Set("cors.allowed_origins", strings.Split(origins, ","))
	}

	cfg.SetDefault("server.port", ":8080")
	cfg.SetDefault("store.base_url", "http://localhost:5000/api")
	cfg.SetDefault("store.timeout", 15*time.Second)
	cfg.SetDefault("session.cookie_name", "ff_session")

	// INR defaults: flat 49 fee below the 499 threshold, 5% GST, whole-rupee display.
	cfg.SetDefault("pricing.free_delivery_threshold", 499)
	cfg.SetDefault("pricing.delivery_fee", 49)
	cfg.SetDefault("pricing.tax_rate", 0.05)
	cfg.SetDefault("pricing.currency_digits", 0)

	cfg.SetDefault("offers.cache_ttl", 2*time.Minute)
	cfg.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})

	return &config{cfg: cfg}
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetFloat64(key string) float64 {
	return c.cfg.GetFloat64(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}
