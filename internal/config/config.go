package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr        string   `env:"SERVER_ADDR" envDefault:":8085"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// RedisConfig holds Redis connection configuration.
// An empty URL disables memoization and the report stream.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	ReportStream string        `env:"REPORT_STREAM" envDefault:"nbareport.reports"`
	WarmInterval time.Duration `env:"WARM_INTERVAL" envDefault:"5m"`
}

// StatsConfig holds stats.nba.com client configuration
type StatsConfig struct {
	BaseURL string        `env:"NBA_STATS_BASE_URL" envDefault:"https://stats.nba.com/stats"`
	Timeout time.Duration `env:"NBA_STATS_TIMEOUT" envDefault:"15s"`
	Retries int           `env:"NBA_STATS_RETRIES" envDefault:"2"`
}

// ReportConfig holds report defaults
type ReportConfig struct {
	DefaultSeason string `env:"DEFAULT_SEASON" envDefault:"2023-24"`
	Locale        string `env:"REPORT_LOCALE" envDefault:"en"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Stats  StatsConfig
	Report ReportConfig
	Log    LogConfig
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot run with
func (c *Config) Validate() error {
	if !models.ValidSeason(c.Report.DefaultSeason) {
		return fmt.Errorf("DEFAULT_SEASON %q: expected YYYY-YY", c.Report.DefaultSeason)
	}
	switch c.Report.Locale {
	case basketball_nba.LocaleEnglish, basketball_nba.LocaleTraditionalChinese:
	default:
		return fmt.Errorf("REPORT_LOCALE %q: expected %s or %s",
			c.Report.Locale, basketball_nba.LocaleEnglish, basketball_nba.LocaleTraditionalChinese)
	}
	if c.Stats.Timeout <= 0 {
		return fmt.Errorf("NBA_STATS_TIMEOUT must be positive, got %s", c.Stats.Timeout)
	}
	if c.Stats.Retries < 1 {
		return fmt.Errorf("NBA_STATS_RETRIES must be at least 1, got %d", c.Stats.Retries)
	}
	if c.Redis.WarmInterval < 0 {
		return fmt.Errorf("WARM_INTERVAL must not be negative, got %s", c.Redis.WarmInterval)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT %q: expected json or text", c.Log.Format)
	}
	return nil
}

// CacheEnabled reports whether a Redis URL was configured
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.Redis.URL) != ""
}
