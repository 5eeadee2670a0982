package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // json or console
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Postgres struct {
		Host         string        `yaml:"host"`
		Port         int           `yaml:"port"`
		Database     string        `yaml:"database"`
		User         string        `yaml:"user"`
		Password     string        `yaml:"password"`
		SSLMode      string        `yaml:"ssl_mode"`
		MaxConns     int           `yaml:"max_conns"`
		MinConns     int           `yaml:"min_conns"`
		ConnLifetime time.Duration `yaml:"conn_lifetime"`
		DialTimeout  time.Duration `yaml:"dial_timeout"`
	} `yaml:"postgres"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Market struct {
		BaseURL        string        `yaml:"base_url"`
		LookupTimeout  time.Duration `yaml:"lookup_timeout"`
		MaxConcurrency int           `yaml:"max_concurrency"`
		QuoteTTL       time.Duration `yaml:"quote_ttl"`
	} `yaml:"market"`
	Events struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		Compression  string   `yaml:"compression"`
		RequiredAcks int      `yaml:"required_acks"`
		MaxAttempts  int      `yaml:"max_attempts"`
	} `yaml:"events"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables. A local .env file is read first when present.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PG_HOST"); v != "" {
		c.Postgres.Host = v
	}
	if v := os.Getenv("PG_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Postgres.Port = p
		}
	}
	if v := os.Getenv("PG_DATABASE"); v != "" {
		c.Postgres.Database = v
	}
	if v := os.Getenv("PG_USER"); v != "" {
		c.Postgres.User = v
	}
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		c.Postgres.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Redis.Host = host
		if ok {
			if p, err := strconv.Atoi(port); err == nil {
				c.Redis.Port = p
			}
		}
	}
	if v := os.Getenv("MARKET_BASE_URL"); v != "" {
		c.Market.BaseURL = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Events.Topic = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
	if c.Market.LookupTimeout == 0 {
		c.Market.LookupTimeout = 10 * time.Second
	}
	if c.Market.MaxConcurrency == 0 {
		c.Market.MaxConcurrency = 16
	}
	if c.Market.QuoteTTL == 0 {
		c.Market.QuoteTTL = time.Minute
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "ledger.events"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if c.Postgres.Database == "" {
		return fmt.Errorf("postgres.database is required")
	}
	if c.Market.BaseURL == "" {
		return fmt.Errorf("market.base_url is required")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events.brokers cannot be empty when events are enabled")
	}
	return nil
}
