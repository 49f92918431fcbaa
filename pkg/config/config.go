package config

import (
	"fmt"
	"os"
	"strings"
	"time"

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
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Dataset struct {
		Backend string `yaml:"backend"` // "csv" or "clickhouse"
		CSVPath string `yaml:"csv_path"`
	} `yaml:"dataset"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Kafka struct {
		Enabled    bool          `yaml:"enabled"`
		Brokers    []string      `yaml:"brokers"`
		Topic      string        `yaml:"topic"`
		GroupID    string        `yaml:"group_id"`
		Workers    int           `yaml:"workers"`
		BufferSize int           `yaml:"buffer_size"`
		RetryMax   int           `yaml:"retry_max"`
		BackoffMin time.Duration `yaml:"backoff_min"`
		BackoffMax time.Duration `yaml:"backoff_max"`
		MinBytes   int           `yaml:"min_bytes"`
		MaxBytes   int           `yaml:"max_bytes"`
	} `yaml:"kafka"`
	Artifacts struct {
		Dir        string `yaml:"dir"`
		WindowSize int    `yaml:"window_size"`
	} `yaml:"artifacts"`
	Forecast struct {
		DefaultDays     int           `yaml:"default_days"`
		MinDays         int           `yaml:"min_days"`
		MaxDays         int           `yaml:"max_days"`
		AnalysisHorizon int           `yaml:"analysis_horizon"`
		CacheTTL        time.Duration `yaml:"cache_ttl"`
	} `yaml:"forecast"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`
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

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("DATASET_BACKEND"); v != "" {
		c.Dataset.Backend = v
	}
	if v := os.Getenv("DATASET_CSV"); v != "" {
		c.Dataset.CSVPath = v
	}
	if v := os.Getenv("ARTIFACTS_DIR"); v != "" {
		c.Artifacts.Dir = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port := v, 0
		if i := strings.LastIndex(v, ":"); i > 0 {
			host = v[:i]
			fmt.Sscanf(v[i+1:], "%d", &port)
		}
		c.Redis.Host = host
		if port > 0 {
			c.Redis.Port = port
		}
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Artifacts.WindowSize == 0 {
		c.Artifacts.WindowSize = 30
	}
	if c.Forecast.DefaultDays == 0 {
		c.Forecast.DefaultDays = 30
	}
	if c.Forecast.MinDays == 0 {
		c.Forecast.MinDays = 7
	}
	if c.Forecast.MaxDays == 0 {
		c.Forecast.MaxDays = 60
	}
	if c.Forecast.AnalysisHorizon == 0 {
		c.Forecast.AnalysisHorizon = 7
	}
	if c.Forecast.CacheTTL == 0 {
		c.Forecast.CacheTTL = 10 * time.Minute
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
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Dataset.Backend == "" {
		return fmt.Errorf("dataset.backend is required")
	}
	if c.Dataset.Backend != "csv" && c.Dataset.Backend != "clickhouse" {
		return fmt.Errorf("dataset.backend must be 'csv' or 'clickhouse', got '%s'", c.Dataset.Backend)
	}
	if c.Dataset.Backend == "csv" && c.Dataset.CSVPath == "" {
		return fmt.Errorf("dataset.csv_path is required for csv backend")
	}
	if c.Dataset.Backend == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required for clickhouse backend")
	}
	if c.Artifacts.Dir == "" {
		return fmt.Errorf("artifacts.dir is required")
	}
	if c.Artifacts.WindowSize <= 0 {
		return fmt.Errorf("artifacts.window_size must be positive")
	}
	if c.Forecast.MinDays > c.Forecast.MaxDays {
		return fmt.Errorf("forecast.min_days cannot exceed forecast.max_days")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.Kafka.Enabled && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka is enabled")
	}
	return nil
}
