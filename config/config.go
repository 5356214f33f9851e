package config

import (
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type FeedConfig struct {
	Prices     string `yaml:"prices"`
	Trades     string `yaml:"trades"`
	MarketData string `yaml:"market_data"`
	Inquiries  string `yaml:"inquiries"`
}

type GUIConfig struct {
	ThrottleMs int `yaml:"throttle_ms"`
	MaxUpdates int `yaml:"max_updates"`
}

type StreamingConfig struct {
	EvenVisibleQty int64 `yaml:"even_visible_qty"`
	OddVisibleQty  int64 `yaml:"odd_visible_qty"`
}

type AppConfig struct {
	ServiceName string          `yaml:"service_name"`
	LogLevel    string          `yaml:"log_level"`
	OutputDir   string          `yaml:"output_dir"`
	Feeds       FeedConfig      `yaml:"feeds"`
	GUI         GUIConfig       `yaml:"gui"`
	Streaming   StreamingConfig `yaml:"streaming"`
}

// ThrottleInterval returns the GUI throttle as a duration, defaulting to
// 300ms when unset.
func (c *AppConfig) ThrottleInterval() time.Duration {
	if c.GUI.ThrottleMs <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.GUI.ThrottleMs) * time.Millisecond
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")
	zap.S().Debugf("CONFIG_FILE=%v", filePath)

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
