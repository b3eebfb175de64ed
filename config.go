package htmlsaver

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the worker settings. It is fixed at build time and read by
// the worker without synchronization for its entire lifetime.
type Config struct {
	// BatchSize is the number of items that triggers an immediate flush.
	BatchSize int `yaml:"batch_size"`

	// FlushInterval is how often a non-empty batch is flushed regardless
	// of size.
	FlushInterval time.Duration `yaml:"flush_interval"`

	// ChannelBuffer is the capacity of the channel between producers and
	// the worker. Save fails with ErrChannelFull once it is exhausted.
	ChannelBuffer int `yaml:"channel_buffer"`

	// Prefix is prepended to every storage key, separated by "/". May be
	// empty.
	Prefix string `yaml:"prefix"`
}

// DefaultConfig returns the default settings: batch size 50, flush interval
// 5s, channel buffer 1000, no prefix.
func DefaultConfig() Config {
	return Config{
		BatchSize:     50,
		FlushInterval: 5 * time.Second,
		ChannelBuffer: 1000,
	}
}

// Validate reports the first invalid field, or nil.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return &ConfigError{Field: "batch_size", Reason: "must be positive"}
	}
	if c.FlushInterval <= 0 {
		return &ConfigError{Field: "flush_interval", Reason: "must be positive"}
	}
	if c.ChannelBuffer <= 0 {
		return &ConfigError{Field: "channel_buffer", Reason: "must be positive"}
	}
	return nil
}

// UnmarshalYAML accepts flush_interval as a duration string ("250ms", "5s").
// Absent fields keep their defaults; fields that are present are taken as
// written, so an explicit zero fails validation instead of silently turning
// into the default.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BatchSize     *int    `yaml:"batch_size"`
		FlushInterval *string `yaml:"flush_interval"`
		ChannelBuffer *int    `yaml:"channel_buffer"`
		Prefix        string  `yaml:"prefix"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*c = DefaultConfig()
	if raw.BatchSize != nil {
		c.BatchSize = *raw.BatchSize
	}
	if raw.ChannelBuffer != nil {
		c.ChannelBuffer = *raw.ChannelBuffer
	}
	c.Prefix = raw.Prefix
	if raw.FlushInterval != nil {
		d, err := time.ParseDuration(*raw.FlushInterval)
		if err != nil {
			return fmt.Errorf("flush_interval: %w", err)
		}
		c.FlushInterval = d
	}
	return nil
}

// LoadConfig loads a Config from a YAML file. Missing fields keep their
// defaults; the result is validated before being returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
