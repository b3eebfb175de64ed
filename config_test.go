package htmlsaver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BatchSize != 50 {
		t.Errorf("expected default batch size 50, got %d", cfg.BatchSize)
	}
	if cfg.FlushInterval != 5*time.Second {
		t.Errorf("expected default flush interval 5s, got %v", cfg.FlushInterval)
	}
	if cfg.ChannelBuffer != 1000 {
		t.Errorf("expected default channel buffer 1000, got %d", cfg.ChannelBuffer)
	}
	if cfg.Prefix != "" {
		t.Errorf("expected empty default prefix, got %q", cfg.Prefix)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"zero batch size", Config{BatchSize: 0, FlushInterval: time.Second, ChannelBuffer: 1}, "batch_size"},
		{"zero flush interval", Config{BatchSize: 1, FlushInterval: 0, ChannelBuffer: 1}, "flush_interval"},
		{"negative channel buffer", Config{BatchSize: 1, FlushInterval: time.Second, ChannelBuffer: -1}, "channel_buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
batch_size: 10
flush_interval: 250ms
channel_buffer: 5
prefix: snapshots/v1
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BatchSize != 10 {
		t.Errorf("expected batch size 10, got %d", cfg.BatchSize)
	}
	if cfg.FlushInterval != 250*time.Millisecond {
		t.Errorf("expected flush interval 250ms, got %v", cfg.FlushInterval)
	}
	if cfg.ChannelBuffer != 5 {
		t.Errorf("expected channel buffer 5, got %d", cfg.ChannelBuffer)
	}
	if cfg.Prefix != "snapshots/v1" {
		t.Errorf("expected prefix \"snapshots/v1\", got %q", cfg.Prefix)
	}
}

func TestLoadConfig_MissingFieldsKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, "batch_size: 7\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BatchSize != 7 {
		t.Errorf("expected batch size 7, got %d", cfg.BatchSize)
	}
	if cfg.FlushInterval != 5*time.Second {
		t.Errorf("expected default flush interval, got %v", cfg.FlushInterval)
	}
	if cfg.ChannelBuffer != 1000 {
		t.Errorf("expected default channel buffer, got %d", cfg.ChannelBuffer)
	}
}

func TestLoadConfig_ExplicitZeroRejected(t *testing.T) {
	for _, content := range []string{"batch_size: 0\n", "channel_buffer: 0\n"} {
		path := writeConfigFile(t, content)

		_, err := LoadConfig(path)

		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected *ConfigError for %q, got %v", strings.TrimSpace(content), err)
		}
	}
}

func TestLoadConfig_BadDuration(t *testing.T) {
	path := writeConfigFile(t, "flush_interval: soon\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeConfigFile(t, "batch_size: -3\n")

	_, err := LoadConfig(path)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
