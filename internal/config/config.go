// Package config loads journey configuration from defaults, an optional YAML
// file and JOURNEY_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // time.location must resolve on hosts without zoneinfo

	"github.com/alexanderramin/journey/internal/llm"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "JOURNEY_"

type Config struct {
	DB       DBConfig       `koanf:"db"`
	Log      LogConfig      `koanf:"log"`
	LLM      LLMConfig      `koanf:"llm"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Time     TimeConfig     `koanf:"time"`
}

type DBConfig struct {
	Path string `koanf:"path"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // console | json
}

type LLMConfig struct {
	Enabled          bool   `koanf:"enabled"`
	LogCalls         bool   `koanf:"log_calls"`
	Endpoint         string `koanf:"endpoint"`
	Model            string `koanf:"model"`
	TimeoutMs        int    `koanf:"timeout_ms"`
	AnalyzeTimeoutMs int    `koanf:"analyze_timeout_ms"`
}

// TimeConfig names the IANA zone whose calendar decides "today" for streaks,
// goals and history dates. Empty or "Local" uses the system zone.
type TimeConfig struct {
	Location string `koanf:"location"`
}

// AnalysisConfig sizes the background analysis worker pool.
type AnalysisConfig struct {
	Workers        int `koanf:"workers"`
	QueueSize      int `koanf:"queue_size"`
	JobTimeoutMs   int `koanf:"job_timeout_ms"`
	DrainTimeoutMs int `koanf:"drain_timeout_ms"`
}

// Default returns the configuration used when nothing is overridden.
// The database lives at ~/.journey/journey.db when the home directory is known.
func Default() Config {
	dbPath := "journey.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".journey", "journey.db")
	}
	llmDefaults := llm.DefaultConfig()
	return Config{
		DB:  DBConfig{Path: dbPath},
		Log: LogConfig{Level: "warn", Format: "console"},
		LLM: LLMConfig{
			Enabled:          llmDefaults.Enabled,
			Endpoint:         llmDefaults.Endpoint,
			Model:            llmDefaults.Model,
			TimeoutMs:        llmDefaults.TimeoutMs,
			AnalyzeTimeoutMs: llmDefaults.TaskTimeout(llm.TaskAnalyze),
		},
		Analysis: AnalysisConfig{
			Workers:        2,
			QueueSize:      64,
			JobTimeoutMs:   90000,
			DrainTimeoutMs: 30000,
		},
	}
}

// Load builds the configuration. configPath may be empty, in which case only
// defaults and environment variables apply. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
		default:
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
			}
		}
	}

	// JOURNEY_LLM_ANALYZE_TIMEOUT_MS -> llm.analyze_timeout_ms
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		section, field, ok := strings.Cut(key, "_")
		if !ok {
			return key
		}
		return section + "." + field
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the runtime cannot honour.
func (c Config) Validate() error {
	if c.DB.Path == "" {
		return errors.New("config: db.path is required")
	}
	if c.Analysis.Workers <= 0 {
		return fmt.Errorf("config: analysis.workers must be positive, got %d", c.Analysis.Workers)
	}
	if c.Analysis.QueueSize <= 0 {
		return fmt.Errorf("config: analysis.queue_size must be positive, got %d", c.Analysis.QueueSize)
	}
	if c.Analysis.JobTimeoutMs <= 0 {
		return fmt.Errorf("config: analysis.job_timeout_ms must be positive, got %d", c.Analysis.JobTimeoutMs)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// LLMClientConfig converts the file/env settings into the llm package config.
func (c Config) LLMClientConfig() llm.LLMConfig {
	out := llm.DefaultConfig()
	out.Enabled = c.LLM.Enabled
	out.LogCalls = c.LLM.LogCalls
	if c.LLM.Endpoint != "" {
		out.Endpoint = c.LLM.Endpoint
	}
	if c.LLM.Model != "" {
		out.Model = c.LLM.Model
	}
	if c.LLM.TimeoutMs > 0 {
		out.TimeoutMs = c.LLM.TimeoutMs
	}
	return out.WithTaskTimeout(llm.TaskAnalyze, c.LLM.AnalyzeTimeoutMs)
}

// JobTimeout is the upper bound for one background analysis job.
func (c Config) JobTimeout() time.Duration {
	return time.Duration(c.Analysis.JobTimeoutMs) * time.Millisecond
}

// DrainTimeout bounds how long shutdown waits for queued analyses.
func (c Config) DrainTimeout() time.Duration {
	return time.Duration(c.Analysis.DrainTimeoutMs) * time.Millisecond
}

// Location resolves time.location.
func (c Config) Location() (*time.Location, error) {
	switch c.Time.Location {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Time.Location)
	if err != nil {
		return nil, fmt.Errorf("config: time.location %q: %w", c.Time.Location, err)
	}
	return loc, nil
}
