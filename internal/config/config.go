// Package config loads runtime configuration from environment variables
// (and an optional timetable.yaml file in the working directory), the way noah-isme-sma-adp-api's
// pkg/config does: viper with explicit defaults, no config-file-not-found
// treated as fatal.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config is the scheduler's full runtime configuration: the HTTP server,
// the default solve parameters, and logging.
type Config struct {
	Env       string
	HTTPPort  int
	APIPrefix string

	Solve   SolveConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// SolveConfig holds the default solve parameters read from configuration.
// The CLI flags and the POST /solve handler carry their own built-in
// defaults (greedy, 5 seconds) and do not read these values.
type SolveConfig struct {
	DefaultMode            string // "greedy" or "backtracking"
	DefaultDeadlineSeconds float64
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load reads TIMETABLE_-prefixed environment variables over a set of
// sane defaults. A missing config file is not an error — only a
// malformed one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("timetable")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TIMETABLE")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:       v.GetString("env"),
		HTTPPort:  v.GetInt("http_port"),
		APIPrefix: v.GetString("api_prefix"),
		Solve: SolveConfig{
			DefaultMode:            v.GetString("solve.default_mode"),
			DefaultDeadlineSeconds: v.GetFloat64("solve.default_deadline_seconds"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Pretty: v.GetBool("log.pretty"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
			Path:    v.GetString("metrics.path"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("http_port", 8080)
	v.SetDefault("api_prefix", "/api/v1")
	v.SetDefault("solve.default_mode", "greedy")
	v.SetDefault("solve.default_deadline_seconds", 5.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// DeadlineDuration is a convenience conversion for callers that need a
// time.Duration instead of a raw float.
func (s SolveConfig) DeadlineDuration() time.Duration {
	return time.Duration(s.DefaultDeadlineSeconds * float64(time.Second))
}
