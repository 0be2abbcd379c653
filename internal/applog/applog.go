// Package applog wires zerolog the way siakad-poc's handlers use it: a
// single global logger, structured fields attached per call site, no
// custom sink abstraction.
package applog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"timetable-scheduler/internal/config"
)

// Init configures the global zerolog logger from LogConfig. Call once at
// process start, before any other package logs.
func Init(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var writer = os.Stderr
	if cfg.Pretty {
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}
