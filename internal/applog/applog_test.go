package applog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"timetable-scheduler/internal/config"
)

func TestInitAppliesTheConfiguredLevel(t *testing.T) {
	Init(config.LogConfig{Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInitFallsBackToInfoOnAnUnknownLevel(t *testing.T) {
	Init(config.LogConfig{Level: "not-a-real-level"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
