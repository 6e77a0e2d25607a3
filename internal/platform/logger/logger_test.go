package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToInfo(t *testing.T) {
	log := New("laf-test")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewHonorsLevelOverride(t *testing.T) {
	t.Setenv("LAF_LOG_LEVEL", "warn")
	log := New("laf-test")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewIgnoresBadLevel(t *testing.T) {
	t.Setenv("LAF_LOG_LEVEL", "shouting")
	log := New("laf-test")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
