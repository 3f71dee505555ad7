package env_config

import (
	"testing"

	"auto-timer/pkg/timer"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestShouldReadLogStyleFromEnv(t *testing.T) {
	t.Setenv("TIMER_LOG_STYLE", "seconds")
	assert.Equal(t, timer.SECONDS, LogStyleFromEnv())
	t.Setenv("TIMER_LOG_STYLE", "pretty")
	assert.Equal(t, timer.PRETTY, LogStyleFromEnv())
	t.Setenv("TIMER_LOG_STYLE", "")
	assert.Equal(t, timer.PRETTY, LogStyleFromEnv())
	t.Setenv("TIMER_LOG_STYLE", "bogus")
	assert.Equal(t, timer.PRETTY, LogStyleFromEnv())
}

func TestShouldReadMinTimeToLogFromEnv(t *testing.T) {
	t.Setenv("TIMER_MIN_LOG", "1.5")
	assert.Equal(t, 1.5, MinTimeToLogFromEnv())
	t.Setenv("TIMER_MIN_LOG", "")
	assert.Equal(t, 0.0, MinTimeToLogFromEnv())
	t.Setenv("TIMER_MIN_LOG", "not-a-number")
	assert.Equal(t, 0.0, MinTimeToLogFromEnv())
	t.Setenv("TIMER_MIN_LOG", "-2")
	assert.Equal(t, 0.0, MinTimeToLogFromEnv())
}

func TestShouldSetLogLevelFromEnv(t *testing.T) {
	old := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(old)

	t.Setenv("LOG_LEVEL", "debug")
	SetLogLevelFromEnv()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	t.Setenv("LOG_LEVEL", "bogus")
	SetLogLevelFromEnv()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	t.Setenv("LOG_LEVEL", "")
	SetLogLevelFromEnv()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestShouldParseTimingDisabled(t *testing.T) {
	t.Setenv("TIMER_DISABLE", "1")
	assert.True(t, checkTimingDisabled())
	t.Setenv("TIMER_DISABLE", "true")
	assert.True(t, checkTimingDisabled())
	t.Setenv("TIMER_DISABLE", "false")
	assert.False(t, checkTimingDisabled())
	t.Setenv("TIMER_DISABLE", "")
	assert.False(t, checkTimingDisabled())
}
