package env_config

import (
	"fmt"
	"os"
	"strconv"

	"auto-timer/pkg/timer"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	TIMING_DISABLED = checkTimingDisabled()
)

func checkTimingDisabled() bool {
	disabledStr := os.Getenv("TIMER_DISABLE")
	disabled := disabledStr == "true" || disabledStr == "1"
	if disabledStr != "" {
		fmt.Fprintf(os.Stderr, "env str: %s, timing disabled: %v\n", disabledStr, disabled)
	}
	return disabled
}

// SetLogLevelFromEnv applies LOG_LEVEL to the global zerolog level and
// falls back to info when the variable is unset or not a level name.
func SetLogLevelFromEnv() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	if level, err := zerolog.ParseLevel(logLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func styleFromString(styleStr string) (timer.LogStyle, bool) {
	switch styleStr {
	case "seconds":
		return timer.SECONDS, true
	case "pretty":
		return timer.PRETTY, true
	}
	return timer.PRETTY, false
}

// LogStyleFromEnv reads TIMER_LOG_STYLE ("seconds" or "pretty").
func LogStyleFromEnv() timer.LogStyle {
	styleStr := os.Getenv("TIMER_LOG_STYLE")
	if styleStr == "" {
		return timer.PRETTY
	}
	style, ok := styleFromString(styleStr)
	if !ok {
		log.Error().Msgf("log style %q is not recognized; default back to pretty", styleStr)
	}
	return style
}

// MinTimeToLogFromEnv reads TIMER_MIN_LOG as a threshold in seconds.
func MinTimeToLogFromEnv() float64 {
	minStr := os.Getenv("TIMER_MIN_LOG")
	if minStr == "" {
		return 0
	}
	min, err := strconv.ParseFloat(minStr, 64)
	if err != nil || min < 0 {
		log.Error().Msgf("TIMER_MIN_LOG %q is not a valid threshold; default back to 0", minStr)
		return 0
	}
	return min
}
