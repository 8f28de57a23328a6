package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SATBOX_TEST_STR", "value")
	require.Equal(t, "value", GetEnv("SATBOX_TEST_STR", "fallback"))
	require.Equal(t, "fallback", GetEnv("SATBOX_TEST_UNSET", "fallback"))

	t.Setenv("SATBOX_TEST_EMPTY", "")
	require.Equal(t, "", GetEnv("SATBOX_TEST_EMPTY", "fallback"), "set but empty is not unset")
}

func TestGetEnvTyped(t *testing.T) {
	t.Setenv("SATBOX_TEST_INT", "42")
	t.Setenv("SATBOX_TEST_BAD_INT", "4x")
	t.Setenv("SATBOX_TEST_BOOL", "true")
	t.Setenv("SATBOX_TEST_DUR", "250ms")

	require.Equal(t, 42, GetEnvInt("SATBOX_TEST_INT", 1))
	require.Equal(t, 1, GetEnvInt("SATBOX_TEST_BAD_INT", 1))
	require.Equal(t, 7, GetEnvInt("SATBOX_TEST_UNSET", 7))
	require.True(t, GetEnvBool("SATBOX_TEST_BOOL", false))
	require.False(t, GetEnvBool("SATBOX_TEST_UNSET", false))
	require.Equal(t, 250*time.Millisecond, GetEnvDuration("SATBOX_TEST_DUR", time.Second))
	require.Equal(t, time.Second, GetEnvDuration("SATBOX_TEST_BAD_INT", time.Second))
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	require.Equal(t, log.DebugLevel, GetLogLevel())

	t.Setenv("LOG_LEVEL", "chatty")
	require.Equal(t, log.InfoLevel, GetLogLevel())
}

func TestNewLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "probe")

	logger.Info("hidden")
	logger.Warn("shown", "depth", 1.5)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "probe")
	require.Contains(t, buf.String(), "depth=1.5")
}
