// Package config provides shared configuration utilities.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt parses key as an integer. Unset or malformed values yield fallback;
// malformed ones are logged.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("ignoring malformed integer", "key", key, "value", value)
		return fallback
	}
	return n
}

// GetEnvBool parses key with strconv.ParseBool.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn("ignoring malformed bool", "key", key, "value", value)
		return fallback
	}
	return b
}

// GetEnvDuration parses key with time.ParseDuration, e.g. "16ms".
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn("ignoring malformed duration", "key", key, "value", value)
		return fallback
	}
	return d
}

// GetLogLevel reads LOG_LEVEL, defaulting to info.
func GetLogLevel() log.Level {
	lvl, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
