// Package config loads defaults for the command line tools from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSampleRate = 48000
	DefaultBitDepth   = 16
	DefaultChannels   = 1
)

const (
	envSampleRate = "PCMWAV_SAMPLE_RATE"
	envBitDepth   = "PCMWAV_BIT_DEPTH"
	envChannels   = "PCMWAV_CHANNELS"
	envLogLevel   = "PCMWAV_LOG_LEVEL"
)

// Config holds tool defaults. Flags override these values.
type Config struct {
	SampleRate int
	BitDepth   int
	Channels   int
	LogLevel   logrus.Level
}

// Load reads an optional .env file from the working directory and then the
// PCMWAV_* environment variables. Unset variables fall back to defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		SampleRate: DefaultSampleRate,
		BitDepth:   DefaultBitDepth,
		Channels:   DefaultChannels,
		LogLevel:   logrus.InfoLevel,
	}

	var err error

	if cfg.SampleRate, err = intVar(getenv, envSampleRate, cfg.SampleRate); err != nil {
		return Config{}, err
	}

	if cfg.BitDepth, err = intVar(getenv, envBitDepth, cfg.BitDepth); err != nil {
		return Config{}, err
	}

	if cfg.Channels, err = intVar(getenv, envChannels, cfg.Channels); err != nil {
		return Config{}, err
	}

	if v := getenv(envLogLevel); v != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", envLogLevel, err)
		}
	}

	return cfg, nil
}

// Logger returns a logrus logger writing to stderr at the configured level.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(c.LogLevel)

	return log
}

func intVar(getenv func(string) string, name string, fallback int) (int, error) {
	v := getenv(name)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: %d must be positive", name, n)
	}

	return n, nil
}
