// Package envconfig loads the settings of the profiling programs from the
// environment, optionally seeded from a .env file.
package envconfig

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Profile modes understood by the profiling programs.
const (
	ModeCPU = "cpu"
	ModeMem = "mem"
)

// Config holds the workload and profiling settings.
type Config struct {
	ProfileMode string
	ProfilePath string
	LogLevel    logrus.Level
	Rounds      int
	Iterations  int
	Entities    int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		ProfileMode: ModeMem,
		ProfilePath: ".",
		LogLevel:    logrus.InfoLevel,
		Rounds:      50,
		Iterations:  10000,
		Entities:    1000,
	}
}

// Load reads the given .env files (default ".env") into the process
// environment, then builds a Config from RETSU_* variables. A missing .env
// file is not an error; a malformed value is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "load %s", f)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error
	if cfg.Rounds, err = intVar(lookup, "RETSU_ROUNDS", cfg.Rounds); err != nil {
		return Config{}, err
	}
	if cfg.Iterations, err = intVar(lookup, "RETSU_ITERATIONS", cfg.Iterations); err != nil {
		return Config{}, err
	}
	if cfg.Entities, err = intVar(lookup, "RETSU_ENTITIES", cfg.Entities); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("RETSU_LOG_LEVEL"); ok && v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "RETSU_LOG_LEVEL")
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup("RETSU_PROFILE_MODE"); ok && v != "" {
		mode := strings.ToLower(v)
		if mode != ModeCPU && mode != ModeMem {
			return Config{}, errors.Errorf("RETSU_PROFILE_MODE: unknown mode %q", v)
		}
		cfg.ProfileMode = mode
	}
	if v, ok := lookup("RETSU_PROFILE_PATH"); ok && v != "" {
		cfg.ProfilePath = v
	}
	return cfg, nil
}

// Logger returns a logrus logger configured for the settings.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(c.LogLevel)
	return log
}

func intVar(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	if n <= 0 {
		return 0, errors.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}
