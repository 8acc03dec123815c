// Package config resolves runtime settings from defaults, an optional .env
// file, REVERSI_* environment variables and command-line flags, in that
// order of precedence (flags win).
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const envPrefix = "REVERSI_"

// Config holds every tunable of the board front-ends.
type Config struct {
	Title    string
	Cells    int     // cells per side
	Width    int     // initial window width (pixels or columns)
	Height   int     // initial window height
	AssetDir string  // directory holding white*.png / black*.png faces
	Mute     bool    // disable sound effects
	Volume   float64 // 0..1 gain for sound effects
	Seed     int64   // face rotation seed; 0 picks one from the clock
	LogLevel string
	LogFile  string // empty logs to stderr
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:    "Reversi",
		Cells:    8,
		Width:    960,
		Height:   720,
		AssetDir: "resources",
		Volume:   0.6,
		LogLevel: "info",
	}
}

// Load builds a Config for a program. envFile may be empty; a missing file
// is not an error.
func Load(name string, args []string, envFile string) (Config, error) {
	cfg := Default()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	fsFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	fsFlags.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fsFlags.IntVar(&cfg.Cells, "cells", cfg.Cells, "cells per board side")
	fsFlags.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fsFlags.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	fsFlags.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "directory with piece face images")
	fsFlags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound effects")
	fsFlags.Float64Var(&cfg.Volume, "volume", cfg.Volume, "sound effect volume (0-1)")
	fsFlags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "face rotation seed (0 = time based)")
	fsFlags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fsFlags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	if err := fsFlags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(envPrefix + key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", envPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("TITLE", &c.Title)
	str("ASSETS", &c.AssetDir)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FILE", &c.LogFile)
	for key, dst := range map[string]*int{"CELLS": &c.Cells, "WIDTH": &c.Width, "HEIGHT": &c.Height} {
		if err := num(key, dst); err != nil {
			return err
		}
	}
	if v, ok := lookup(envPrefix + "MUTE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sMUTE: %w", envPrefix, err)
		}
		c.Mute = b
	}
	if v, ok := lookup(envPrefix + "VOLUME"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %sVOLUME: %w", envPrefix, err)
		}
		c.Volume = f
	}
	if v, ok := lookup(envPrefix + "SEED"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED: %w", envPrefix, err)
		}
		c.Seed = n
	}
	return nil
}

// Validate rejects settings the front-ends cannot run with.
func (c Config) Validate() error {
	if c.Cells < 1 || c.Cells > 26 {
		return fmt.Errorf("config: cells must be in 1..26, got %d", c.Cells)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("config: volume must be in 0..1, got %.2f", c.Volume)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SeedOrNow returns the configured seed, or the current time when unset.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Logger builds the process logger. The returned close func releases the
// log file, if one was opened.
func (c Config) Logger() (*logrus.Logger, func() error, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	l.SetLevel(lvl)
	closer := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("config: open log file: %w", err)
		}
		l.SetOutput(f)
		closer = f.Close
	}
	return l, closer, nil
}
