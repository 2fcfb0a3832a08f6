package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config sizes the canvas and bounds the resources a program may use.
type Config struct {
	Width, Height int

	MaxTokens    int
	MaxTokenSize int
	StackLimit   int

	// FrameDelay is how long the display pauses after each frame.
	FrameDelay time.Duration
}

// DefaultConfig is a 51x33 canvas, 1000 tokens of at most 100 bytes each, a
// 100 operand stack, and one second per frame.
var DefaultConfig = Config{
	Width:        51,
	Height:       33,
	MaxTokens:    1000,
	MaxTokenSize: 100,
	StackLimit:   100,
	FrameDelay:   time.Second,
}

// LoadConfig reads a YAML configuration file, starting from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ReadConfig decodes YAML configuration from r, starting from DefaultConfig.
// Unknown keys are an error.
func ReadConfig(r io.Reader) (Config, error) {
	var raw configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	cfg, err := raw.toConfig(DefaultConfig)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("config: canvas must be at least 1x1, got %vx%v", cfg.Width, cfg.Height)
	case cfg.MaxTokens < 0 || cfg.MaxTokenSize < 0 || cfg.StackLimit < 0:
		return errors.New("config: limits must not be negative")
	case cfg.FrameDelay < 0:
		return errors.New("config: frame delay must not be negative")
	}
	return nil
}

type configFile struct {
	Canvas  canvasConfig  `yaml:"canvas"`
	Limits  limitsConfig  `yaml:"limits"`
	Display displayConfig `yaml:"display"`
}

type canvasConfig struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type limitsConfig struct {
	Tokens    *int `yaml:"tokens"`
	TokenSize *int `yaml:"token_size"`
	Stack     *int `yaml:"stack"`
}

type displayConfig struct {
	FrameDelay string `yaml:"frame_delay"`
}

func (raw configFile) toConfig(cfg Config) (Config, error) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&cfg.Width, raw.Canvas.Width)
	setInt(&cfg.Height, raw.Canvas.Height)
	setInt(&cfg.MaxTokens, raw.Limits.Tokens)
	setInt(&cfg.MaxTokenSize, raw.Limits.TokenSize)
	setInt(&cfg.StackLimit, raw.Limits.Stack)
	if raw.Display.FrameDelay != "" {
		d, err := time.ParseDuration(raw.Display.FrameDelay)
		if err != nil {
			return cfg, fmt.Errorf("display.frame_delay: %w", err)
		}
		cfg.FrameDelay = d
	}
	return cfg, nil
}
