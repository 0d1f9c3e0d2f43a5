package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the settings of a calculator session. Fields may be loaded
// from a YAML file and then overridden by flags.
type config struct {
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Precision is the number of bits used by the precise evaluator. Zero
	// evaluates in float64.
	Precision uint `yaml:"precision"`
	// Lines evaluates each input line as its own expression.
	Lines bool `yaml:"lines"`
	// Echo prints the postfix form of each expression before its result.
	Echo bool `yaml:"echo"`
	// Inverse starts the interactive calculator in inverse mode.
	Inverse bool `yaml:"inverse"`
	// History is the REPL history file. Empty means no history.
	History string `yaml:"history"`
}

func defaultConfig() config {
	return config{Format: "%g"}
}

// loadConfig reads YAML settings from path into cfg. Keys that are not
// settings are an error, so typos don't silently do nothing.
func loadConfig(path string, cfg *config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeConfig(bytes.NewReader(b), cfg)
}

func decodeConfig(r io.Reader, cfg *config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file.
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	if cfg.Format == "" {
		return errors.New("reading config: format must not be empty")
	}
	return nil
}
