package main

import (
	"encoding/json"
	"fmt"
	"io"
	log "log/slog"
	"os"
)

type Config struct {
	Values   []int  `json:"values"`
	LogLevel string `json:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{Values: []int{5, -2, 9, 1}, LogLevel: "info"}
}

func LoadConfig(path string) (config *Config, err error) {
	config = DefaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	jsonStr, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(jsonStr, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Level() (log.Level, error) {
	var lvl log.Level
	if c.LogLevel == "" {
		return log.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
