package main

import (
	"encoding/json"
	"os"
)

// Config mirrors the command-line flags; a flag given explicitly wins.
type Config struct {
	Addr    string `json:"addr"`
	Archive string `json:"archive"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
