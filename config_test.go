/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		endpoint: "https://opentdb.com/api.php",
		output:   "quiz_score.csv",
		timeout:  30 * time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "xlsx output", mutate: func(c *Config) { c.output = "scores.xlsx" }},
		{name: "uppercase extension", mutate: func(c *Config) { c.output = "SCORES.CSV" }},
		{name: "difficulty easy", mutate: func(c *Config) { c.difficulty = "easy" }},
		{name: "category set", mutate: func(c *Config) { c.category = 23 }},
		{name: "unsupported output", mutate: func(c *Config) { c.output = "scores.txt" }, wantErr: true},
		{name: "missing extension", mutate: func(c *Config) { c.output = "scores" }, wantErr: true},
		{name: "bad difficulty", mutate: func(c *Config) { c.difficulty = "impossible" }, wantErr: true},
		{name: "negative category", mutate: func(c *Config) { c.category = -1 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.timeout = 0 }, wantErr: true},
		{name: "relative endpoint", mutate: func(c *Config) { c.endpoint = "/api.php" }, wantErr: true},
		{name: "empty endpoint", mutate: func(c *Config) { c.endpoint = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewCmd_RejectsArguments(t *testing.T) {
	cmd := newCmd(&Config{})
	cmd.SetArgs([]string{"unexpected"})

	require.Error(t, cmd.Execute())
}
