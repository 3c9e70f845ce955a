// seehuhn.de/go/raycast - ray collisions for graph paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
// Package config holds the settings of the test case commands, which
// are read from environment variables.
package config

import (
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/raycast"
)

type Config struct {
	Output        string  `envconfig:"RAYCAST_OUTPUT" default:"testdata/testcases.json"`
	OutputDir     string  `envconfig:"RAYCAST_OUTPUT_DIR" default:"debug"`
	Scale         float64 `envconfig:"RAYCAST_SCALE" default:"8"`
	PNG           bool    `envconfig:"RAYCAST_PNG" default:"false"`
	SmallDistance float64 `envconfig:"RAYCAST_SMALL_DISTANCE" default:"0.001"`
	LogLevel      string  `envconfig:"RAYCAST_LOG_LEVEL" default:"warn"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Caster returns a ray caster with the configured settings.
func (cfg *Config) Caster() *raycast.Caster {
	c := raycast.NewCaster()
	c.SmallDistance = cfg.SmallDistance
	return c
}

// SetupLogging directs the log messages of the raycast package to
// standard error.
func (cfg *Config) SetupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return err
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	raycast.SetLogger(slog.New(h))
	return nil
}
