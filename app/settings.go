// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the window and loop settings of a program, loadable
// from a TOML file.
type Settings struct {

	// Title is the window title.
	Title string `toml:"title"`

	// Width is the logical width of the window.
	Width float32 `toml:"width"`

	// Height is the logical height of the window.
	Height float32 `toml:"height"`

	// Scale is the factor from logical units to pixels.
	Scale float32 `toml:"scale"`

	// FPS is the frame rate of the update loop.
	FPS int `toml:"fps"`
}

// NewSettings returns [Settings] with the defaults.
func NewSettings() *Settings {
	return &Settings{
		Title:  "glint",
		Width:  800,
		Height: 600,
		Scale:  1,
		FPS:    60,
	}
}

// OpenSettings reads settings from the given TOML file, applied over
// the defaults.
func OpenSettings(filename string) (*Settings, error) {
	st := NewSettings()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, st); err != nil {
		return nil, fmt.Errorf("settings: %q: %w", filename, err)
	}
	if st.Scale <= 0 {
		st.Scale = 1
	}
	if st.FPS <= 0 {
		st.FPS = 60
	}
	return st, nil
}

// SaveSettings writes the settings to the given TOML file.
func SaveSettings(st *Settings, filename string) error {
	b, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
