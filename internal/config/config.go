// Package config provides YAML-based game configuration loading for the
// block duel games.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DuelConfig contains all configuration for the duel games.
type DuelConfig struct {
	Gravity  GravityConfig  `yaml:"gravity"`
	Garbage  GarbageConfig  `yaml:"garbage"`
	Controls ControlsConfig `yaml:"controls"`
}

// GravityConfig defines how fast pieces fall on their own.
type GravityConfig struct {
	DelayMS int `yaml:"delay_ms"` // Milliseconds a piece hangs before dropping a row
}

// GarbageConfig toggles the attack mechanic.
type GarbageConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ControlsConfig binds keys for both players and for the whole game.
// Keys use Bubble Tea names ("a", "left", "enter", " ", "ctrl+c").
type ControlsConfig struct {
	Player1 PlayerControls `yaml:"player1"`
	Player2 PlayerControls `yaml:"player2"`
	Global  GlobalControls `yaml:"global"`
}

// PlayerControls are the six per-player commands.
type PlayerControls struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Rotate   []string `yaml:"rotate"`
	SoftDrop []string `yaml:"soft_drop"`
	HardDrop []string `yaml:"hard_drop"`
	Restart  []string `yaml:"restart"`
}

// GlobalControls are shared by both players.
type GlobalControls struct {
	Pause []string `yaml:"pause"`
	Quit  []string `yaml:"quit"`
	Back  []string `yaml:"back"`
}

// GravityDelay returns the gravity delay as a duration.
func (c DuelConfig) GravityDelay() time.Duration {
	return time.Duration(c.Gravity.DelayMS) * time.Millisecond
}

// Validate reports every problem with the configuration at once.
func (c DuelConfig) Validate() error {
	var errs []error

	if c.Gravity.DelayMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.delay_ms must be positive, got %d", c.Gravity.DelayMS))
	}

	seen := make(map[string]string)
	check := func(name string, keys []string) {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("%s has no keys", name))
			return
		}
		for _, k := range keys {
			if k == "" {
				errs = append(errs, fmt.Errorf("%s has an empty key", name))
				continue
			}
			if prev, dup := seen[k]; dup {
				errs = append(errs, fmt.Errorf("key %q bound to both %s and %s", k, prev, name))
				continue
			}
			seen[k] = name
		}
	}

	for _, p := range []struct {
		prefix string
		pc     PlayerControls
	}{
		{"controls.player1", c.Controls.Player1},
		{"controls.player2", c.Controls.Player2},
	} {
		check(p.prefix+".left", p.pc.Left)
		check(p.prefix+".right", p.pc.Right)
		check(p.prefix+".rotate", p.pc.Rotate)
		check(p.prefix+".soft_drop", p.pc.SoftDrop)
		check(p.prefix+".hard_drop", p.pc.HardDrop)
		check(p.prefix+".restart", p.pc.Restart)
	}
	check("controls.global.pause", c.Controls.Global.Pause)
	check("controls.global.quit", c.Controls.Global.Quit)
	check("controls.global.back", c.Controls.Global.Back)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid duel config: %w", errors.Join(errs...))
	}
	return nil
}
