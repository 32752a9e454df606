package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the default duel configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Gravity: GravityConfig{
			DelayMS: 1000,
		},
		Garbage: GarbageConfig{
			Enabled: true,
		},
		Controls: ControlsConfig{
			Player1: PlayerControls{
				Left:     []string{"a"},
				Right:    []string{"d"},
				Rotate:   []string{"w"},
				SoftDrop: []string{"s"},
				HardDrop: []string{" "},
				Restart:  []string{"1"},
			},
			Player2: PlayerControls{
				Left:     []string{"left"},
				Right:    []string{"right"},
				Rotate:   []string{"up"},
				SoftDrop: []string{"down"},
				HardDrop: []string{"enter"},
				Restart:  []string{"2"},
			},
			Global: GlobalControls{
				Pause: []string{"p"},
				Quit:  []string{"q", "ctrl+c"},
				Back:  []string{"esc", "b"},
			},
		},
	}
}
