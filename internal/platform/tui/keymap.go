package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockduel/internal/config"
	"github.com/vovakirdan/blockduel/internal/core"
)

// playerBinding ties one key binding to a player and an action.
type playerBinding struct {
	player  core.PlayerID
	action  core.Action
	binding key.Binding
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings come from the controls section of the duel config so both
// players can share one keyboard.
type KeyMapper struct {
	players []playerBinding
	pause   key.Binding
	quit    key.Binding
	back    key.Binding
}

// NewKeyMapper creates a key mapper from configured controls.
func NewKeyMapper(c config.ControlsConfig) *KeyMapper {
	km := &KeyMapper{
		pause: binding(c.Global.Pause, "pause"),
		quit:  binding(c.Global.Quit, "quit"),
		back:  binding(c.Global.Back, "back"),
	}
	km.addPlayer(core.Player1, c.Player1)
	km.addPlayer(core.Player2, c.Player2)
	return km
}

func (km *KeyMapper) addPlayer(id core.PlayerID, pc config.PlayerControls) {
	for _, b := range []struct {
		action core.Action
		keys   []string
		desc   string
	}{
		{core.ActionLeft, pc.Left, "left"},
		{core.ActionRight, pc.Right, "right"},
		{core.ActionRotate, pc.Rotate, "rotate"},
		{core.ActionSoftDrop, pc.SoftDrop, "soft drop"},
		{core.ActionHardDrop, pc.HardDrop, "hard drop"},
		{core.ActionRestart, pc.Restart, "restart"},
	} {
		km.players = append(km.players, playerBinding{
			player:  id,
			action:  b.action,
			binding: binding(b.keys, b.desc),
		})
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders a key list for help text.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// MapKey translates a key message to a player's action.
// Global keys (pause, back, quit) are reported for Player1.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, km.quit):
		return core.Player1, core.ActionQuit
	case key.Matches(msg, km.pause):
		return core.Player1, core.ActionPause
	case key.Matches(msg, km.back):
		return core.Player1, core.ActionBack
	}

	for _, pb := range km.players {
		if key.Matches(msg, pb.binding) {
			return pb.player, pb.action
		}
	}
	return core.Player1, core.ActionNone
}

// MapKeyToMultiFrame adds the action for a key to the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action := km.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	frame.Set(player, action)
	return false
}

// Bindings returns every binding for one player, for help views.
func (km *KeyMapper) Bindings(id core.PlayerID) []key.Binding {
	var out []key.Binding
	for _, pb := range km.players {
		if pb.player == id {
			out = append(out, pb.binding)
		}
	}
	return out
}

// GlobalBindings returns the pause, back and quit bindings.
func (km *KeyMapper) GlobalBindings() []key.Binding {
	return []key.Binding{km.pause, km.back, km.quit}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
// Menu keys are fixed so every player can navigate.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
