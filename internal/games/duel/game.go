// Package duel provides the two-player block duel and its single-board
// practice variant for the arcade.
package duel

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockduel/internal/config"
	platformcore "github.com/vovakirdan/blockduel/internal/core"
	"github.com/vovakirdan/blockduel/internal/games/duel/core"
	"github.com/vovakirdan/blockduel/internal/multiplayer"
	"github.com/vovakirdan/blockduel/internal/registry"
)

// Game IDs.
const (
	IDDuel = "duel"
	IDSolo = "duel_solo"
)

// Package-level variables for configuration
var (
	duelConfig = config.DefaultDuelConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.DuelConfig) {
	duelConfig = cfg
}

// Config returns the configuration new games will use.
func Config() config.DuelConfig {
	return duelConfig
}

func init() {
	registry.Register(IDDuel, func() registry.Game {
		return New(multiplayer.MatchModeLocal)
	})
	registry.Register(IDSolo, func() registry.Game {
		return New(multiplayer.MatchModeSolo)
	})
}

// banner is a short-lived message drawn over one board.
type banner struct {
	text    string
	expires uint64
}

// Game adapts the duel engine to the platform: it routes each player's
// actions to their board, drives gravity from a simulated clock and
// records a result whenever a round is decided.
type Game struct {
	mode multiplayer.MatchMode
	cfg  config.DuelConfig

	runtime platformcore.RuntimeConfig
	match   *core.Match   // Local duel
	solo    *core.Session // Solo practice

	// Simulated clock: advances one tick per Step so gravity depends only
	// on the tick rate and the seed.
	now      time.Time
	tickStep time.Duration
	tick     uint64

	paused bool

	// Current round
	roundID    multiplayer.MatchID
	roundStart uint64
	recorded   bool
	results    []multiplayer.MatchResult

	lastSeq [2]int
	banners [2]banner
}

// New creates a game in the given mode using the package configuration.
func New(mode multiplayer.MatchMode) *Game {
	return &Game{
		mode: mode,
		cfg:  duelConfig,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == multiplayer.MatchModeSolo {
		return IDSolo
	}
	return IDDuel
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == multiplayer.MatchModeSolo {
		return "Block Duel (practice)"
	}
	return "Block Duel"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.mode == multiplayer.MatchModeSolo {
		return "One board, no opponent"
	}
	return "Two players, one keyboard: clear lines to send garbage"
}

// Reset starts a fresh game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = platformcore.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.tickStep = time.Second / time.Duration(runtime.TickRate)
	g.now = time.Unix(0, 0).UTC()
	g.tick = 0
	g.paused = false
	g.lastSeq = [2]int{}
	g.banners = [2]banner{}
	g.results = nil

	clock := func() time.Time { return g.now }
	if g.mode == multiplayer.MatchModeSolo {
		g.match = nil
		g.solo = core.NewSession(core.Options{
			GravityDelay: g.cfg.GravityDelay(),
			Rand:         newRand(runtime.Seed),
			Clock:        clock,
		})
	} else {
		g.solo = nil
		g.match = core.NewMatch(core.MatchOptions{
			Seed:           runtime.Seed,
			GravityDelay:   g.cfg.GravityDelay(),
			Clock:          clock,
			DisableGarbage: !g.cfg.Garbage.Enabled,
		})
	}
	g.startRound()
}

// sessions returns the boards in play, player 1 first.
func (g *Game) sessions() []*core.Session {
	if g.solo != nil {
		return []*core.Session{g.solo}
	}
	if g.match == nil {
		return nil
	}
	return []*core.Session{g.match.Session(core.Player1), g.match.Session(core.Player2)}
}

func newRand(seed int64) core.Rand {
	return rand.New(rand.NewSource(seed))
}

// playerSide maps a platform player to an engine side.
func playerSide(id platformcore.PlayerID) core.Side {
	if id == platformcore.Player2 {
		return core.Player2
	}
	return core.Player1
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.MultiInputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.solo != nil {
		g.apply(g.solo, core.Player1, in.Merged())
	} else if g.match != nil {
		for _, id := range []platformcore.PlayerID{platformcore.Player1, platformcore.Player2} {
			side := playerSide(id)
			g.apply(g.match.Session(side), side, in.Player(id))
		}
	}

	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	g.now = g.now.Add(g.tickStep)
	if g.solo != nil {
		g.solo.Tick(g.now)
	} else if g.match != nil {
		g.match.Tick(g.now)
	}

	g.collectLocks()
	g.checkRound()

	return platformcore.StepResult{State: g.State()}
}

// apply routes one player's actions, in order, to their board.
// Restart works while paused; everything else waits.
func (g *Game) apply(s *core.Session, side core.Side, in platformcore.InputFrame) {
	for _, a := range in.Actions {
		if a == platformcore.ActionRestart {
			g.restart(side)
			continue
		}
		if g.paused {
			continue
		}
		switch a {
		case platformcore.ActionLeft:
			s.MoveLeft()
		case platformcore.ActionRight:
			s.MoveRight()
		case platformcore.ActionRotate:
			s.Rotate()
		case platformcore.ActionSoftDrop:
			s.MoveDown()
		case platformcore.ActionHardDrop:
			s.HardDrop()
		}
	}
}

func (g *Game) restart(side core.Side) {
	if g.solo != nil {
		g.solo.Restart()
	} else {
		g.match.Restart(side)
	}
	g.lastSeq[side] = 0
	g.banners[side] = banner{}
	g.checkRound()
}

// collectLocks turns fresh line clears into banners.
func (g *Game) collectLocks() {
	for i, s := range g.sessions() {
		lock := s.LastLock()
		if lock.Seq == g.lastSeq[i] {
			continue
		}
		g.lastSeq[i] = lock.Seq
		if lock.Lines == 0 {
			continue
		}
		text := core.ClearName(lock.Lines)
		if lock.Garbage > 0 {
			text += " +" + itoa(lock.Garbage)
		}
		g.banners[i] = banner{text: text, expires: g.tick + uint64(g.runtime.TickRate)}
	}
}

// outcome reports the current state of the round.
func (g *Game) outcome() core.Outcome {
	if g.solo != nil {
		if g.solo.GameOver() {
			return core.Draw
		}
		return core.Ongoing
	}
	if g.match == nil {
		return core.Ongoing
	}
	return g.match.Outcome()
}

// checkRound records a result once per decided round and opens a new round
// when restarts bring every board back into play.
func (g *Game) checkRound() {
	decided := g.outcome() != core.Ongoing
	switch {
	case decided && !g.recorded:
		g.results = append(g.results, g.result(multiplayer.MatchEndReasonCompleted))
		g.recorded = true
	case !decided && g.recorded:
		g.startRound()
	}
}

func (g *Game) startRound() {
	g.roundID = multiplayer.NewMatchID()
	g.roundStart = g.tick
	g.recorded = false
}

func (g *Game) result(reason multiplayer.MatchEndReason) multiplayer.MatchResult {
	ticks := g.tick - g.roundStart
	r := multiplayer.MatchResult{
		MatchID:  g.roundID,
		GameID:   g.ID(),
		Mode:     g.mode,
		Reason:   reason,
		Duration: time.Duration(ticks) * g.tickStep,
		Ticks:    ticks,
	}

	sessions := g.sessions()
	if len(sessions) > 0 {
		r.Player1 = playerStats(sessions[0])
	}
	if len(sessions) > 1 {
		r.Player2 = playerStats(sessions[1])
	}

	if reason == multiplayer.MatchEndReasonCompleted {
		switch g.outcome() {
		case core.Player1Wins:
			r.Winner = multiplayer.Player1
		case core.Player2Wins:
			r.Winner = multiplayer.Player2
		}
	}
	return r
}

func playerStats(s *core.Session) multiplayer.PlayerStats {
	st := s.Stats()
	return multiplayer.PlayerStats{
		Score:           s.Score(),
		Lines:           st.Lines,
		Pieces:          st.Pieces,
		GarbageSent:     st.GarbageSent,
		GarbageReceived: st.GarbageReceived,
	}
}

// DrainResults implements multiplayer.ResultSource.
func (g *Game) DrainResults() []multiplayer.MatchResult {
	out := g.results
	g.results = nil
	return out
}

// Abandon implements multiplayer.ResultSource. A round in progress in which
// at least one piece was locked is recorded as abandoned.
func (g *Game) Abandon() {
	if g.recorded {
		return
	}
	played := false
	for _, s := range g.sessions() {
		if s.Stats().Pieces > 0 {
			played = true
		}
	}
	if !played {
		return
	}
	g.results = append(g.results, g.result(multiplayer.MatchEndReasonAbandoned))
	g.recorded = true
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	state := platformcore.GameState{
		Paused: g.paused,
	}
	sessions := g.sessions()
	if len(sessions) == 0 {
		return state
	}
	state.Score = sessions[0].Score() // Report player 1's score

	switch g.outcome() {
	case core.Ongoing:
	case core.Player1Wins:
		state.GameOver = true
		state.Winner = platformcore.Player1
	case core.Player2Wins:
		state.GameOver = true
		state.Winner = platformcore.Player2
	default:
		state.GameOver = true
	}
	return state
}

// itoa converts an integer to string without fmt.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
