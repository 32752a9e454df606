package multiplayer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type memorySaver struct {
	saved []MatchResult
	err   error
}

func (s *memorySaver) SaveMatchResult(result MatchResult) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, result)
	return nil
}

func TestRecorderSavesAndStampsSession(t *testing.T) {
	var buf bytes.Buffer
	saver := &memorySaver{}
	rec := NewRecorder(saver, log.New(&buf), "alice-1")

	err := rec.Record(MatchResult{
		MatchID:  "m1",
		GameID:   "duel",
		Mode:     MatchModeLocal,
		Winner:   Player2,
		Player1:  PlayerStats{Score: 100},
		Player2:  PlayerStats{Score: 800},
		Duration: 42 * time.Second,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if len(saver.saved) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(saver.saved))
	}
	if saver.saved[0].Session != "alice-1" {
		t.Errorf("Session = %q, expected alice-1", saver.saved[0].Session)
	}
	if !strings.Contains(buf.String(), "match finished") || !strings.Contains(buf.String(), "P2") {
		t.Errorf("expected a log line naming the winner, got %q", buf.String())
	}
}

func TestRecorderWrapsSaveError(t *testing.T) {
	sentinel := errors.New("disk full")
	rec := NewRecorder(&memorySaver{err: sentinel}, log.New(&bytes.Buffer{}), "")

	err := rec.Record(MatchResult{MatchID: "m2"})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
}

func TestRecorderWithoutSaver(t *testing.T) {
	rec := NewRecorder(nil, log.New(&bytes.Buffer{}), "")
	if err := rec.Record(MatchResult{MatchID: "m3"}); err != nil {
		t.Errorf("expected nil error without a saver, got %v", err)
	}
}

func TestMatchResultDraw(t *testing.T) {
	if !(MatchResult{Mode: MatchModeLocal, Reason: MatchEndReasonCompleted}).Draw() {
		t.Error("completed match without winner should be a draw")
	}
	if (MatchResult{Mode: MatchModeSolo, Reason: MatchEndReasonCompleted}).Draw() {
		t.Error("solo game is never a draw")
	}
	if (MatchResult{Reason: MatchEndReasonAbandoned}).Draw() {
		t.Error("abandoned match is not a draw")
	}
	if (MatchResult{Reason: MatchEndReasonCompleted, Winner: Player1}).Draw() {
		t.Error("match with a winner is not a draw")
	}
}

func TestNewMatchIDUnique(t *testing.T) {
	a, b := NewMatchID(), NewMatchID()
	if a == b || len(a) != 36 {
		t.Errorf("unexpected match IDs %q %q", a, b)
	}
}

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry()
	now := time.Now()
	r.Register(SessionInfo{ID: "b", User: "bob", StartedAt: now.Add(time.Second)})
	r.Register(SessionInfo{ID: "a", User: "alice", StartedAt: now})

	if r.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", r.Count())
	}
	list := r.List()
	if list[0].User != "alice" {
		t.Errorf("List should be oldest first, got %v", list)
	}

	r.Unregister("a")
	if _, ok := r.Get("a"); ok {
		t.Error("a should be gone")
	}
	if info, ok := r.Get("b"); !ok || info.User != "bob" {
		t.Error("b should remain")
	}
}
