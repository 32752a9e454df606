package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockduel/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                { return g.id }
func (g *stubGame) Title() string                             { return "Stub " + g.id }
func (g *stubGame) Description() string                       { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig)                  {}
func (g *stubGame) Step(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                       {}
func (g *stubGame) State() core.GameState                     { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || Exists("missing") {
		t.Fatal("Exists reported the wrong games")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasSuffix(info.ID, "_stub") {
			ids = append(ids, info.ID)
			if info.Description != "a stub" {
				t.Errorf("Description not captured for %s", info.ID)
			}
		}
	}
	if strings.Join(ids, ",") != "aa_stub,zz_stub" {
		t.Errorf("List should be sorted by ID, got %v", ids)
	}

	g, err := Create("aa_stub")
	if err != nil || g.Title() != "Stub aa_stub" {
		t.Errorf("Create returned %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
