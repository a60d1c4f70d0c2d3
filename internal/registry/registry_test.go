package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// stubGame is a minimal Game implementation for registry tests.
type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false after Register")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create(stub_a) failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("created game ID = %q, want stub_a", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create(no_such_game) should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists(no_such_game) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()

	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z", title: "Stub Z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "Stub B"} })

	games := List()
	if len(games) < 2 {
		t.Fatalf("List() returned %d games, want at least 2", len(games))
	}

	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List() not sorted: %q >= %q", games[i-1].ID, games[i].ID)
		}
	}

	for _, g := range games {
		if g.ID == "stub_z" && g.Title != "Stub Z" {
			t.Errorf("stub_z title = %q, want Stub Z", g.Title)
		}
	}
}
