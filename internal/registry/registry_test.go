package registry

import (
	"testing"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/core"
)

type stubGame struct{ title string }

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type stubLoadable struct{ stubGame }

func (g *stubLoadable) BeginLoad(string) {}
func (g *stubLoadable) Load([]calendar.Cell) error { return nil }
func (g *stubLoadable) FailLoad(error) {}

func TestRegisterCreateList(t *testing.T) {
	Register("test_plain", func() Game { return &stubGame{title: "Plain"} })
	Register("test_loadable", func() Game { return &stubLoadable{stubGame{title: "Loadable"}} })

	if !Exists("test_plain") || !Exists("test_loadable") {
		t.Fatal("registered games should exist")
	}
	if Exists("test_missing") {
		t.Error("unregistered game should not exist")
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create should fail for unknown id")
	}

	if _, err := CreateLoadable("test_plain"); err == nil {
		t.Error("CreateLoadable should fail for a game without loading")
	}
	lg, err := CreateLoadable("test_loadable")
	if err != nil {
		t.Fatalf("CreateLoadable returned error: %v", err)
	}
	if lg.Title() != "Loadable" {
		t.Errorf("Title() = %q, expected %q", lg.Title(), "Loadable")
	}

	infos := make(map[string]GameInfo)
	for _, info := range List() {
		infos[info.ID] = info
	}
	if infos["test_plain"].Loadable || !infos["test_loadable"].Loadable {
		t.Errorf("List should report loadability, got %+v", infos)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List should be sorted by ID, got %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{} })
}
