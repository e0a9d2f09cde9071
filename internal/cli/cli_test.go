package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/gocube_render/internal/storage"
	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

func TestSolvedState(t *testing.T) {
	if got := solvedState(2); got != "UUUURRRRFFFFDDDDLLLLBBBB" {
		t.Errorf("solvedState(2) = %s", got)
	}
	if got := len(solvedState(5)); got != 150 {
		t.Errorf("len(solvedState(5)) = %d", got)
	}
}

func TestResolveStateFromMoves(t *testing.T) {
	moveText, dimension = "R U R' U'", 3
	defer func() { moveText = "" }()

	in, err := resolveState(nil)
	if err != nil {
		t.Fatal(err)
	}
	if in.Scramble != "R U R' U'" || in.Dimension != 3 || len(in.Facelets) != 54 {
		t.Errorf("unexpected input state: %+v", in)
	}

	dimension = 4
	defer func() { dimension = 3 }()
	if _, err := resolveState(nil); err == nil {
		t.Error("expected an error for --moves on a 4x4")
	}
}

func TestResolveStateFromArgument(t *testing.T) {
	dimension = 2
	defer func() { dimension = 3 }()

	in, err := resolveState([]string{"uuuurrrrffffddddllllbbbb"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Facelets != solvedState(2) {
		t.Errorf("Facelets = %s", in.Facelets)
	}
	if _, err := resolveState([]string{"UUU"}); err == nil {
		t.Error("expected an error for a short state")
	}
}

func TestResolveStateDropsTrailingExcess(t *testing.T) {
	in, err := resolveState([]string{solvedState(3) + "UUR"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Facelets != solvedState(3) {
		t.Errorf("Facelets = %s, want %s", in.Facelets, solvedState(3))
	}
}

func TestStateSaveStoresCubeSizedFacelets(t *testing.T) {
	dbPath = filepath.Join(t.TempDir(), "states.db")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"state", "save", "long", solvedState(3) + "XYZ"})
	defer func() {
		rootCmd.SetArgs(nil)
		dbPath = ""
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	s, err := storage.NewStateRepository(db).GetByName("long")
	if err != nil {
		t.Fatal(err)
	}
	if s.Facelets != solvedState(3) {
		t.Errorf("stored facelets = %s, want %s", s.Facelets, solvedState(3))
	}
}

func TestStateSequence(t *testing.T) {
	moves, err := notation.ParseMoves("R U")
	if err != nil {
		t.Fatal(err)
	}
	states, err := stateSequence(solvedState(3), moves)
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != 3 {
		t.Fatalf("got %d states, want 3", len(states))
	}
	if states[0] != solvedState(3) {
		t.Error("sequence does not start with the input")
	}
	if states[1] != "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB" {
		t.Errorf("after R: %s", states[1])
	}
}

func TestPlayModelSteps(t *testing.T) {
	moves, _ := notation.ParseMoves("R U")
	states, err := stateSequence(solvedState(3), notation.Invert(moves))
	if err != nil {
		t.Fatal(err)
	}
	c, err := newCube(3)
	if err != nil {
		t.Fatal(err)
	}

	m := newPlayModel(c, moves, states, 0)
	key := func(s string) {
		var msg tea.KeyMsg
		if s == " " {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
		}
		m.Update(msg)
	}

	key("n")
	key("n")
	key("n") // past the end
	if m.index != 2 {
		t.Errorf("index = %d, want 2", m.index)
	}
	got, _ := c.State()
	if got != states[2] {
		t.Errorf("cube shows %s, want %s", got, states[2])
	}

	key("b")
	if m.index != 1 {
		t.Errorf("index after back = %d, want 1", m.index)
	}
	key("r")
	if m.index != 0 {
		t.Errorf("index after reset = %d, want 0", m.index)
	}
	if !strings.Contains(m.View(), "Move 0/2") {
		t.Error("view does not show progress")
	}
}

func TestShowCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", "--letters", "--dim", "2"})
	defer func() {
		rootCmd.SetArgs(nil)
		dimension = 3
		showLetters = false
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "State:    "+solvedState(2)) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
