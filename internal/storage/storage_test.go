package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != len(migrations) {
		t.Errorf("version = %d, want %d", v, len(migrations))
	}
}

func TestStateCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewStateRepository(db)

	id, err := repo.Create("checker", 3, "UDUDUDUDU", "R2 L2")
	if err != nil {
		t.Fatal(err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "checker" || s.Dimension != 3 || s.Facelets != "UDUDUDUDU" {
		t.Errorf("unexpected state: %+v", s)
	}
	if s.Scramble == nil || *s.Scramble != "R2 L2" {
		t.Errorf("scramble = %v", s.Scramble)
	}
	if s.CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	byName, err := repo.Resolve("checker")
	if err != nil {
		t.Fatal(err)
	}
	if byName.StateID != id {
		t.Errorf("Resolve by name = %s, want %s", byName.StateID, id)
	}
}

func TestStateNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewStateRepository(db)

	if _, err := repo.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Resolve("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestStateListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewStateRepository(db)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := repo.Create(name, 2, "UUUURRRRFFFFDDDDLLLLBBBB", ""); err != nil {
			t.Fatal(err)
		}
	}

	states, err := repo.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != 2 {
		t.Fatalf("got %d states, want 2", len(states))
	}
	if states[0].Name != "c" || states[1].Name != "b" {
		t.Errorf("order = %s, %s", states[0].Name, states[1].Name)
	}
	if states[0].Scramble != nil {
		t.Error("empty scramble should be stored as NULL")
	}
}

func TestSolutionsFollowState(t *testing.T) {
	db := openTestDB(t)
	states := NewStateRepository(db)
	solutions := NewSolutionRepository(db)

	stateID, solutionID, err := solutions.SaveSolved("one", 3, "facelets", "R", []string{"R'"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := solutions.Create(stateID, []string{"R", "R", "R"}); err != nil {
		t.Fatal(err)
	}

	got, err := solutions.GetByState(stateID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d solutions, want 2", len(got))
	}
	if got[0].SolutionID != solutionID || !reflect.DeepEqual(got[0].Moves, []string{"R'"}) {
		t.Errorf("shortest solution = %+v", got[0])
	}

	if err := states.Delete(stateID); err != nil {
		t.Fatal(err)
	}
	got, err = solutions.GetByState(stateID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("solutions survived their state: %v", got)
	}
}

func TestSolutionRequiresState(t *testing.T) {
	db := openTestDB(t)
	solutions := NewSolutionRepository(db)
	if _, err := solutions.Create("no-such-state", []string{"U"}); err == nil {
		t.Error("expected a foreign key error")
	}
}

func TestOpenCreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "states.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != len(migrations) {
		t.Errorf("version = %d, want %d", v, len(migrations))
	}
}

func TestTransactionRollsBack(t *testing.T) {
	db := openTestDB(t)
	states := NewStateRepository(db)

	boom := errors.New("boom")
	err := db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO states (state_id, name, dimension, facelets, created_at)
			VALUES ('tx', 'tx', 3, 'x', '2026-01-01T00:00:00Z')
		`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if _, err := states.Get("tx"); !errors.Is(err, ErrNotFound) {
		t.Errorf("rolled back row is visible: %v", err)
	}
}
