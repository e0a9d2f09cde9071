package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("storage: not found")

// State is a saved facelet string.
type State struct {
	StateID   string
	Name      string
	Dimension int
	Facelets  string
	Scramble  *string
	CreatedAt time.Time
}

// StateRepository provides CRUD operations for saved states.
type StateRepository struct {
	db *DB
}

// NewStateRepository creates a new state repository.
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Create saves a state and returns its ID.
func (r *StateRepository) Create(name string, dimension int, facelets, scramble string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO states (state_id, name, dimension, facelets, scramble, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, name, dimension, facelets, scramblePtr, createdAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to create state: %w", err)
	}

	return id, nil
}

// Get retrieves a state by ID.
func (r *StateRepository) Get(stateID string) (*State, error) {
	row := r.db.QueryRow(`
		SELECT state_id, name, dimension, facelets, scramble, created_at
		FROM states
		WHERE state_id = ?
	`, stateID)
	return scanState(row)
}

// GetByName retrieves the most recent state saved under name.
func (r *StateRepository) GetByName(name string) (*State, error) {
	row := r.db.QueryRow(`
		SELECT state_id, name, dimension, facelets, scramble, created_at
		FROM states
		WHERE name = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, name)
	return scanState(row)
}

// Resolve looks a state up by ID, falling back to its name.
func (r *StateRepository) Resolve(ref string) (*State, error) {
	s, err := r.Get(ref)
	if errors.Is(err, ErrNotFound) {
		return r.GetByName(ref)
	}
	return s, err
}

// List returns the most recent states, newest first.
func (r *StateRepository) List(limit int) ([]State, error) {
	rows, err := r.db.Query(`
		SELECT state_id, name, dimension, facelets, scramble, created_at
		FROM states
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	var states []State
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, err
		}
		states = append(states, *s)
	}

	return states, rows.Err()
}

// Delete removes a state and its solutions.
func (r *StateRepository) Delete(stateID string) error {
	res, err := r.db.Exec("DELETE FROM states WHERE state_id = ?", stateID)
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: state %s", ErrNotFound, stateID)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanState(row scanner) (*State, error) {
	var s State
	var createdAtStr string

	err := row.Scan(&s.StateID, &s.Name, &s.Dimension, &s.Facelets, &s.Scramble, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}
