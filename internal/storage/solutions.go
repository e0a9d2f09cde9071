package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Solution is a move sequence that solves a saved state.
type Solution struct {
	SolutionID string
	StateID    string
	Moves      []string
	CreatedAt  time.Time
}

// SolutionRepository provides CRUD operations for solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create stores moves as a solution of stateID and returns its ID.
func (r *SolutionRepository) Create(stateID string, moves []string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solutions (solution_id, state_id, moves, move_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, stateID, strings.Join(moves, " "), len(moves), createdAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to create solution: %w", err)
	}

	return id, nil
}

// SaveSolved stores a state together with its solution in one transaction.
func (r *SolutionRepository) SaveSolved(name string, dimension int, facelets, scramble string, moves []string) (string, string, error) {
	stateID := uuid.New().String()
	solutionID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO states (state_id, name, dimension, facelets, scramble, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, stateID, name, dimension, facelets, scramblePtr, createdAt)
		if err != nil {
			return fmt.Errorf("failed to create state: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO solutions (solution_id, state_id, moves, move_count, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, solutionID, stateID, strings.Join(moves, " "), len(moves), createdAt)
		if err != nil {
			return fmt.Errorf("failed to create solution: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}

	return stateID, solutionID, nil
}

// GetByState retrieves all solutions of a state, shortest first.
func (r *SolutionRepository) GetByState(stateID string) ([]Solution, error) {
	rows, err := r.db.Query(`
		SELECT solution_id, state_id, moves, created_at
		FROM solutions
		WHERE state_id = ?
		ORDER BY move_count, created_at
	`, stateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		var s Solution
		var moves, createdAtStr string
		if err := rows.Scan(&s.SolutionID, &s.StateID, &moves, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		s.Moves = strings.Fields(moves)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solutions = append(solutions, s)
	}

	return solutions, rows.Err()
}
