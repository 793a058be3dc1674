package store

import (
	"database/sql"
	"errors"
	"time"
)

// Action binds a gesture number to a shell command executed when that
// number is confirmed.
type Action struct {
	ID        string
	Number    int
	Command   string
	Enabled   bool
	CreatedAt time.Time
}

// ActionRepository provides CRUD operations for action bindings.
type ActionRepository struct {
	db *sql.DB
}

// Actions returns the action repository for this store.
func (s *Store) Actions() *ActionRepository {
	return &ActionRepository{db: s.db}
}

// Create inserts a new action binding.
func (r *ActionRepository) Create(a *Action) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO actions (id, number, command, enabled, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Number, a.Command, a.Enabled, a.CreatedAt,
	)
	return err
}

// GetByID retrieves an action by its ID.
func (r *ActionRepository) GetByID(id string) (*Action, error) {
	a := &Action{}
	err := r.db.QueryRow(
		`SELECT id, number, command, enabled, created_at
		 FROM actions WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.Number, &a.Command, &a.Enabled, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns all action bindings.
func (r *ActionRepository) List() ([]*Action, error) {
	rows, err := r.db.Query(
		`SELECT id, number, command, enabled, created_at
		 FROM actions ORDER BY number, created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActions(rows)
}

// ListForNumber returns the enabled bindings for one gesture number.
func (r *ActionRepository) ListForNumber(number int) ([]*Action, error) {
	rows, err := r.db.Query(
		`SELECT id, number, command, enabled, created_at
		 FROM actions WHERE number = ? AND enabled = 1 ORDER BY created_at`,
		number,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActions(rows)
}

// SetEnabled toggles a binding.
func (r *ActionRepository) SetEnabled(id string, enabled bool) error {
	res, err := r.db.Exec(`UPDATE actions SET enabled = ? WHERE id = ?`, enabled, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an action binding.
func (r *ActionRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM actions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanActions(rows *sql.Rows) ([]*Action, error) {
	var actions []*Action
	for rows.Next() {
		a := &Action{}
		if err := rows.Scan(&a.ID, &a.Number, &a.Command, &a.Enabled, &a.CreatedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
