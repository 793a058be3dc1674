package store

import (
	"database/sql"
	"time"
)

// Event is one confirmed recognition result as recorded in the log.
type Event struct {
	ID         string
	Number     int
	Name       string
	Confidence int
	DetectedAt time.Time
}

// EventRepository provides access to the recognition-event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert appends an event to the log, stamping DetectedAt if unset.
func (r *EventRepository) Insert(e *Event) error {
	if e.DetectedAt.IsZero() {
		e.DetectedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO events (id, number, name, confidence, detected_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Number, e.Name, e.Confidence, e.DetectedAt,
	)
	return err
}

// ListRecent returns up to limit events, newest first.
func (r *EventRepository) ListRecent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, number, name, confidence, detected_at
		 FROM events ORDER BY detected_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Number, &e.Name, &e.Confidence, &e.DetectedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Clear removes all events from the log.
func (r *EventRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM events`)
	return err
}

// Count returns the number of logged events.
func (r *EventRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}
