package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Events table - confirmed recognition results, newest first
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			number INTEGER NOT NULL,
			name TEXT NOT NULL,
			confidence INTEGER NOT NULL DEFAULT 0,
			detected_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Actions table - commands to run when a gesture number is confirmed
		`CREATE TABLE IF NOT EXISTS actions (
			id TEXT PRIMARY KEY,
			number INTEGER NOT NULL,
			command TEXT NOT NULL,
			enabled INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_events_detected_at ON events(detected_at)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_number ON actions(number)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
