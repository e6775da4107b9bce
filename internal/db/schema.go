package db

import "database/sql"

func Migrate(db *sql.DB) {
	db.Exec(`
	CREATE TABLE IF NOT EXISTS attestations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT,
		game_id TEXT,
		player TEXT,
		status TEXT,
		payout INTEGER,
		signature TEXT,
		ts INTEGER
	);`)
}
