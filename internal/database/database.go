package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool with foreign key
// enforcement enabled. Cascading deletes depend on it.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		header_image_url TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS messages (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		text TEXT NOT NULL CHECK (length(text) > 0 AND length(text) <= 140),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_messages_user ON messages(user_id);

	CREATE TABLE IF NOT EXISTS follows (
		follower_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		followed_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (follower_id, followed_id),
		CHECK (follower_id <> followed_id)
	);
	CREATE INDEX IF NOT EXISTS idx_follows_followed ON follows(followed_id);

	CREATE TABLE IF NOT EXISTS likes (
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message_id TEXT NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, message_id)
	);
	CREATE INDEX IF NOT EXISTS idx_likes_message ON likes(message_id);

	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		expires_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
