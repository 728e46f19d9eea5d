package database

import "database/sql"

// Migrate applies the schema. Statements are idempotent so the server can
// run them on every boot.
func Migrate(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('user', 'counselor')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS counselor_codes (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		is_used BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		sender_id BIGINT NOT NULL REFERENCES users(id),
		receiver_id BIGINT NOT NULL REFERENCES users(id),
		content TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
		is_peer_support BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		counselor_id BIGINT NOT NULL REFERENCES users(id),
		date DATE NOT NULL,
		time TIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
	);
	`
	_, err := db.Exec(schema)
	return err
}
