// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Drivers

Open selects the driver from the configuration: sqlite (modernc.org/sqlite,
pure Go, the default — a single-user trip planner rarely needs more) or
postgres (lib/pq). Driver registration happens in main via blank imports.

# Schema

CreateSchema initializes the storage table, a key-value store for persisted
client state:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. SQL throughout the project
sticks to the sqlite/postgres dialect intersection: $N placeholders and
ON CONFLICT upserts.
*/
package db
