package main

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bytesight/bytesight/event"
)

// eventDB records the channel's sideband event stream for later querying.
type eventDB struct {
	db *sql.DB
}

func openEventDB(file string) (*eventDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS status (
		id INTEGER PRIMARY KEY NOT NULL,
		frame INTEGER NOT NULL,
		position INTEGER NOT NULL,
		entropy REAL NOT NULL,
		digest TEXT NOT NULL,
		acquired TIMESTAMP NOT NULL)`); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS stream_format (
		id INTEGER PRIMARY KEY NOT NULL,
		frame INTEGER NOT NULL,
		pack TEXT NOT NULL,
		mapping TEXT NOT NULL,
		unit_size INTEGER NOT NULL)`); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS pattern_match (
		id INTEGER PRIMARY KEY NOT NULL,
		frame INTEGER NOT NULL,
		pattern_id INTEGER NOT NULL,
		match_count INTEGER NOT NULL)`); err != nil {
		db.Close()
		return nil, err
	}

	return &eventDB{db: db}, nil
}

func (d *eventDB) record(frameNo uint64, ev event.Event) error {
	switch e := ev.(type) {
	case event.Status:
		_, err := d.db.Exec(
			"INSERT INTO status (frame, position, entropy, digest, acquired) VALUES (?, ?, ?, ?, ?)",
			frameNo, e.Position, e.Entropy, fmt.Sprintf("%016x", e.Digest), e.Acquired)
		return err
	case event.Format:
		_, err := d.db.Exec(
			"INSERT INTO stream_format (frame, pack, mapping, unit_size) VALUES (?, ?, ?, ?)",
			frameNo, e.Pack.String(), e.Mapping.String(), e.UnitSize)
		return err
	case event.PatternReport:
		_, err := d.db.Exec(
			"INSERT INTO pattern_match (frame, pattern_id, match_count) VALUES (?, ?, ?)",
			frameNo, e.ID, e.Count)
		return err
	default:
		return nil
	}
}

func (d *eventDB) Close() error {
	return d.db.Close()
}
