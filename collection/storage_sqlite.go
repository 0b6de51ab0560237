package collection

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps the command log in a single SQLite table.
type SQLiteStorage struct {
	Filename string

	mutex sync.Mutex
	db    *sql.DB
}

func NewSQLiteStorage(filename string) (*SQLiteStorage, error) {

	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", filename, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS commands (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT    NOT NULL,
		uuid       TEXT    NOT NULL,
		timestamp  INTEGER NOT NULL,
		start_byte INTEGER NOT NULL DEFAULT 0,
		payload    BLOB    NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStorage{
		Filename: filename,
		db:       db,
	}, nil
}

func (s *SQLiteStorage) Persist(command *Command) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.db == nil {
		return ErrStorageClosed
	}

	_, err := s.db.Exec(
		"INSERT INTO commands (name, uuid, timestamp, start_byte, payload) VALUES (?, ?, ?, ?, ?)",
		command.Name, command.Uuid, command.Timestamp, command.StartByte, []byte(command.Payload),
	)
	if err != nil {
		return fmt.Errorf("insert command: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Load(f func(command *Command) error) error {
	s.mutex.Lock()
	db := s.db
	s.mutex.Unlock()

	if db == nil {
		return ErrStorageClosed
	}

	rows, err := db.Query("SELECT name, uuid, timestamp, start_byte, payload FROM commands ORDER BY seq")
	if err != nil {
		return fmt.Errorf("query commands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		command := &Command{}
		var payload []byte
		err := rows.Scan(&command.Name, &command.Uuid, &command.Timestamp, &command.StartByte, &payload)
		if err != nil {
			return fmt.Errorf("scan command: %w", err)
		}
		command.Payload = payload

		err = f(command)
		if err != nil {
			return err
		}
	}

	return rows.Err()
}

func (s *SQLiteStorage) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStorage) Drop() error {
	err := s.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	for _, filename := range []string{s.Filename, s.Filename + "-wal", s.Filename + "-shm"} {
		err = os.Remove(filename)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove: %w", err)
		}
	}

	return nil
}
