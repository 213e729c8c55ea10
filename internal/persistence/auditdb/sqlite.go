// Package auditdb indexes boundary calls in SQLite through a single async
// writer goroutine, so auditing never stalls the caller.
package auditdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	db *sql.DB

	ch   chan Call
	wg   sync.WaitGroup
	once sync.Once

	closed  atomic.Bool
	dropped atomic.Uint64
}

// Call is one audited boundary call.
type Call struct {
	At            time.Time
	Op            string
	Handle        int32
	OK            bool
	Error         string
	ProtocolFault bool
}

func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	d := &DB{
		db: db,
		ch: make(chan Call, 16384),
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.loop()
	}()
	return d, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		`CREATE TABLE IF NOT EXISTS calls (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			at TEXT NOT NULL,
			op TEXT NOT NULL,
			handle INTEGER NOT NULL,
			ok INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			protocol_fault INTEGER NOT NULL DEFAULT 0
		);`,
		"CREATE INDEX IF NOT EXISTS idx_calls_op ON calls(op);",
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Record enqueues one call row. Non-blocking: if the buffer is full or the
// DB is closed the row is dropped and counted.
func (d *DB) Record(c Call) {
	if d.closed.Load() {
		d.dropped.Add(1)
		return
	}
	if c.At.IsZero() {
		c.At = time.Now().UTC()
	}
	select {
	case d.ch <- c:
	default:
		d.dropped.Add(1)
	}
}

// Dropped reports how many rows were discarded due to backpressure.
func (d *DB) Dropped() uint64 { return d.dropped.Load() }

// Close drains the queue and closes the database.
func (d *DB) Close() error {
	var err error
	d.once.Do(func() {
		d.closed.Store(true)
		close(d.ch)
		d.wg.Wait()
		err = d.db.Close()
	})
	return err
}

func (d *DB) loop() {
	for c := range d.ch {
		ok := 0
		if c.OK {
			ok = 1
		}
		pf := 0
		if c.ProtocolFault {
			pf = 1
		}
		_, _ = d.db.Exec(
			"INSERT INTO calls (at, op, handle, ok, error, protocol_fault) VALUES (?, ?, ?, ?, ?, ?)",
			c.At.Format(time.RFC3339Nano), c.Op, c.Handle, ok, c.Error, pf,
		)
	}
}

// CallCounts returns the number of recorded calls per operation.
func (d *DB) CallCounts() (map[string]int, error) {
	rows, err := d.db.Query("SELECT op, COUNT(*) FROM calls GROUP BY op")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var op string
		var n int
		if err := rows.Scan(&op, &n); err != nil {
			return nil, err
		}
		out[op] = n
	}
	return out, rows.Err()
}

// HandleBalance reports successful loads minus successful releases. A steady
// state of zero between scopes means no session leaked.
func (d *DB) HandleBalance() (int, error) {
	var loads, releases int
	err := d.db.QueryRow(
		"SELECT COUNT(*) FROM calls WHERE op = 'LoadSave' AND ok = 1",
	).Scan(&loads)
	if err != nil {
		return 0, err
	}
	err = d.db.QueryRow(
		"SELECT COUNT(*) FROM calls WHERE op = 'ReleaseSave' AND ok = 1",
	).Scan(&releases)
	if err != nil {
		return 0, err
	}
	return loads - releases, nil
}
