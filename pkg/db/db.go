package db

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	// use the sqlite db driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// DefaultKey is the name of the slot holding the reminder list.
const DefaultKey = "reminders"

//go:embed base.sql
var baseSQL string

// Database manages the db connection. The whole reminder list lives in a single key-value slot
// and is read and written in full.
type Database struct {
	conn  *sql.DB
	key   string
	clock func() time.Time
}

// Option configures a Database.
type Option func(*Database)

// WithKey sets the name of the slot the reminder list is stored under.
func WithKey(key string) Option {
	return func(d *Database) {
		if key != "" {
			d.key = key
		}
	}
}

// WithClock replaces the clock used to derive new ids.
func WithClock(clock func() time.Time) Option {
	return func(d *Database) {
		d.clock = clock
	}
}

// NewDatabase connects to the sqlite database at the given filename and initializes the structure
// if not present.
func NewDatabase(ctx context.Context, filename string, opts ...Option) (*Database, error) {
	conn, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite db at %s: %w", filename, err)
	}

	database := Database{
		conn:  conn,
		key:   DefaultKey,
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(&database)
	}

	err = database.initialize(ctx)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return &database, nil
}

func (d *Database) initialize(ctx context.Context) error {
	// run idempotent setup sql to create empty tables if they don't exist
	if _, err := d.conn.ExecContext(ctx, baseSQL); err != nil {
		return fmt.Errorf("error running base sql: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.conn.Close()
}

// Load returns the stored reminders in manual order. A missing slot or a value that doesn't parse
// as a list of reminders yields an empty list; only a failing query is reported.
func (d *Database) Load(ctx context.Context) ([]Reminder, error) {
	var value string

	err := d.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = $1`, d.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []Reminder{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("error loading reminders: %w", err)
	}

	var reminders []Reminder
	if err := json.Unmarshal([]byte(value), &reminders); err != nil {
		log.Warn().Err(err).Str("key", d.key).Msg("discarding unreadable reminder data")

		return []Reminder{}, nil
	}

	if reminders == nil {
		reminders = []Reminder{}
	}

	return reminders, nil
}

// Save replaces the stored list with the given reminders.
func (d *Database) Save(ctx context.Context, reminders []Reminder) error {
	if reminders == nil {
		reminders = []Reminder{}
	}

	value, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("error encoding reminders: %w", err)
	}

	_, err = d.conn.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO kv (key, value) VALUES ($1, $2)`,
		d.key, string(value),
	)
	if err != nil {
		return fmt.Errorf("error saving reminders: %w", err)
	}

	return nil
}

// nextID derives a new id from the clock, bumping it past the largest existing id so that ids
// keep increasing even when two reminders are created within the same millisecond.
func (d *Database) nextID(reminders []Reminder) int64 {
	id := d.clock().UnixMilli()

	for _, r := range reminders {
		if r.ID >= id {
			id = r.ID + 1
		}
	}

	return id
}
