package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/neurokit/neuroimport/internal/signal"
)

// SqliteStore handles database operations using a Sqlite database. Writes go
// through a WAL connection, reads through a separate read-only connection;
// both are opened lazily.
type SqliteStore struct {
	dbPath string

	writeDB     *sql.DB
	writeDBOnce sync.Once
	writeDBErr  error

	readDB     *sql.DB
	readDBOnce sync.Once
	readDBErr  error

	closeOnce sync.Once
	closeErr  error
}

// NewSqliteStore creates a new store backed by the Sqlite database at
// dbPath. The schema is initialized on first write.
func NewSqliteStore(dbPath string) *SqliteStore {
	return &SqliteStore{dbPath: dbPath}
}

func runSQLCommand(db *sql.DB, sql string) error {
	_, err := db.Exec(sql)
	return err
}

func (s *SqliteStore) getWriteDB() (*sql.DB, error) {
	s.writeDBOnce.Do(func() {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", s.dbPath, "_journal_mode=WAL&_synchronous=NORMAL"))
		if err != nil {
			s.writeDBErr = fmt.Errorf("opening write connection: %w", err)
			return
		}

		if err = runSQLCommand(db, initSchemaSQL); err != nil {
			_ = db.Close()
			s.writeDBErr = fmt.Errorf("initializing schema: %w", err)
			return
		}

		s.writeDB = db
	})

	return s.writeDB, s.writeDBErr
}

func (s *SqliteStore) getReadDB() (*sql.DB, error) {
	s.readDBOnce.Do(func() {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", s.dbPath, "mode=ro"))
		if err != nil {
			s.readDBErr = fmt.Errorf("opening read connection: %w", err)
			return
		}
		s.readDB = db
	})

	return s.readDB, s.readDBErr
}

func (s *SqliteStore) CreateRecording(ctx context.Context, sourcePath, format string, rec *signal.Recording, notchFreq *float64) (recordingID int64, err error) {
	var notes sql.NullString
	if len(rec.Header.Notes) > 0 {
		var p []byte
		if p, err = json.Marshal(rec.Header.Notes); err != nil {
			err = fmt.Errorf("marshaling notes: %w", err)
			return
		}
		notes.Valid = true
		notes.String = string(p)
	}

	var notch sql.NullFloat64
	if notchFreq != nil {
		notch.Valid = true
		notch.Float64 = *notchFreq
	}

	var numSamples int64
	if rec.Data != nil {
		numSamples = int64(rec.Data.NumSamples())
	}

	db, err := s.getWriteDB()
	if err != nil {
		err = fmt.Errorf("getting write connection: %w", err)
		return
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		err = fmt.Errorf("beginning transaction: %w", err)
		return
	}
	defer rollbackWithError(tx, &err)

	result, err := tx.ExecContext(ctx, insertRecordingSQL,
		sourcePath,
		format,
		rec.Header.Frequency.AmplifierSampleRate,
		numSamples,
		rec.Header.ReferenceChannel,
		notch,
		notes,
	)
	if err != nil {
		err = fmt.Errorf("inserting recording: %w", err)
		return
	}

	if recordingID, err = result.LastInsertId(); err != nil {
		err = fmt.Errorf("getting recording ID: %w", err)
		return
	}

	stmt, err := tx.PrepareContext(ctx, insertChannelSQL)
	if err != nil {
		err = fmt.Errorf("preparing statement: %w", err)
		return
	}
	defer closeWithError(stmt, &err)

	for _, kind := range signal.CanonicalOrder {
		for position, ch := range rec.Header.Group(kind) {
			if _, err = stmt.ExecContext(ctx, recordingID, string(kind), ch.Name, ch.NativeOrder, position); err != nil {
				err = fmt.Errorf("inserting channel %q: %w", ch.Name, err)
				return
			}
		}
	}

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("committing transaction: %w", err)
	}
	return
}

func (s *SqliteStore) StoreTraces(ctx context.Context, recordingID int64, traces []Trace) (err error) {
	if len(traces) == 0 {
		return
	}

	db, err := s.getWriteDB()
	if err != nil {
		return fmt.Errorf("getting write connection: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollbackWithError(tx, &err)

	channelStmt, err := tx.PrepareContext(ctx, selectChannelIDSQL)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer closeWithError(channelStmt, &err)

	traceStmt, err := tx.PrepareContext(ctx, insertTraceSQL)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer closeWithError(traceStmt, &err)

	for _, trace := range traces {
		var channelID int64
		err = channelStmt.QueryRowContext(ctx, recordingID, trace.Group, trace.Name).Scan(&channelID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no channel %q in group %s for recording %d", trace.Name, trace.Group, recordingID)
		}
		if err != nil {
			return fmt.Errorf("resolving channel %q: %w", trace.Name, err)
		}

		if _, err = traceStmt.ExecContext(ctx, channelID, trace.Unit, encodeSamples(trace.Samples)); err != nil {
			return fmt.Errorf("inserting trace %q: %w", trace.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return
}

// Close closes the database connections. After Close is called, the store
// instance cannot be reused.
func (s *SqliteStore) Close() error {
	s.closeOnce.Do(func() {
		var writeErr, readErr error

		if s.writeDB != nil {
			writeErr = s.writeDB.Close()
			s.writeDB = nil
		}

		if s.readDB != nil {
			readErr = s.readDB.Close()
			s.readDB = nil
		}

		switch {
		case writeErr != nil && readErr != nil:
			s.closeErr = errors.Join(writeErr, readErr)
		case writeErr != nil:
			s.closeErr = writeErr
		case readErr != nil:
			s.closeErr = readErr
		}
	})

	return s.closeErr
}
