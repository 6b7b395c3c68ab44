package storage

import (
	"context"

	_ "github.com/mattn/go-sqlite3"

	"github.com/neurokit/neuroimport/internal/signal"
)

// Store provides an interface for persisting normalized recordings and
// reading them back for display. All write operations are atomic.
type Store interface {
	// CreateRecording stores the metadata and channel descriptors of a
	// normalized recording and returns its unique identifier. notchFreq is
	// the notch filter frequency applied to the amplifier data on import,
	// nil if none was applied.
	CreateRecording(ctx context.Context, sourcePath, format string, rec *signal.Recording, notchFreq *float64) (recordingID int64, err error)

	// StoreTraces stores the scaled sample traces of a recording's channels
	// in a single transaction. Every trace must name a channel previously
	// created by CreateRecording.
	StoreTraces(ctx context.Context, recordingID int64, traces []Trace) error

	// Recordings returns all stored recordings ordered by import time.
	Recordings(ctx context.Context) ([]*RecordingMeta, error)

	// Recording returns a stored recording by its ID.
	Recording(ctx context.Context, id int64) (*RecordingMeta, error)

	// Channels returns the channels of a recording in group canonical order
	// and, within a group, in descriptor order.
	Channels(ctx context.Context, recordingID int64) ([]Channel, error)

	// Trace returns the stored trace of a named channel, resolving the name
	// in group canonical order when it appears in more than one group.
	Trace(ctx context.Context, recordingID int64, name string) (*StoredTrace, error)

	// Close releases all database connections. The store cannot be reused
	// afterwards. It is safe to call Close multiple times.
	Close() error
}
