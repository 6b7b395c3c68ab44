// Package importer defines the format importer contract and the
// extension-keyed registry used to dispatch recording files to the importer
// that understands them.
package importer

import (
	"errors"

	"github.com/neurokit/neuroimport/internal/signal"
)

// ErrUnknownFormat is returned when no importer is registered for a file's
// extension. The load is aborted; no partial result is produced.
var ErrUnknownFormat = errors.New("unknown recording format")

// Importer loads one recording file format into the canonical model.
type Importer interface {
	// Load parses the file at path and returns the canonical recording.
	// dataPresent reports whether the file carried sample data in addition
	// to the header; when false the recording has no data block.
	Load(path string) (rec *signal.Recording, dataPresent bool, err error)
}

// ParseError wraps a failure surfaced by a format's raw parser. The
// underlying message is preserved verbatim rather than reinterpreted, so
// diagnostics from the parsing collaborator reach the caller unchanged.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }
