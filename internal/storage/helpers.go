package storage

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"math"

	"github.com/neurokit/neuroimport/internal/signal"
)

func closeWithError(cl interface{ Close() error }, err *error) {
	if cErr := cl.Close(); cErr != nil && *err == nil {
		*err = cErr
	}
}

// rollbackWithError rolls back unless the transaction already committed.
func rollbackWithError(rb interface{ Rollback() error }, err *error) {
	if cErr := rb.Rollback(); cErr != nil && !errors.Is(cErr, sql.ErrTxDone) && *err == nil {
		*err = cErr
	}
}

// encodeSamples packs a sample trace into a little-endian float64 blob.
func encodeSamples(samples []float64) []byte {
	buf := make([]byte, 8*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}

// decodeSamples unpacks a little-endian float64 blob.
func decodeSamples(buf []byte) []float64 {
	samples := make([]float64, len(buf)/8)
	for i := range samples {
		samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return samples
}

// groupRank orders groups by the canonical resolution sequence; unknown
// groups sort last.
func groupRank(group string) int {
	for i, kind := range signal.CanonicalOrder {
		if string(kind) == group {
			return i
		}
	}
	return len(signal.CanonicalOrder)
}
