package storage

import "time"

// RecordingMeta summarizes one imported recording.
type RecordingMeta struct {
	ID               int64     `json:"ID"`
	ImportedAt       time.Time `json:"importedAt"`
	SourcePath       string    `json:"sourcePath"`
	Format           string    `json:"format"`
	SampleRate       float64   `json:"sampleRate"` // Hz
	NumSamples       int64     `json:"numSamples"` // Samples per channel
	ReferenceChannel string    `json:"referenceChannel,omitempty"`
	NotchFrequency   *float64  `json:"notchFrequency,omitempty"` // Hz, nil if no notch was applied
	Notes            *string   `json:"notes,omitempty"`          // JSON-encoded notes map
}

// Channel is one stored channel of a recording.
type Channel struct {
	ID          int64  `json:"ID"`
	RecordingID int64  `json:"recordingID"`
	Group       string `json:"group"`
	Name        string `json:"name"`
	NativeOrder int    `json:"nativeOrder"`
	Position    int    `json:"position"` // Row index within the group
}

// Trace is the scaled sample sequence of one channel, ready for persistence
// or rendering.
type Trace struct {
	Group       string    `json:"group"`
	Name        string    `json:"name"`
	NativeOrder int       `json:"nativeOrder"`
	Position    int       `json:"position"`
	Unit        string    `json:"unit"`
	Samples     []float64 `json:"samples"`
}

// StoredTrace combines a channel's metadata with its samples and the
// recording sample rate, as read back from the store.
type StoredTrace struct {
	Channel    Channel   `json:"channel"`
	Unit       string    `json:"unit"`
	Samples    []float64 `json:"samples"`
	SampleRate float64   `json:"sampleRate"` // Hz
}
