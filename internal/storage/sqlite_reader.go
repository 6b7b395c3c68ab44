package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a requested recording, channel or trace does
// not exist in the store.
var ErrNotFound = errors.New("not found")

func (s *SqliteStore) Recordings(ctx context.Context) (recordings []*RecordingMeta, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectRecordingsSQL)
	if err != nil {
		err = fmt.Errorf("querying recordings: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var meta RecordingMeta
		if err = scanRecording(rows.Scan, &meta); err != nil {
			err = fmt.Errorf("scanning recording: %w", err)
			return
		}
		recordings = append(recordings, &meta)
	}
	err = rows.Err()
	return
}

func (s *SqliteStore) Recording(ctx context.Context, id int64) (*RecordingMeta, error) {
	db, err := s.getReadDB()
	if err != nil {
		return nil, fmt.Errorf("getting read connection: %w", err)
	}

	var meta RecordingMeta
	err = scanRecording(db.QueryRowContext(ctx, selectRecordingSQL, id).Scan, &meta)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: recording %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning recording: %w", err)
	}
	return &meta, nil
}

func (s *SqliteStore) Channels(ctx context.Context, recordingID int64) (channels []Channel, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectChannelsSQL, recordingID)
	if err != nil {
		err = fmt.Errorf("querying channels: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var ch Channel
		if err = rows.Scan(&ch.ID, &ch.RecordingID, &ch.Group, &ch.Name, &ch.NativeOrder, &ch.Position); err != nil {
			err = fmt.Errorf("scanning channel: %w", err)
			return
		}
		channels = append(channels, ch)
	}
	if err = rows.Err(); err != nil {
		return
	}

	sort.SliceStable(channels, func(i, j int) bool {
		if ri, rj := groupRank(channels[i].Group), groupRank(channels[j].Group); ri != rj {
			return ri < rj
		}
		return channels[i].Position < channels[j].Position
	})
	return
}

// Trace returns the stored trace of a named channel. A name present in more
// than one group resolves to the group earliest in the canonical order.
func (s *SqliteStore) Trace(ctx context.Context, recordingID int64, name string) (trace *StoredTrace, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectTraceSQL, recordingID, name)
	if err != nil {
		err = fmt.Errorf("querying trace: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var t StoredTrace
		var blob []byte
		if err = rows.Scan(
			&t.Channel.ID,
			&t.Channel.RecordingID,
			&t.Channel.Group,
			&t.Channel.Name,
			&t.Channel.NativeOrder,
			&t.Channel.Position,
			&t.Unit,
			&blob,
			&t.SampleRate,
		); err != nil {
			err = fmt.Errorf("scanning trace: %w", err)
			return
		}
		t.Samples = decodeSamples(blob)

		if trace == nil || groupRank(t.Channel.Group) < groupRank(trace.Channel.Group) {
			trace = &t
		}
	}
	if err = rows.Err(); err != nil {
		return
	}

	if trace == nil {
		err = fmt.Errorf("%w: channel %q in recording %d", ErrNotFound, name, recordingID)
	}
	return
}

func scanRecording(scan func(dest ...any) error, meta *RecordingMeta) error {
	var reference sql.NullString
	var notch sql.NullFloat64
	var notes sql.NullString

	if err := scan(
		&meta.ID,
		&meta.ImportedAt,
		&meta.SourcePath,
		&meta.Format,
		&meta.SampleRate,
		&meta.NumSamples,
		&reference,
		&notch,
		&notes,
	); err != nil {
		return err
	}

	if reference.Valid {
		meta.ReferenceChannel = reference.String
	}
	if notch.Valid {
		meta.NotchFrequency = &notch.Float64
	}
	if notes.Valid {
		meta.Notes = &notes.String
	}
	return nil
}
