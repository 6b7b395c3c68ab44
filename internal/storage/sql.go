package storage

import (
	_ "embed"
)

const (
	insertRecordingSQL = `
INSERT INTO recordings (imported_at,
                        source_path,
                        format,
                        sample_rate,
                        num_samples,
                        reference_channel,
                        notch_frequency,
                        notes)
VALUES (CURRENT_TIMESTAMP, ?, ?, ?, ?, ?, ?, ?)`

	insertChannelSQL = `
INSERT INTO channels (recording_id,
                      group_name,
                      name,
                      native_order,
                      position)
VALUES (?, ?, ?, ?, ?)`

	insertTraceSQL = `
INSERT INTO traces (channel_id, unit, samples)
VALUES (?, ?, ?)`

	selectChannelIDSQL = `
SELECT id
FROM channels
WHERE
    recording_id = ?
    AND group_name = ?
    AND name = ?`

	selectRecordingSQL = `
SELECT
    id,
    imported_at,
    source_path,
    format,
    sample_rate,
    num_samples,
    reference_channel,
    notch_frequency,
    notes
FROM recordings
WHERE
    id = ?`

	selectRecordingsSQL = `
SELECT
    id,
    imported_at,
    source_path,
    format,
    sample_rate,
    num_samples,
    reference_channel,
    notch_frequency,
    notes
FROM recordings
ORDER BY imported_at`

	selectChannelsSQL = `
SELECT
    id,
    recording_id,
    group_name,
    name,
    native_order,
    position
FROM channels
WHERE
    recording_id = ?`

	selectTraceSQL = `
SELECT c.id,
       c.recording_id,
       c.group_name,
       c.name,
       c.native_order,
       c.position,
       t.unit,
       t.samples,
       r.sample_rate
FROM channels c
         JOIN traces t ON t.channel_id = c.id
         JOIN recordings r ON r.id = c.recording_id
WHERE
    c.recording_id = ?
    AND c.name = ?`
)

//go:embed schema.sql
var initSchemaSQL string
