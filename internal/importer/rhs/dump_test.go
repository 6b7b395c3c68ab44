package rhs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurokit/neuroimport/internal/importer/rhs"
)

func writeConverter(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("converter scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "rhsdump")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestDumpParser_Parse(t *testing.T) {
	converter := writeConverter(t, `cat <<'EOF'
{
  "data_present": true,
  "frequency_parameters": {"amplifier_sample_rate": 30000, "notch_filter_frequency": 60},
  "notes": {"note1": "baseline"},
  "reference_channel": "A-010",
  "stim_parameters": {"stim_step_size": 1e-05},
  "amplifier_channels": [
    {"native_channel_name": "A-000", "custom_channel_name": "A-000", "native_order": 0}
  ],
  "timestamps": [0, 1, 2],
  "amplifier_data": [[32768, 32968, 32768]]
}
EOF`)

	p := rhs.DumpParser{Command: converter}

	raw, err := p.Parse("baseline.rhs")
	require.NoError(t, err)

	assert.True(t, raw.DataPresent)
	assert.Equal(t, 30000.0, raw.Frequency.AmplifierSampleRate)
	assert.Equal(t, 60.0, raw.Frequency.NotchFilterFrequency)
	assert.Equal(t, "A-010", raw.ReferenceChannel)
	assert.InDelta(t, 1e-5, raw.Stim.StepSize, 1e-12)
	require.Len(t, raw.AmplifierChannels, 1)
	assert.Equal(t, "A-000", raw.AmplifierChannels[0].CustomChannelName)
	assert.Equal(t, []int32{0, 1, 2}, raw.Timestamps)
	assert.Equal(t, [][]uint16{{32768, 32968, 32768}}, raw.AmplifierData)
}

func TestDumpParser_ConverterFailure(t *testing.T) {
	converter := writeConverter(t, `echo "Error loading RHS file: bad magic number" >&2
exit 1`)

	p := rhs.DumpParser{Command: converter}

	_, err := p.Parse("broken.rhs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad magic number")
}

func TestDumpParser_InvalidOutput(t *testing.T) {
	converter := writeConverter(t, `echo "not json"`)

	p := rhs.DumpParser{Command: converter}

	_, err := p.Parse("baseline.rhs")
	assert.Error(t, err)
}
