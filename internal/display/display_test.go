package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurokit/neuroimport/internal/display"
	"github.com/neurokit/neuroimport/internal/signal"
)

func recordingFixture() *signal.Recording {
	return &signal.Recording{
		Header: signal.Header{
			Frequency: signal.FrequencyParams{AmplifierSampleRate: 30000},
			Stim:      signal.StimParams{StepSize: 10e-6},
			AmplifierChannels: []signal.ChannelDescriptor{
				{Name: "A-000"},
				{Name: "A-001"},
			},
			StimChannels: []signal.ChannelDescriptor{
				{Name: "S-000"},
			},
			ComplianceLimitChannels: []signal.ChannelDescriptor{
				{Name: "S-000"},
			},
			BoardDigInChannels: []signal.ChannelDescriptor{
				{Name: "DIGITAL-IN-04", NativeOrder: 3},
			},
		},
		Data: &signal.DataBlock{
			Time:          []float64{0, 1.0 / 30000},
			Amplifier:     [][]uint16{{32768, 32968}, {32768, 32568}},
			Stim:          [][]uint16{{32768 + 256 + 10, 5}},
			BoardDigInRaw: []uint16{8, 0},
		},
		DataPresent: true,
	}
}

func TestChannelSamples_Amplifier(t *testing.T) {
	rec := recordingFixture()

	// "A-001" resolves into the amplifier group at index 1, and the raw
	// counts 32768 and 32568 scale to 0 and -39 microvolts.
	found, group, index := signal.Find("A-001", &rec.Header)
	require.True(t, found)
	assert.Equal(t, signal.GroupAmplifier, group)
	assert.Equal(t, 1, index)

	data, err := display.ChannelSamples(rec, "A-001")
	require.NoError(t, err)
	assert.Equal(t, signal.GroupAmplifier, data.Group)
	assert.Equal(t, display.UnitMicrovolts, data.Unit)
	assert.InDelta(t, 0.0, data.Samples[0], 1e-12)
	assert.InDelta(t, -39.0, data.Samples[1], 1e-9)
	assert.Equal(t, rec.Data.Time, data.Time)

	data, err = display.ChannelSamples(rec, "A-000")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, data.Samples[0], 1e-12)
	assert.InDelta(t, 39.0, data.Samples[1], 1e-9)
}

func TestChannelSamples_StimPrecedence(t *testing.T) {
	rec := recordingFixture()

	// "S-000" exists in both stim and compliance limit groups; stim comes
	// first in canonical order, so the scaled current wins.
	data, err := display.ChannelSamples(rec, "S-000")
	require.NoError(t, err)
	assert.Equal(t, signal.GroupStim, data.Group)
	assert.Equal(t, display.UnitMicroamps, data.Unit)

	// Word 32768+256+10 decodes to current -10; step size 10 uA
	assert.InDelta(t, -100.0, data.Samples[0], 1e-9)
	assert.InDelta(t, 50.0, data.Samples[1], 1e-9)
}

func TestChannelSamples_Digital(t *testing.T) {
	rec := recordingFixture()

	data, err := display.ChannelSamples(rec, "DIGITAL-IN-04")
	require.NoError(t, err)
	assert.Equal(t, display.UnitLogic, data.Unit)
	assert.Equal(t, []float64{1, 0}, data.Samples)
}

func TestChannelSamples_NotFound(t *testing.T) {
	rec := recordingFixture()

	_, err := display.ChannelSamples(rec, "B-031")
	assert.ErrorIs(t, err, display.ErrChannelNotFound)
}

func TestChannelSamples_NoData(t *testing.T) {
	rec := recordingFixture()
	rec.Data = nil
	rec.DataPresent = false

	_, err := display.ChannelSamples(rec, "A-000")
	assert.ErrorIs(t, err, display.ErrNoData)
}

func TestChannelSamples_AuxChannelBeyondStimRows(t *testing.T) {
	// A malformed recording can list more compliance limit channels than the
	// stim matrix has rows. The extra channel must error, not panic.
	rec := recordingFixture()
	rec.Header.ComplianceLimitChannels = append(rec.Header.ComplianceLimitChannels,
		signal.ChannelDescriptor{Name: "S-001"})

	_, err := display.ChannelSamples(rec, "S-001")
	assert.ErrorIs(t, err, display.ErrNoData)

	// The in-range compliance channel keeps resolving (to the stim group,
	// which precedes it in canonical order).
	data, err := display.ChannelSamples(rec, "S-000")
	require.NoError(t, err)
	assert.Equal(t, signal.GroupStim, data.Group)
}

func TestChannelSamples_GroupWithoutArray(t *testing.T) {
	rec := recordingFixture()
	rec.Data.Amplifier = nil // Header still lists amplifier channels

	_, err := display.ChannelSamples(rec, "A-000")
	assert.ErrorIs(t, err, display.ErrNoData)
}

func TestListChannels(t *testing.T) {
	rec := recordingFixture()

	groups := display.ListChannels(&rec.Header)
	require.Len(t, groups, 4)

	// Groups come back in canonical order, absent groups skipped
	assert.Equal(t, signal.GroupAmplifier, groups[0].Group)
	assert.Equal(t, []string{"A-000", "A-001"}, groups[0].Names)
	assert.Equal(t, signal.GroupStim, groups[1].Group)
	assert.Equal(t, signal.GroupComplianceLimit, groups[2].Group)
	assert.Equal(t, signal.GroupBoardDigIn, groups[3].Group)
}
