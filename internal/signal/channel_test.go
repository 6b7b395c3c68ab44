package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neurokit/neuroimport/internal/signal"
)

func testHeader() *signal.Header {
	return &signal.Header{
		AmplifierChannels: []signal.ChannelDescriptor{
			{Name: "A-000"},
			{Name: "A-001"},
		},
		BoardADCChannels: []signal.ChannelDescriptor{
			{Name: "ANALOG-IN-1"},
			{Name: "A-001"}, // Same name as an amplifier channel
		},
		BoardDigInChannels: []signal.ChannelDescriptor{
			{Name: "DIGITAL-IN-01", NativeOrder: 0},
			{Name: "DIGITAL-IN-03", NativeOrder: 2},
		},
	}
}

func TestFind(t *testing.T) {
	h := testHeader()

	tests := []struct {
		name      string
		channel   string
		wantFound bool
		wantGroup signal.GroupKind
		wantIndex int
	}{
		{"amplifier channel", "A-000", true, signal.GroupAmplifier, 0},
		{"second amplifier channel", "A-001", true, signal.GroupAmplifier, 1},
		{"board adc channel", "ANALOG-IN-1", true, signal.GroupBoardADC, 0},
		{"digital in channel", "DIGITAL-IN-03", true, signal.GroupBoardDigIn, 1},
		{"missing channel", "B-000", false, signal.GroupKind(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, group, index := signal.Find(tt.channel, h)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantGroup, group)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestFind_Precedence(t *testing.T) {
	// "A-001" exists in both amplifier and board ADC groups; the amplifier
	// group comes first in canonical order and must win.
	found, group, index := signal.Find("A-001", testHeader())
	assert.True(t, found)
	assert.Equal(t, signal.GroupAmplifier, group)
	assert.Equal(t, 1, index)
}

func TestFind_Deterministic(t *testing.T) {
	h := testHeader()

	firstFound, firstGroup, firstIndex := signal.Find("A-001", h)
	for i := 0; i < 100; i++ {
		found, group, index := signal.Find("A-001", h)
		assert.Equal(t, firstFound, found)
		assert.Equal(t, firstGroup, group)
		assert.Equal(t, firstIndex, index)
	}
}

func TestFindInGroup(t *testing.T) {
	group := []signal.ChannelDescriptor{{Name: "A-000"}, {Name: "A-001"}}

	found, index := signal.FindInGroup("A-001", group)
	assert.True(t, found)
	assert.Equal(t, 1, index)

	found, index = signal.FindInGroup("A-002", group)
	assert.False(t, found)
	assert.Equal(t, 0, index)
}

func TestHeader_Group(t *testing.T) {
	h := testHeader()

	assert.Len(t, h.Group(signal.GroupAmplifier), 2)
	assert.Nil(t, h.Group(signal.GroupStim), "absent group must be nil")
	assert.Nil(t, h.Group(signal.GroupKind("bogus")))
}
