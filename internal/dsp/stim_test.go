package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurokit/neuroimport/internal/dsp"
)

func TestDecodeStim(t *testing.T) {
	// Bit 15 (compliance limit) + bit 8 (negative polarity) + magnitude 10
	dec := dsp.DecodeStim([][]uint16{{32768 + 256 + 10}})

	require.Len(t, dec.Current, 1)
	assert.True(t, dec.ComplianceLimit[0][0])
	assert.False(t, dec.ChargeRecovery[0][0])
	assert.False(t, dec.AmpSettle[0][0])
	assert.Equal(t, int32(-1), dec.Polarity[0][0])
	assert.Equal(t, int32(-10), dec.Current[0][0])
}

func TestDecodeStim_Fields(t *testing.T) {
	tests := []struct {
		name       string
		word       uint16
		compliance bool
		recovery   bool
		settle     bool
		polarity   int32
		current    int32
	}{
		{"zero word", 0x0000, false, false, false, 1, 0},
		{"charge recovery", 0x4000, false, true, false, 1, 0},
		{"amp settle", 0x2000, false, false, true, 1, 0},
		{"all flags", 0xE000, true, true, true, 1, 0},
		{"positive full scale", 0x00FF, false, false, false, 1, 255},
		{"negative full scale", 0x01FF, false, false, false, -1, -255},
		{"positive current with flags", 0x6005, false, true, true, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := dsp.DecodeStim([][]uint16{{tt.word}})

			assert.Equal(t, tt.compliance, dec.ComplianceLimit[0][0])
			assert.Equal(t, tt.recovery, dec.ChargeRecovery[0][0])
			assert.Equal(t, tt.settle, dec.AmpSettle[0][0])
			assert.Equal(t, tt.polarity, dec.Polarity[0][0])
			assert.Equal(t, tt.current, dec.Current[0][0])
		})
	}
}

func TestDecodeStim_ShapePreserved(t *testing.T) {
	in := [][]uint16{{1, 2, 3}, {4, 5, 6}}
	dec := dsp.DecodeStim(in)

	for _, rows := range [][][]bool{dec.ComplianceLimit, dec.ChargeRecovery, dec.AmpSettle} {
		require.Len(t, rows, 2)
		assert.Len(t, rows[0], 3)
		assert.Len(t, rows[1], 3)
	}
	assert.Equal(t, [][]uint16{{1, 2, 3}, {4, 5, 6}}, in, "input must not be modified")
}
