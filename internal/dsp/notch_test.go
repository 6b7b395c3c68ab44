package dsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurokit/neuroimport/internal/dsp"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	return out
}

func rms(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func TestNotchFilter_ZeroFrequencyIsNoOp(t *testing.T) {
	in := []float64{3.5, -2, 0, 17, -0.25}

	out := dsp.NotchFilter(in, 30000, 0, 10)
	assert.Equal(t, in, out, "zero notch frequency must return the input unchanged")

	// The matrix form shares the contract
	data := [][]float64{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, data, dsp.NotchFilterMatrix(data, 30000, 0, 10))
}

func TestNotchFilter_FirstTwoSamplesPassThrough(t *testing.T) {
	in := sine(60, 30000, 1000)
	in[0] = 123.456
	in[1] = -654.321

	out := dsp.NotchFilter(in, 30000, 60, 10)

	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
}

func TestNotchFilter_AttenuatesNotchFrequency(t *testing.T) {
	const sampleRate = 30000.0

	in := sine(60, sampleRate, 30000)
	out := dsp.NotchFilter(in, sampleRate, 60, 10)

	// Skip the settling transient, then the 60 Hz component should be
	// heavily attenuated.
	inRMS := rms(in[10000:])
	outRMS := rms(out[10000:])
	assert.Less(t, outRMS, inRMS*0.05)
}

func TestNotchFilter_PassesDistantFrequency(t *testing.T) {
	const sampleRate = 30000.0

	in := sine(1000, sampleRate, 30000)
	out := dsp.NotchFilter(in, sampleRate, 60, 10)

	inRMS := rms(in[10000:])
	outRMS := rms(out[10000:])
	assert.InDelta(t, inRMS, outRMS, inRMS*0.05)
}

func TestNotchFilter_Recurrence(t *testing.T) {
	// The filter output must follow the reference recurrence sample by
	// sample, including the pass-through boundary.
	const (
		sampleRate = 1000.0
		notchFreq  = 50.0
		bandwidth  = 10.0
	)

	in := []float64{1, 0.5, -0.25, 0.75, -1, 0.1, 0.9, -0.4}
	out := dsp.NotchFilter(in, sampleRate, notchFreq, bandwidth)
	require.Len(t, out, len(in))

	tStep := 1.0 / sampleRate
	fc := notchFreq * tStep
	d := math.Exp(-2.0 * math.Pi * (bandwidth / 2.0) * tStep)
	b := (1.0 + d*d) * math.Cos(2.0*math.Pi*fc)
	a := (1.0 + d*d) / 2.0
	a1, a2 := -b, d*d
	b1 := -2.0 * math.Cos(2.0*math.Pi*fc)

	want := make([]float64, len(in))
	want[0], want[1] = in[0], in[1]
	for i := 2; i < len(in); i++ {
		want[i] = a*in[i-2] + a*b1*in[i-1] + a*in[i] - a2*want[i-2] - a1*want[i-1]
	}

	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-12, "sample %d", i)
	}
}

func TestNotchFilterMatrix_MatchesPerChannel(t *testing.T) {
	const (
		sampleRate = 30000.0
		notchFreq  = 60.0
		bandwidth  = 10.0
	)

	data := [][]float64{
		sine(60, sampleRate, 500),
		sine(250, sampleRate, 500),
		sine(1000, sampleRate, 500),
	}

	got := dsp.NotchFilterMatrix(data, sampleRate, notchFreq, bandwidth)
	require.Len(t, got, len(data))

	for i, row := range data {
		assert.Equal(t, dsp.NotchFilter(row, sampleRate, notchFreq, bandwidth), got[i], "row %d", i)
	}
}

func TestNotchFilter_ShortInput(t *testing.T) {
	assert.Equal(t, []float64{5}, dsp.NotchFilter([]float64{5}, 30000, 60, 10))
	assert.Equal(t, []float64{5, 6}, dsp.NotchFilter([]float64{5, 6}, 30000, 60, 10))
	assert.Empty(t, dsp.NotchFilter(nil, 30000, 60, 10))
}
