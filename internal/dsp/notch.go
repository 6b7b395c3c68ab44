package dsp

import (
	"math"
	"sync"
)

// DefaultNotchBandwidth is the recommended 3 dB bandwidth in Hz for 50/60 Hz
// notch filters. Narrower bandwidths have poor time-domain properties with
// extended ringing in response to transients.
const DefaultNotchBandwidth = 10.0

// notchParams holds the coefficients of the second-order recursive notch.
type notchParams struct {
	a, a0, a1, a2 float64
	b0, b1, b2    float64
}

func newNotchParams(sampleRate, notchFreq, bandwidth float64) notchParams {
	tStep := 1.0 / sampleRate
	fc := notchFreq * tStep

	d := math.Exp(-2.0 * math.Pi * (bandwidth / 2.0) * tStep)
	b := (1.0 + d*d) * math.Cos(2.0*math.Pi*fc)

	return notchParams{
		a:  (1.0 + d*d) / 2.0,
		a0: 1.0,
		a1: -b,
		a2: d * d,
		b0: 1.0,
		b1: -2.0 * math.Cos(2.0 * math.Pi * fc),
		b2: 1.0,
	}
}

// NotchFilter applies a recursive band-stop filter to a single channel,
// attenuating a narrow band around notchFreq (typically 50 or 60 Hz mains
// hum). A notchFreq of zero disables the filter and returns the input
// unchanged. The first two output samples pass through unfiltered.
func NotchFilter(in []float64, sampleRate, notchFreq, bandwidth float64) []float64 {
	if notchFreq == 0 {
		return in
	}

	p := newNotchParams(sampleRate, notchFreq, bandwidth)

	out := make([]float64, len(in))
	copy(out, in[:min(len(in), 2)])

	for i := 2; i < len(in); i++ {
		out[i] = (p.a*p.b2*in[i-2] +
			p.a*p.b1*in[i-1] +
			p.a*p.b0*in[i] -
			p.a2*out[i-2] -
			p.a1*out[i-1]) / p.a0
	}

	return out
}

// NotchFilterMatrix applies the notch filter independently to every row of a
// channels x samples matrix. Rows share no state and are filtered
// concurrently; within a row the recurrence is strictly sequential. A
// notchFreq of zero returns the input unchanged.
func NotchFilterMatrix(data [][]float64, sampleRate, notchFreq, bandwidth float64) [][]float64 {
	if notchFreq == 0 {
		return data
	}

	out := make([][]float64, len(data))

	var wg sync.WaitGroup
	for i, row := range data {
		wg.Add(1)
		go func(i int, row []float64) {
			defer wg.Done()
			out[i] = NotchFilter(row, sampleRate, notchFreq, bandwidth)
		}(i, row)
	}
	wg.Wait()

	return out
}
