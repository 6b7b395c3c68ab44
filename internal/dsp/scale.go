// Package dsp implements the numeric decode, scaling and filtering stages of
// the import pipeline. All functions are pure: they derive new arrays from
// raw sample matrices and never modify their inputs.
package dsp

// Scaling constants of the acquisition hardware. Raw samples are unsigned
// 16-bit (10-bit for the DC amplifier) counts around a mid-scale offset;
// subtraction happens on int32 so the offset cannot wrap.
const (
	amplifierScale  = 0.195    // Microvolts per count
	amplifierOffset = 32768

	dcAmplifierScale  = -0.01923 // Volts per count
	dcAmplifierOffset = 512

	boardAnalogScale  = 312.5e-6 // Volts per count
	boardAnalogOffset = 32768
)

// ScaleAmplifier converts raw amplifier samples to microvolts.
func ScaleAmplifier(raw [][]uint16) [][]float64 {
	return scaleMatrix(raw, amplifierScale, amplifierOffset)
}

// ScaleDCAmplifier converts raw DC amplifier samples to volts.
func ScaleDCAmplifier(raw [][]uint16) [][]float64 {
	return scaleMatrix(raw, dcAmplifierScale, dcAmplifierOffset)
}

// ScaleBoardADC converts raw board ADC samples to volts.
func ScaleBoardADC(raw [][]uint16) [][]float64 {
	return scaleMatrix(raw, boardAnalogScale, boardAnalogOffset)
}

// ScaleBoardDAC converts raw board DAC samples to volts. The DAC shares the
// ADC transfer function.
func ScaleBoardDAC(raw [][]uint16) [][]float64 {
	return scaleMatrix(raw, boardAnalogScale, boardAnalogOffset)
}

// ScaleStimCurrent converts signed stimulation current counts to microamps.
// stepSize is the stimulation current step size in amps, as stored in the
// recording header.
func ScaleStimCurrent(signed [][]int32, stepSize float64) [][]float64 {
	out := make([][]float64, len(signed))
	for i, row := range signed {
		dst := make([]float64, len(row))
		for j, v := range row {
			dst[j] = stepSize * (float64(v) / 1.0e-6)
		}
		out[i] = dst
	}
	return out
}

// ScaleTimestamps converts raw sample indices to seconds.
func ScaleTimestamps(indices []int32, sampleRate float64) []float64 {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = float64(idx) / sampleRate
	}
	return out
}

func scaleMatrix(raw [][]uint16, scale float64, offset int32) [][]float64 {
	out := make([][]float64, len(raw))
	for i, row := range raw {
		dst := make([]float64, len(row))
		for j, v := range row {
			dst[j] = scale * float64(int32(v)-offset)
		}
		out[i] = dst
	}
	return out
}
