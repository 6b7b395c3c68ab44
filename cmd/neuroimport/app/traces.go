package app

import (
	"github.com/neurokit/neuroimport/internal/display"
	"github.com/neurokit/neuroimport/internal/dsp"
	"github.com/neurokit/neuroimport/internal/signal"
	"github.com/neurokit/neuroimport/internal/storage"
)

// collectTraces scales and decodes every channel of the recording into
// storable traces. A notchFreq greater than zero is applied to the amplifier
// data; all other groups are stored as scaled or unpacked.
func collectTraces(rec *signal.Recording, notchFreq, bandwidth float64) []storage.Trace {
	data := rec.Data
	sampleRate := rec.Header.Frequency.AmplifierSampleRate

	var traces []storage.Trace

	appendGroup := func(group signal.GroupKind, channels []signal.ChannelDescriptor, unit string, rows [][]float64) {
		for i, ch := range channels {
			// Importers validate descriptor counts against row counts;
			// never index past the rows regardless.
			if i >= len(rows) {
				break
			}
			traces = append(traces, storage.Trace{
				Group:       string(group),
				Name:        ch.Name,
				NativeOrder: ch.NativeOrder,
				Position:    i,
				Unit:        unit,
				Samples:     rows[i],
			})
		}
	}

	if data.Amplifier != nil {
		scaled := dsp.ScaleAmplifier(data.Amplifier)
		scaled = dsp.NotchFilterMatrix(scaled, sampleRate, notchFreq, bandwidth)
		appendGroup(signal.GroupAmplifier, rec.Header.AmplifierChannels, display.UnitMicrovolts, scaled)
	}

	if data.DCAmplifier != nil {
		appendGroup(signal.GroupDCAmplifier, rec.Header.DCAmplifierChannels, display.UnitVolts,
			dsp.ScaleDCAmplifier(data.DCAmplifier))
	}

	if data.Stim != nil {
		dec := dsp.DecodeStim(data.Stim)
		appendGroup(signal.GroupStim, rec.Header.StimChannels, display.UnitMicroamps,
			dsp.ScaleStimCurrent(dec.Current, rec.Header.Stim.StepSize))
		appendGroup(signal.GroupAmpSettle, rec.Header.AmpSettleChannels, display.UnitLogic,
			boolRows(dec.AmpSettle))
		appendGroup(signal.GroupChargeRecovery, rec.Header.ChargeRecoveryChannels, display.UnitLogic,
			boolRows(dec.ChargeRecovery))
		appendGroup(signal.GroupComplianceLimit, rec.Header.ComplianceLimitChannels, display.UnitLogic,
			boolRows(dec.ComplianceLimit))
	}

	if data.BoardADC != nil {
		appendGroup(signal.GroupBoardADC, rec.Header.BoardADCChannels, display.UnitVolts,
			dsp.ScaleBoardADC(data.BoardADC))
	}
	if data.BoardDAC != nil {
		appendGroup(signal.GroupBoardDAC, rec.Header.BoardDACChannels, display.UnitVolts,
			dsp.ScaleBoardDAC(data.BoardDAC))
	}

	if data.BoardDigInRaw != nil {
		appendGroup(signal.GroupBoardDigIn, rec.Header.BoardDigInChannels, display.UnitLogic,
			boolRows(dsp.UnpackDigital(data.BoardDigInRaw, rec.Header.BoardDigInChannels)))
	}
	if data.BoardDigOutRaw != nil {
		appendGroup(signal.GroupBoardDigOut, rec.Header.BoardDigOutChannels, display.UnitLogic,
			boolRows(dsp.UnpackDigital(data.BoardDigOutRaw, rec.Header.BoardDigOutChannels)))
	}

	return traces
}

func boolRows(rows [][]bool) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		samples := make([]float64, len(row))
		for j, b := range row {
			if b {
				samples[j] = 1
			}
		}
		out[i] = samples
	}
	return out
}
