package rhs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/neurokit/neuroimport/internal/dsp"
	"github.com/neurokit/neuroimport/internal/importer"
	"github.com/neurokit/neuroimport/internal/signal"
)

// ErrShapeMismatch is returned when a raw matrix does not agree with the
// channel descriptors or the time vector. Truncating or padding silently
// would corrupt channel/row alignment, so the mismatch is surfaced instead.
var ErrShapeMismatch = errors.New("raw data shape mismatch")

// WithLogger sets the logger for the importer.
func WithLogger(logger *slog.Logger) func(*Importer) {
	return func(imp *Importer) {
		imp.logger = logger.With(slog.String("format", Extension))
	}
}

// Importer loads RHS files through a raw-parser collaborator.
type Importer struct {
	parser Parser
	logger *slog.Logger
}

// New creates an RHS importer backed by the given raw parser.
func New(parser Parser, options ...func(*Importer)) *Importer {
	imp := Importer{
		parser: parser,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(&imp)
	}

	return &imp
}

// Load parses the RHS file at path and normalizes the raw parser's record
// into the canonical model. Parser failures are propagated verbatim as an
// importer.ParseError. Groups the parser does not report stay absent from
// the result.
func (imp *Importer) Load(path string) (*signal.Recording, bool, error) {
	imp.logger.Debug("loading recording", slog.String("path", path))

	raw, err := imp.parser.Parse(path)
	if err != nil {
		return nil, false, &importer.ParseError{Path: path, Err: err}
	}

	rec := signal.Recording{
		Header:      convertHeader(raw),
		DataPresent: raw.DataPresent,
	}

	if raw.DataPresent {
		data, err := convertData(raw, &rec.Header)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", path, err)
		}
		rec.Data = data
	}

	imp.logger.Debug("recording loaded",
		slog.Bool("dataPresent", rec.DataPresent),
		slog.Int("amplifierChannels", len(rec.Header.AmplifierChannels)))

	return &rec, rec.DataPresent, nil
}

func convertHeader(raw *RawRecording) signal.Header {
	h := signal.Header{
		Frequency:        convertFrequency(raw.Frequency),
		Notes:            raw.Notes,
		ReferenceChannel: raw.ReferenceChannel,
		Stim:             convertStim(raw.Stim),

		AmplifierChannels:       convertChannels(raw.AmplifierChannels),
		DCAmplifierChannels:     convertChannels(raw.DCAmplifierChannels),
		StimChannels:            convertChannels(raw.StimChannels),
		AmpSettleChannels:       convertChannels(raw.AmpSettleChannels),
		ChargeRecoveryChannels:  convertChannels(raw.ChargeRecoveryChannels),
		ComplianceLimitChannels: convertChannels(raw.ComplianceLimitChannels),
		BoardADCChannels:        convertChannels(raw.BoardADCChannels),
		BoardDACChannels:        convertChannels(raw.BoardDACChannels),
		BoardDigInChannels:      convertChannels(raw.BoardDigInChannels),
		BoardDigOutChannels:     convertChannels(raw.BoardDigOutChannels),
	}

	for _, trigger := range raw.SpikeTriggers {
		h.SpikeTriggers = append(h.SpikeTriggers, signal.SpikeTrigger{
			VoltageTriggerMode:    trigger.VoltageTriggerMode,
			VoltageThreshold:      trigger.VoltageThreshold,
			DigitalTriggerChannel: trigger.DigitalTriggerChannel,
			DigitalEdgePolarity:   trigger.DigitalEdgePolarity,
		})
	}

	return h
}

func convertFrequency(raw RawFrequencyParams) signal.FrequencyParams {
	return signal.FrequencyParams{
		AmplifierSampleRate:  raw.AmplifierSampleRate,
		BoardADCSampleRate:   raw.BoardADCSampleRate,
		BoardDigInSampleRate: raw.BoardDigInSampleRate,

		DSPEnabled:                  raw.DSPEnabled,
		DesiredDSPCutoff:            raw.DesiredDSPCutoff,
		ActualDSPCutoff:             raw.ActualDSPCutoff,
		DesiredLowerBandwidth:       raw.DesiredLowerBandwidth,
		ActualLowerBandwidth:        raw.ActualLowerBandwidth,
		DesiredLowerSettleBandwidth: raw.DesiredLowerSettleBandwidth,
		ActualLowerSettleBandwidth:  raw.ActualLowerSettleBandwidth,
		DesiredUpperBandwidth:       raw.DesiredUpperBandwidth,
		ActualUpperBandwidth:        raw.ActualUpperBandwidth,

		NotchFilterFrequency: raw.NotchFilterFrequency,

		DesiredImpedanceTestFrequency: raw.DesiredImpedanceTestFrequency,
		ActualImpedanceTestFrequency:  raw.ActualImpedanceTestFrequency,
	}
}

func convertStim(raw RawStimParams) signal.StimParams {
	return signal.StimParams{
		StepSize:                    raw.StepSize,
		ChargeRecoveryCurrentLimit:  raw.ChargeRecoveryCurrentLimit,
		ChargeRecoveryTargetVoltage: raw.ChargeRecoveryTargetVoltage,
		AmpSettleMode:               raw.AmpSettleMode,
		ChargeRecoveryMode:          raw.ChargeRecoveryMode,
	}
}

// convertChannels maps raw descriptors into the canonical model. An absent
// group stays nil, never an empty-but-present slice.
func convertChannels(raw []RawChannel) []signal.ChannelDescriptor {
	if len(raw) == 0 {
		return nil
	}

	channels := make([]signal.ChannelDescriptor, len(raw))
	for i, ch := range raw {
		channels[i] = signal.ChannelDescriptor{
			Name:               ch.CustomChannelName,
			NativeName:         ch.NativeChannelName,
			NativeOrder:        ch.NativeOrder,
			CustomOrder:        ch.CustomOrder,
			ChipChannel:        ch.ChipChannel,
			BoardStream:        ch.BoardStream,
			PortName:           ch.PortName,
			PortPrefix:         ch.PortPrefix,
			PortNumber:         ch.PortNumber,
			ImpedanceMagnitude: ch.ImpedanceMagnitude,
			ImpedancePhase:     ch.ImpedancePhase,
		}
	}
	return channels
}

func convertData(raw *RawRecording, h *signal.Header) (*signal.DataBlock, error) {
	numSamples := len(raw.Timestamps)

	data := signal.DataBlock{
		Time: dsp.ScaleTimestamps(raw.Timestamps, h.Frequency.AmplifierSampleRate),
	}

	matrices := []struct {
		group    signal.GroupKind
		raw      [][]uint16
		channels []signal.ChannelDescriptor
		dst      *[][]uint16
	}{
		{signal.GroupAmplifier, raw.AmplifierData, h.AmplifierChannels, &data.Amplifier},
		{signal.GroupDCAmplifier, raw.DCAmplifierData, h.DCAmplifierChannels, &data.DCAmplifier},
		{signal.GroupStim, raw.StimData, h.StimChannels, &data.Stim},
		{signal.GroupBoardADC, raw.BoardADCData, h.BoardADCChannels, &data.BoardADC},
		{signal.GroupBoardDAC, raw.BoardDACData, h.BoardDACChannels, &data.BoardDAC},
	}

	for _, m := range matrices {
		if len(m.raw) == 0 {
			continue
		}
		if len(m.raw) != len(m.channels) {
			return nil, fmt.Errorf("%w: group %s has %d rows for %d channels",
				ErrShapeMismatch, m.group, len(m.raw), len(m.channels))
		}
		for i, row := range m.raw {
			if len(row) != numSamples {
				return nil, fmt.Errorf("%w: group %s row %d has %d samples, time vector has %d",
					ErrShapeMismatch, m.group, i, len(row), numSamples)
			}
		}
		*m.dst = m.raw
	}

	// The three aux flag groups carry no matrix of their own; their rows are
	// derived from the stim status words, so their descriptor counts must
	// agree with the stim matrix.
	auxGroups := []struct {
		group    signal.GroupKind
		channels []signal.ChannelDescriptor
	}{
		{signal.GroupAmpSettle, h.AmpSettleChannels},
		{signal.GroupChargeRecovery, h.ChargeRecoveryChannels},
		{signal.GroupComplianceLimit, h.ComplianceLimitChannels},
	}

	for _, g := range auxGroups {
		if len(g.channels) == 0 || len(raw.StimData) == 0 {
			continue
		}
		if len(g.channels) != len(raw.StimData) {
			return nil, fmt.Errorf("%w: group %s has %d channels for %d stim rows",
				ErrShapeMismatch, g.group, len(g.channels), len(raw.StimData))
		}
	}

	words := []struct {
		group signal.GroupKind
		raw   []uint16
		dst   *[]uint16
	}{
		{signal.GroupBoardDigIn, raw.BoardDigInRaw, &data.BoardDigInRaw},
		{signal.GroupBoardDigOut, raw.BoardDigOutRaw, &data.BoardDigOutRaw},
	}

	for _, w := range words {
		if len(w.raw) == 0 {
			continue
		}
		if len(w.raw) != numSamples {
			return nil, fmt.Errorf("%w: group %s has %d words, time vector has %d",
				ErrShapeMismatch, w.group, len(w.raw), numSamples)
		}
		*w.dst = w.raw
	}

	return &data, nil
}
