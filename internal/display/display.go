// Package display exposes the two operations the presentation layer
// consumes: listing channel names grouped by signal type, and fetching the
// physically-scaled samples of a resolved channel together with the time
// vector.
package display

import (
	"errors"
	"fmt"

	"github.com/neurokit/neuroimport/internal/dsp"
	"github.com/neurokit/neuroimport/internal/signal"
)

var (
	// ErrChannelNotFound is returned when a channel name is absent from
	// every group of the recording header.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrNoData is returned when the channel's group is present in the
	// header but the recording carries no materialized data array for it.
	ErrNoData = errors.New("no data for channel")

	// ErrUnsupportedSignalType is returned when a channel resolves to a
	// group with no defined physical-unit or data-array mapping.
	ErrUnsupportedSignalType = errors.New("unsupported signal type for display")
)

// Units per signal group.
const (
	UnitMicrovolts = "uV"
	UnitVolts      = "V"
	UnitMicroamps  = "uA"
	UnitLogic      = "logic" // Boolean lines rendered as 0/1
)

// GroupChannels lists the channel names of one signal group.
type GroupChannels struct {
	Group signal.GroupKind
	Names []string
}

// ChannelData holds the scaled samples of one resolved channel. Boolean
// channels (digital lines and stim status flags) are materialized as 0/1.
type ChannelData struct {
	Name    string
	Group   signal.GroupKind
	Index   int
	Unit    string
	Samples []float64
	Time    []float64
}

// ListChannels returns the channel names of every group present in the
// header, in canonical group order.
func ListChannels(h *signal.Header) []GroupChannels {
	var groups []GroupChannels
	for _, kind := range signal.CanonicalOrder {
		channels := h.Group(kind)
		if len(channels) == 0 {
			continue
		}

		names := make([]string, len(channels))
		for i, ch := range channels {
			names[i] = ch.Name
		}
		groups = append(groups, GroupChannels{Group: kind, Names: names})
	}
	return groups
}

// ChannelSamples resolves a channel name and returns its scaled samples and
// the recording time vector. The name resolves across groups in canonical
// order; an unknown name yields ErrChannelNotFound and a recording without
// data for the resolved group yields ErrNoData.
func ChannelSamples(rec *signal.Recording, name string) (*ChannelData, error) {
	found, group, index := signal.Find(name, &rec.Header)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrChannelNotFound, name)
	}

	if !rec.DataPresent || rec.Data == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoData, name)
	}

	samples, unit, err := groupSamples(rec, group, index)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}

	return &ChannelData{
		Name:    name,
		Group:   group,
		Index:   index,
		Unit:    unit,
		Samples: samples,
		Time:    rec.Data.Time,
	}, nil
}

func groupSamples(rec *signal.Recording, group signal.GroupKind, index int) ([]float64, string, error) {
	data := rec.Data

	// Index bounds are checked against the backing matrix, not just its
	// presence: the aux flag groups share the stim matrix, and a malformed
	// recording may list more descriptors than there are rows.
	switch group {
	case signal.GroupAmplifier:
		if index >= len(data.Amplifier) {
			return nil, "", ErrNoData
		}
		return dsp.ScaleAmplifier(data.Amplifier[index : index+1])[0], UnitMicrovolts, nil

	case signal.GroupDCAmplifier:
		if index >= len(data.DCAmplifier) {
			return nil, "", ErrNoData
		}
		return dsp.ScaleDCAmplifier(data.DCAmplifier[index : index+1])[0], UnitVolts, nil

	case signal.GroupStim:
		if index >= len(data.Stim) {
			return nil, "", ErrNoData
		}
		dec := dsp.DecodeStim(data.Stim[index : index+1])
		return dsp.ScaleStimCurrent(dec.Current, rec.Header.Stim.StepSize)[0], UnitMicroamps, nil

	case signal.GroupAmpSettle:
		if index >= len(data.Stim) {
			return nil, "", ErrNoData
		}
		return boolsToSamples(dsp.DecodeStim(data.Stim[index : index+1]).AmpSettle[0]), UnitLogic, nil

	case signal.GroupChargeRecovery:
		if index >= len(data.Stim) {
			return nil, "", ErrNoData
		}
		return boolsToSamples(dsp.DecodeStim(data.Stim[index : index+1]).ChargeRecovery[0]), UnitLogic, nil

	case signal.GroupComplianceLimit:
		if index >= len(data.Stim) {
			return nil, "", ErrNoData
		}
		return boolsToSamples(dsp.DecodeStim(data.Stim[index : index+1]).ComplianceLimit[0]), UnitLogic, nil

	case signal.GroupBoardADC:
		if index >= len(data.BoardADC) {
			return nil, "", ErrNoData
		}
		return dsp.ScaleBoardADC(data.BoardADC[index : index+1])[0], UnitVolts, nil

	case signal.GroupBoardDAC:
		if index >= len(data.BoardDAC) {
			return nil, "", ErrNoData
		}
		return dsp.ScaleBoardDAC(data.BoardDAC[index : index+1])[0], UnitVolts, nil

	case signal.GroupBoardDigIn:
		if data.BoardDigInRaw == nil {
			return nil, "", ErrNoData
		}
		channels := rec.Header.BoardDigInChannels[index : index+1]
		return boolsToSamples(dsp.UnpackDigital(data.BoardDigInRaw, channels)[0]), UnitLogic, nil

	case signal.GroupBoardDigOut:
		if data.BoardDigOutRaw == nil {
			return nil, "", ErrNoData
		}
		channels := rec.Header.BoardDigOutChannels[index : index+1]
		return boolsToSamples(dsp.UnpackDigital(data.BoardDigOutRaw, channels)[0]), UnitLogic, nil
	}

	return nil, "", ErrUnsupportedSignalType
}

func boolsToSamples(bits []bool) []float64 {
	out := make([]float64, len(bits))
	for i, b := range bits {
		if b {
			out[i] = 1
		}
	}
	return out
}
