package signal

// CanonicalOrder is the fixed precedence sequence used when resolving a
// channel name across groups. The first group containing the name wins.
var CanonicalOrder = []GroupKind{
	GroupAmplifier,
	GroupDCAmplifier,
	GroupStim,
	GroupAmpSettle,
	GroupChargeRecovery,
	GroupComplianceLimit,
	GroupBoardADC,
	GroupBoardDAC,
	GroupBoardDigIn,
	GroupBoardDigOut,
}

// Group returns the descriptor sequence for the given group kind, or nil if
// the group is absent from the header.
func (h *Header) Group(kind GroupKind) []ChannelDescriptor {
	switch kind {
	case GroupAmplifier:
		return h.AmplifierChannels
	case GroupDCAmplifier:
		return h.DCAmplifierChannels
	case GroupStim:
		return h.StimChannels
	case GroupAmpSettle:
		return h.AmpSettleChannels
	case GroupChargeRecovery:
		return h.ChargeRecoveryChannels
	case GroupComplianceLimit:
		return h.ComplianceLimitChannels
	case GroupBoardADC:
		return h.BoardADCChannels
	case GroupBoardDAC:
		return h.BoardDACChannels
	case GroupBoardDigIn:
		return h.BoardDigInChannels
	case GroupBoardDigOut:
		return h.BoardDigOutChannels
	}
	return nil
}

// FindInGroup looks a channel name up in a single descriptor sequence and
// returns its index. Not finding the name is not an error; callers must
// check found before using the index.
func FindInGroup(name string, group []ChannelDescriptor) (found bool, index int) {
	for i, ch := range group {
		if ch.Name == name {
			return true, i
		}
	}
	return false, 0
}

// Find resolves a channel name across all groups of the header in canonical
// order and returns the owning group and the channel's position within it.
// The first exact match wins; a name present in several groups resolves to
// the group earliest in CanonicalOrder. When the name is absent from every
// group, found is false and the group and index are zero values.
func Find(name string, h *Header) (found bool, group GroupKind, index int) {
	for _, kind := range CanonicalOrder {
		if ok, i := FindInGroup(name, h.Group(kind)); ok {
			return true, kind, i
		}
	}
	return false, "", 0
}
