package signal

// GroupKind identifies one of the recognized recording/stimulation channel
// categories of the acquisition hardware.
type GroupKind string

const (
	GroupAmplifier       GroupKind = "amplifier_channels"
	GroupDCAmplifier     GroupKind = "dc_amplifier_channels"
	GroupStim            GroupKind = "stim_channels"
	GroupAmpSettle       GroupKind = "amp_settle_channels"
	GroupChargeRecovery  GroupKind = "charge_recovery_channels"
	GroupComplianceLimit GroupKind = "compliance_limit_channels"
	GroupBoardADC        GroupKind = "board_adc_channels"
	GroupBoardDAC        GroupKind = "board_dac_channels"
	GroupBoardDigIn      GroupKind = "board_dig_in_channels"
	GroupBoardDigOut     GroupKind = "board_dig_out_channels"
)

// ChannelDescriptor describes a single recorded channel within a signal group.
// Name is the user-facing (custom) channel name and is unique within its
// group; the same name may appear in more than one group. NativeOrder is the
// bit position of the channel within a shared multiplexed word and is only
// meaningful for digital and auxiliary groups.
type ChannelDescriptor struct {
	Name               string  `json:"name"`                         // Custom channel name (e.g. "A-000")
	NativeName         string  `json:"nativeName,omitempty"`         // Hardware channel name
	NativeOrder        int     `json:"nativeOrder"`                  // Bit position 0-15 within a multiplexed word
	CustomOrder        int     `json:"customOrder,omitempty"`        // User-assigned display order
	ChipChannel        int     `json:"chipChannel,omitempty"`        // Channel index on the amplifier chip
	BoardStream        int     `json:"boardStream,omitempty"`        // Data stream index on the interface board
	PortName           string  `json:"portName,omitempty"`           // Port name (e.g. "Port A")
	PortPrefix         string  `json:"portPrefix,omitempty"`         // Port prefix (e.g. "A")
	PortNumber         int     `json:"portNumber,omitempty"`         // Port number
	ImpedanceMagnitude float64 `json:"impedanceMagnitude,omitempty"` // Electrode impedance magnitude in ohms
	ImpedancePhase     float64 `json:"impedancePhase,omitempty"`     // Electrode impedance phase in degrees
}

// FrequencyParams holds the named sample rates and filter settings of the
// acquisition subsystems, as reported by the raw parser.
type FrequencyParams struct {
	AmplifierSampleRate  float64 `json:"amplifierSampleRate"`  // Hz
	BoardADCSampleRate   float64 `json:"boardADCSampleRate"`   // Hz
	BoardDigInSampleRate float64 `json:"boardDigInSampleRate"` // Hz

	DSPEnabled                  bool    `json:"dspEnabled"`
	DesiredDSPCutoff            float64 `json:"desiredDSPCutoff"`            // Hz
	ActualDSPCutoff             float64 `json:"actualDSPCutoff"`             // Hz
	DesiredLowerBandwidth       float64 `json:"desiredLowerBandwidth"`       // Hz
	ActualLowerBandwidth        float64 `json:"actualLowerBandwidth"`        // Hz
	DesiredLowerSettleBandwidth float64 `json:"desiredLowerSettleBandwidth"` // Hz
	ActualLowerSettleBandwidth  float64 `json:"actualLowerSettleBandwidth"`  // Hz
	DesiredUpperBandwidth       float64 `json:"desiredUpperBandwidth"`       // Hz
	ActualUpperBandwidth        float64 `json:"actualUpperBandwidth"`        // Hz

	// NotchFilterFrequency is the software notch filter frequency stored in
	// the recording, in Hz. Zero means no notch filtering was configured.
	NotchFilterFrequency float64 `json:"notchFilterFrequency"`

	DesiredImpedanceTestFrequency float64 `json:"desiredImpedanceTestFrequency"` // Hz
	ActualImpedanceTestFrequency  float64 `json:"actualImpedanceTestFrequency"`  // Hz
}

// StimParams holds the stimulation configuration of the recording.
type StimParams struct {
	StepSize                    float64 `json:"stepSize"`                    // Stimulation current step size in amps
	ChargeRecoveryCurrentLimit  float64 `json:"chargeRecoveryCurrentLimit"`  // Amps
	ChargeRecoveryTargetVoltage float64 `json:"chargeRecoveryTargetVoltage"` // Volts
	AmpSettleMode               int     `json:"ampSettleMode"`
	ChargeRecoveryMode          int     `json:"chargeRecoveryMode"`
}

// SpikeTrigger holds optional per-channel spike trigger settings.
type SpikeTrigger struct {
	VoltageTriggerMode    int     `json:"voltageTriggerMode"`
	VoltageThreshold      float64 `json:"voltageThreshold"` // Microvolts
	DigitalTriggerChannel int     `json:"digitalTriggerChannel"`
	DigitalEdgePolarity   int     `json:"digitalEdgePolarity"`
}

// Header holds all recording metadata. Channel groups absent from the
// recording are nil slices; a group is never present but empty.
type Header struct {
	Frequency FrequencyParams `json:"frequency"`

	AmplifierChannels       []ChannelDescriptor `json:"amplifierChannels,omitempty"`
	DCAmplifierChannels     []ChannelDescriptor `json:"dcAmplifierChannels,omitempty"`
	StimChannels            []ChannelDescriptor `json:"stimChannels,omitempty"`
	AmpSettleChannels       []ChannelDescriptor `json:"ampSettleChannels,omitempty"`
	ChargeRecoveryChannels  []ChannelDescriptor `json:"chargeRecoveryChannels,omitempty"`
	ComplianceLimitChannels []ChannelDescriptor `json:"complianceLimitChannels,omitempty"`
	BoardADCChannels        []ChannelDescriptor `json:"boardADCChannels,omitempty"`
	BoardDACChannels        []ChannelDescriptor `json:"boardDACChannels,omitempty"`
	BoardDigInChannels      []ChannelDescriptor `json:"boardDigInChannels,omitempty"`
	BoardDigOutChannels     []ChannelDescriptor `json:"boardDigOutChannels,omitempty"`

	Notes            map[string]string `json:"notes,omitempty"`
	ReferenceChannel string            `json:"referenceChannel,omitempty"`
	Stim             StimParams        `json:"stim"`
	SpikeTriggers    []SpikeTrigger    `json:"spikeTriggers,omitempty"`
}

// DataBlock holds the raw sample arrays of a recording. Every matrix is
// shaped channels x samples with row order matching the corresponding
// descriptor sequence of the Header, and every matrix's column count equals
// len(Time). Digital lines share one multiplexed word per sample; their
// per-line rows are derived at decode time from the channel NativeOrder.
type DataBlock struct {
	Time []float64 `json:"time"` // Seconds, one value per sample

	Amplifier   [][]uint16 `json:"amplifier,omitempty"`
	DCAmplifier [][]uint16 `json:"dcAmplifier,omitempty"`
	Stim        [][]uint16 `json:"stim,omitempty"` // Packed stim status words
	BoardADC    [][]uint16 `json:"boardADC,omitempty"`
	BoardDAC    [][]uint16 `json:"boardDAC,omitempty"`

	BoardDigInRaw  []uint16 `json:"boardDigInRaw,omitempty"`  // One multiplexed word per sample
	BoardDigOutRaw []uint16 `json:"boardDigOutRaw,omitempty"` // One multiplexed word per sample
}

// NumSamples returns the number of samples per channel in the block.
func (d *DataBlock) NumSamples() int {
	return len(d.Time)
}

// Recording is the canonical result of loading a recording file: the header,
// and, when the file carries sample data, the raw data block. DataPresent
// false implies Data is nil. Both are produced once by an importer and are
// treated as immutable afterwards; scaling, decoding and filtering derive
// new arrays and never modify the raw data in place.
type Recording struct {
	Header      Header     `json:"header"`
	Data        *DataBlock `json:"data,omitempty"`
	DataPresent bool       `json:"dataPresent"`
}
