// Package rhs imports Intan RHS stimulation/recording files. Byte-level
// parsing is delegated to a raw-parser collaborator; this package normalizes
// the collaborator's record into the canonical signal model and validates
// its shape.
package rhs

// Extension is the file extension handled by this importer.
const Extension = ".rhs"

// Parser is the raw-parser collaborator. It owns the on-disk byte layout and
// returns a structured record; this package never looks at raw bytes.
type Parser interface {
	Parse(path string) (*RawRecording, error)
}

// RawChannel is a channel descriptor as reported by the raw parser.
type RawChannel struct {
	NativeChannelName  string  `json:"native_channel_name"`
	CustomChannelName  string  `json:"custom_channel_name"`
	NativeOrder        int     `json:"native_order"`
	CustomOrder        int     `json:"custom_order"`
	ChipChannel        int     `json:"chip_channel"`
	BoardStream        int     `json:"board_stream"`
	PortName           string  `json:"port_name"`
	PortPrefix         string  `json:"port_prefix"`
	PortNumber         int     `json:"port_number"`
	ImpedanceMagnitude float64 `json:"electrode_impedance_magnitude"`
	ImpedancePhase     float64 `json:"electrode_impedance_phase"`
}

// RawFrequencyParams mirrors the raw parser's frequency_parameters record.
type RawFrequencyParams struct {
	AmplifierSampleRate  float64 `json:"amplifier_sample_rate"`
	BoardADCSampleRate   float64 `json:"board_adc_sample_rate"`
	BoardDigInSampleRate float64 `json:"board_dig_in_sample_rate"`

	DSPEnabled                  bool    `json:"dsp_enabled"`
	DesiredDSPCutoff            float64 `json:"desired_dsp_cutoff_frequency"`
	ActualDSPCutoff             float64 `json:"actual_dsp_cutoff_frequency"`
	DesiredLowerBandwidth       float64 `json:"desired_lower_bandwidth"`
	ActualLowerBandwidth        float64 `json:"actual_lower_bandwidth"`
	DesiredLowerSettleBandwidth float64 `json:"desired_lower_settle_bandwidth"`
	ActualLowerSettleBandwidth  float64 `json:"actual_lower_settle_bandwidth"`
	DesiredUpperBandwidth       float64 `json:"desired_upper_bandwidth"`
	ActualUpperBandwidth        float64 `json:"actual_upper_bandwidth"`

	NotchFilterFrequency float64 `json:"notch_filter_frequency"`

	DesiredImpedanceTestFrequency float64 `json:"desired_impedance_test_frequency"`
	ActualImpedanceTestFrequency  float64 `json:"actual_impedance_test_frequency"`
}

// RawStimParams mirrors the raw parser's stim_parameters record.
type RawStimParams struct {
	StepSize                    float64 `json:"stim_step_size"`
	ChargeRecoveryCurrentLimit  float64 `json:"charge_recovery_current_limit"`
	ChargeRecoveryTargetVoltage float64 `json:"charge_recovery_target_voltage"`
	AmpSettleMode               int     `json:"amp_settle_mode"`
	ChargeRecoveryMode          int     `json:"charge_recovery_mode"`
}

// RawSpikeTrigger is a spike trigger record as reported by the raw parser.
type RawSpikeTrigger struct {
	VoltageTriggerMode    int     `json:"voltage_trigger_mode"`
	VoltageThreshold      float64 `json:"voltage_threshold"`
	DigitalTriggerChannel int     `json:"digital_trigger_channel"`
	DigitalEdgePolarity   int     `json:"digital_edge_polarity"`
}

// RawRecording is the structured record produced by the raw parser: header
// fields for every recording, plus the time vector and raw sample matrices
// when the file carries data. Channel groups and matrices absent from the
// recording are nil.
type RawRecording struct {
	DataPresent bool `json:"data_present"`

	Frequency        RawFrequencyParams `json:"frequency_parameters"`
	Notes            map[string]string  `json:"notes"`
	ReferenceChannel string             `json:"reference_channel"`
	Stim             RawStimParams      `json:"stim_parameters"`
	SpikeTriggers    []RawSpikeTrigger  `json:"spike_triggers"`

	AmplifierChannels       []RawChannel `json:"amplifier_channels"`
	DCAmplifierChannels     []RawChannel `json:"dc_amplifier_channels"`
	StimChannels            []RawChannel `json:"stim_channels"`
	AmpSettleChannels       []RawChannel `json:"amp_settle_channels"`
	ChargeRecoveryChannels  []RawChannel `json:"charge_recovery_channels"`
	ComplianceLimitChannels []RawChannel `json:"compliance_limit_channels"`
	BoardADCChannels        []RawChannel `json:"board_adc_channels"`
	BoardDACChannels        []RawChannel `json:"board_dac_channels"`
	BoardDigInChannels      []RawChannel `json:"board_dig_in_channels"`
	BoardDigOutChannels     []RawChannel `json:"board_dig_out_channels"`

	Timestamps []int32 `json:"timestamps"`

	AmplifierData   [][]uint16 `json:"amplifier_data"`
	DCAmplifierData [][]uint16 `json:"dc_amplifier_data"`
	StimData        [][]uint16 `json:"stim_data"`
	BoardADCData    [][]uint16 `json:"board_adc_data"`
	BoardDACData    [][]uint16 `json:"board_dac_data"`
	BoardDigInRaw   []uint16   `json:"board_dig_in_raw"`
	BoardDigOutRaw  []uint16   `json:"board_dig_out_raw"`
}
