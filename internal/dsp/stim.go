package dsp

// Stim status word layout. Each 16-bit word packs three amplifier state
// flags, a polarity bit and an 8-bit current magnitude.
const (
	stimComplianceLimitBit = 0x8000 // Bit 15
	stimChargeRecoveryBit  = 0x4000 // Bit 14
	stimAmpSettleBit       = 0x2000 // Bit 13
	stimPolarityBit        = 0x0100 // Bit 8
	stimMagnitudeMask      = 0x00FF // Bits 0-7
)

// StimDecode holds the fields unpacked from a matrix of stim status words.
// Every matrix has the same channels x samples shape as the input.
type StimDecode struct {
	Current         [][]int32 // Signed current in step-size counts
	Polarity        [][]int32 // +1 or -1 per sample
	ComplianceLimit [][]bool
	ChargeRecovery  [][]bool
	AmpSettle       [][]bool
}

// DecodeStim unpacks raw stimulation status words into their five derived
// fields. All fields are computed independently from the same word; the
// input is left untouched.
func DecodeStim(raw [][]uint16) *StimDecode {
	n := len(raw)
	dec := StimDecode{
		Current:         make([][]int32, n),
		Polarity:        make([][]int32, n),
		ComplianceLimit: make([][]bool, n),
		ChargeRecovery:  make([][]bool, n),
		AmpSettle:       make([][]bool, n),
	}

	for i, row := range raw {
		m := len(row)
		current := make([]int32, m)
		polarity := make([]int32, m)
		compliance := make([]bool, m)
		recovery := make([]bool, m)
		settle := make([]bool, m)

		for j, word := range row {
			compliance[j] = word&stimComplianceLimitBit != 0
			recovery[j] = word&stimChargeRecoveryBit != 0
			settle[j] = word&stimAmpSettleBit != 0

			pol := 1 - 2*int32((word&stimPolarityBit)>>8)
			polarity[j] = pol
			current[j] = int32(word&stimMagnitudeMask) * pol
		}

		dec.Current[i] = current
		dec.Polarity[i] = polarity
		dec.ComplianceLimit[i] = compliance
		dec.ChargeRecovery[i] = recovery
		dec.AmpSettle[i] = settle
	}

	return &dec
}
