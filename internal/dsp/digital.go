package dsp

import "github.com/neurokit/neuroimport/internal/signal"

// UnpackDigital extracts per-line boolean samples from a stream of
// multiplexed digital words. Each word carries up to 16 lines; a channel's
// NativeOrder selects its bit. The result has one row per descriptor, in
// descriptor order, with len(raw) samples each.
func UnpackDigital(raw []uint16, channels []signal.ChannelDescriptor) [][]bool {
	out := make([][]bool, len(channels))
	for i, ch := range channels {
		mask := uint16(1) << uint(ch.NativeOrder)
		row := make([]bool, len(raw))
		for j, word := range raw {
			row[j] = word&mask != 0
		}
		out[i] = row
	}
	return out
}
