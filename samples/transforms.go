// SPDX-License-Identifier: EPL-2.0

package samples

// Transform is a pure operation from one buffer to a new one, used to
// chain operations in processing pipelines.
type Transform func(*Buffer) *Buffer

// blank allocates an output buffer with this buffer's geometry, taking
// channel 0's length as the frame count.
func (b *Buffer) blank() *Buffer {
	frames := 0
	if len(b.data) > 0 {
		frames = len(b.data[0])
	}

	return New(len(b.data), frames, b.sampleRate)
}

// Reverse returns a buffer with each channel's frames in reverse order.
func (b *Buffer) Reverse() *Buffer {
	out := b.blank()
	for ch := range b.data {
		n := len(b.data[ch])
		for i := 0; i < n; i++ {
			out.data[ch][i] = b.data[ch][n-1-i]
		}
	}

	return out
}

// ReversePolarity returns a buffer with every amplitude negated. Negation
// is exact for IEEE floats, so applying it twice restores the input.
func (b *Buffer) ReversePolarity() *Buffer {
	out := b.blank()
	for ch := range b.data {
		for i, v := range b.data[ch] {
			out.data[ch][i] = -v
		}
	}

	return out
}

// Gain returns a buffer with every amplitude multiplied by factor. No
// clamping is applied; the result may leave the nominal [-1, 1] range.
// A negative factor inverts polarity, zero yields silence.
func (b *Buffer) Gain(factor float32) *Buffer {
	out := b.blank()
	for ch := range b.data {
		for i, v := range b.data[ch] {
			out.data[ch][i] = v * factor
		}
	}

	return out
}

// SwapChannels returns a buffer with channel c moved to position
// (channels-1)-c; frame data within each channel is unchanged. The middle
// channel of an odd count maps to itself.
func (b *Buffer) SwapChannels() *Buffer {
	out := b.blank()
	channels := len(b.data)
	for ch := range b.data {
		copy(out.data[(channels-1)-ch], b.data[ch])
	}

	return out
}

// MonoMix returns a single-channel buffer holding the average of all
// channels, preserving the sample rate. A mono buffer is copied through
// unchanged; a buffer with no channels yields one with no channels.
func (b *Buffer) MonoMix() *Buffer {
	channels := len(b.data)
	if channels == 0 {
		return &Buffer{data: [][]float32{}, sampleRate: b.sampleRate}
	}
	if channels == 1 {
		return b.Copy()
	}

	out := New(1, len(b.data[0]), b.sampleRate)
	invChannels := float32(1.0) / float32(channels)

	for i := range out.data[0] {
		sum := float32(0)
		for ch := range b.data {
			sum += b.data[ch][i]
		}
		out.data[0][i] = sum * invChannels
	}

	return out
}
