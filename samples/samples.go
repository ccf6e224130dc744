// SPDX-License-Identifier: EPL-2.0

package samples

import (
	"encoding/binary"

	"github.com/ik5/pcmkit/audio"
	"github.com/ik5/pcmkit/utils"
)

// Buffer holds decoded multichannel audio as normalized float32 amplitudes
// indexed by [channel][frame], together with a sample rate. The backing
// arrays are never exposed: constructors copy their input and accessors
// return copies, so a Buffer cannot be mutated from outside. Every
// transform returns a new, independently owned Buffer.
//
// All transforms assume a rectangular buffer (every channel has the same
// frame count). Raggedness is not validated; callers must enforce it
// upstream. Length reports the maximum frame count across channels, so a
// ragged buffer can be detected by comparing Length against any single
// channel.
type Buffer struct {
	data       [][]float32
	sampleRate int
}

// New returns a zero-filled buffer with the given geometry. Negative
// counts are treated as zero.
func New(channels, frames, sampleRate int) *Buffer {
	channels = max(channels, 0)
	frames = max(frames, 0)

	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
	}

	return &Buffer{data: data, sampleRate: sampleRate}
}

// FromChannels builds a buffer from per-channel sample slices, deep-copying
// every row. All rows must have the same length; a ragged input produces a
// buffer that is outside the transform contract.
func FromChannels(data [][]float32, sampleRate int) *Buffer {
	copied := make([][]float32, len(data))
	for ch := range data {
		copied[ch] = make([]float32, len(data[ch]))
		copy(copied[ch], data[ch])
	}

	return &Buffer{data: copied, sampleRate: sampleRate}
}

// FromClip deinterleaves a 16-bit PCM clip into a float buffer. Any
// trailing partial frame in the clip is dropped.
func FromClip(c *audio.Clip) *Buffer {
	format := c.Format()
	channels := format.Channels()
	if channels <= 0 {
		return &Buffer{sampleRate: format.SampleRate()}
	}

	pcm := c.PCM()
	frames := len(pcm) / 2 / channels
	b := New(channels, frames, format.SampleRate())

	for i := 0; i < frames; i++ {
		base := i * channels * 2
		for ch := 0; ch < channels; ch++ {
			v := int16(binary.LittleEndian.Uint16(pcm[base+ch*2 : base+ch*2+2]))
			b.data[ch][i] = utils.Int16ToFloat32(v)
		}
	}

	return b
}

// Clip interleaves the buffer back into a 16-bit PCM clip, clamping
// samples to [-1, 1]. The clip geometry follows channel 0's frame count.
func (b *Buffer) Clip() *audio.Clip {
	channels := len(b.data)
	frames := 0
	if channels > 0 {
		frames = len(b.data[0])
	}

	pcm := make([]byte, frames*channels*2)
	for i := 0; i < frames; i++ {
		base := i * channels * 2
		for ch := 0; ch < channels; ch++ {
			v := utils.Float32ToInt16(b.data[ch][i])
			binary.LittleEndian.PutUint16(pcm[base+ch*2:base+ch*2+2], uint16(v))
		}
	}

	return audio.NewClip(pcm, audio.NewFormat(b.sampleRate, 16, channels))
}

// Channels returns the number of channels.
func (b *Buffer) Channels() int { return len(b.data) }

// SampleRate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Length returns the maximum frame count across channels, or -1 when the
// buffer has no channels. For a rectangular buffer this is the frame count
// of every channel.
func (b *Buffer) Length() int {
	length := -1
	for ch := range b.data {
		length = max(length, len(b.data[ch]))
	}

	return length
}

// Sample returns the amplitude at the given channel and frame index.
func (b *Buffer) Sample(channel, frame int) float32 {
	return b.data[channel][frame]
}

// Channel returns a copy of one channel's samples.
func (b *Buffer) Channel(channel int) []float32 {
	out := make([]float32, len(b.data[channel]))
	copy(out, b.data[channel])
	return out
}

// Copy returns a fully independent deep duplicate.
func (b *Buffer) Copy() *Buffer {
	return FromChannels(b.data, b.sampleRate)
}
