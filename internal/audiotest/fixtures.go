// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides small deterministic fixtures shared by the
// pcmkit tests: sample grids and raw PCM byte patterns.
package audiotest

import (
	"encoding/binary"
	"math"
)

// Int16LE converts interleaved int16 samples to little-endian PCM bytes.
func Int16LE(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(s))
	}
	return out
}

// Sine returns a channels x frames grid of a sine wave at frequency Hz,
// identical on every channel.
func Sine(sampleRate, channels, frames int, frequency float64) [][]float32 {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
		for i := range data[ch] {
			t := float64(i) / float64(sampleRate)
			data[ch][i] = float32(math.Sin(2 * math.Pi * frequency * t))
		}
	}
	return data
}

// Constant returns a channels x frames grid filled with value.
func Constant(channels, frames int, value float32) [][]float32 {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
		for i := range data[ch] {
			data[ch][i] = value
		}
	}
	return data
}

// Ramp returns a channels x frames grid where channel ch frame i holds
// the distinct value (ch+1)/10 + i/1000, handy for asserting ordering.
func Ramp(channels, frames int) [][]float32 {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
		for i := range data[ch] {
			data[ch][i] = float32(ch+1)/10 + float32(i)/1000
		}
	}
	return data
}
