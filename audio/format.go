// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Format describes decoded PCM data: sample rate in Hz, bit depth and
// channel count. It is consumed read-only; construct one with NewFormat.
type Format struct {
	sampleRate    int
	bitsPerSample int
	channels      int
}

// NewFormat returns a format descriptor for the given sample rate in Hz,
// bit depth and channel count. No validation is performed here; Bufferize
// rejects formats whose frame size is not positive.
func NewFormat(sampleRate, bitsPerSample, channels int) *Format {
	return &Format{
		sampleRate:    sampleRate,
		bitsPerSample: bitsPerSample,
		channels:      channels,
	}
}

// SampleRate in Hz (frames per second).
func (f *Format) SampleRate() int { return f.sampleRate }

// BitsPerSample of a single channel sample (e.g. 16).
func (f *Format) BitsPerSample() int { return f.bitsPerSample }

// Channels count (e.g., 1=mono, 2=stereo).
func (f *Format) Channels() int { return f.channels }

// BytesPerSample of a single channel sample.
func (f *Format) BytesPerSample() int { return f.bitsPerSample / 8 }

// FrameSize is the number of bytes occupied by one frame: one sample per
// channel. This is the alignment unit used by Bufferize.
func (f *Format) FrameSize() int { return f.BytesPerSample() * f.channels }

// ByteRate is the number of bytes consumed per second of audio.
func (f *Format) ByteRate() int { return f.FrameSize() * f.sampleRate }

// FramesToBytes converts a frame count to a byte count.
func (f *Format) FramesToBytes(frames int) int { return frames * f.FrameSize() }

// BytesToFrames converts a byte count to a whole frame count, truncating
// any partial frame. Returns 0 when the frame size is not positive.
func (f *Format) BytesToFrames(bytes int) int {
	frameSize := f.FrameSize()
	if frameSize <= 0 {
		return 0
	}
	return bytes / frameSize
}

// FramesToSamples converts a frame count to the total interleaved sample
// count across all channels.
func (f *Format) FramesToSamples(frames int) int { return frames * f.channels }

// SamplesToFrames converts an interleaved sample count to a whole frame
// count. Returns 0 when the channel count is not positive.
func (f *Format) SamplesToFrames(samples int) int {
	if f.channels <= 0 {
		return 0
	}
	return samples / f.channels
}

// FramesToDuration converts a frame count to wall-clock duration.
// Returns 0 when the sample rate is not positive.
func (f *Format) FramesToDuration(frames int) time.Duration {
	if f.sampleRate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(f.sampleRate)
}

// DurationToFrames converts a duration to a whole frame count, truncating
// any partial frame.
func (f *Format) DurationToFrames(d time.Duration) int {
	return int(d * time.Duration(f.sampleRate) / time.Second)
}
