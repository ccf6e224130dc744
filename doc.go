// SPDX-License-Identifier: EPL-2.0

// Package pcmkit provides frame-aware PCM buffer segmentation and pure
// multichannel sample transforms for Go audio pipelines.
//
// Two primitives make up the core, composed only by calling them in
// sequence:
//   - audio.Bufferize splits raw interleaved PCM bytes into frame-aligned
//     chunks for device I/O or network transport
//   - samples.Buffer applies deterministic per-frame transforms (reverse,
//     polarity inversion, gain, channel swap, mono mix, copy) to a decoded
//     multichannel buffer
//
// Everything is synchronous, allocation-bounded and free of side effects:
// no operation mutates its input, and every result is an independently
// owned copy.
//
// # Quick Start
//
// Split a decoded buffer into device-sized chunks:
//
//	format := audio.NewFormat(48000, 16, 2)
//	chunks, err := audio.Bufferize(pcm, format, 1024)
//
//	for _, chunk := range chunks {
//	    device.Write(chunk)
//	}
//
// Transform a sample buffer:
//
//	buf := samples.FromChannels(channels, 48000)
//	louder := buf.Gain(1.5)
//	backwards := buf.Reverse()
//
// # High-Level Pipelines
//
// TransformWAV chains decode, transform and re-encode in one call:
//
//	err := pcmkit.TransformWAV(in, out, func(b *samples.Buffer) *samples.Buffer {
//	    return b.Reverse().Gain(0.8)
//	})
//
// SegmentWAV decodes a WAV stream and returns its PCM pre-cut into
// frame-aligned chunks:
//
//	chunks, format, err := pcmkit.SegmentWAV(in, 4096)
//
// # Format Decoders
//
// Each supported format has its own decoder producing an audio.Clip of
// interleaved 16-bit PCM:
//
//	// WAV
//	clip, _ := wav.Decoder{}.Decode(reader)
//
//	// MP3
//	clip, _ := mp3.Decoder{}.Decode(reader)
//
//	// Ogg Vorbis
//	clip, _ := vorbis.Decoder{}.Decode(reader)
//
//	// AIFF
//	clip, _ := aiff.Decoder{}.Decode(reader)
//
// Formats returns a populated registry for extension-based lookup.
//
// # Writing WAV Files
//
// The wav package writes PCM WAV output from either raw bytes or a sample
// buffer:
//
//	wav.WritePCM16(out, clip.Format(), clip.PCM())
//	wav.WriteBuffer(out, buf)
//
// # Sample Format
//
// Sample buffers hold float32 amplitudes in the range [-1.0, 1.0], indexed
// by [channel][frame]. Transforms apply no clamping, so intermediate
// results may exceed the nominal range; quantization back to 16-bit PCM
// clamps at the edge of the pipeline.
//
// See the individual subpackages for more detailed documentation.
package pcmkit
