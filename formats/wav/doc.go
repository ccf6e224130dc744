// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM 16-bit WAV streams.
//
// Decoding wraps github.com/go-audio/wav and produces a whole audio.Clip:
//
//	decoder := wav.Decoder{}
//	clip, err := decoder.Decode(file)
//
// Only format 1 (uncompressed PCM) at 16 bits per sample is supported;
// anything else fails with ErrOnlyPCM16bitSupported.
//
// Encoding writes a canonical 44-byte header followed by the raw data:
//
//	wav.WritePCM16(out, clip.Format(), clip.PCM())
//
// WriteBuffer accepts a samples.Buffer directly and handles the
// interleave and 16-bit quantization:
//
//	wav.WriteBuffer(out, buf)
package wav
