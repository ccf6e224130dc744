// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams to PCM clips.
//
// Decoding wraps github.com/hajimehoshi/go-mp3, which always emits stereo
// 16-bit PCM at the stream's native sample rate:
//
//	decoder := mp3.Decoder{}
//	clip, err := decoder.Decode(file)
//
// The clip can then be segmented with audio.Bufferize or lifted into a
// samples.Buffer for transformation.
package mp3
