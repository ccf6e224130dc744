// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams to PCM clips.
//
// Decoding wraps github.com/jfreymuth/oggvorbis. Vorbis decodes to
// normalized float32 frames; these are quantized to 16-bit PCM so every
// decoder in formats produces the same clip representation:
//
//	decoder := vorbis.Decoder{}
//	clip, err := decoder.Decode(file)
package vorbis
