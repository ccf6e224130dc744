// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF streams to PCM clips.
//
// Decoding wraps github.com/go-audio/aiff:
//
//	decoder := aiff.Decoder{}
//	clip, err := decoder.Decode(file)
//
// Only 16-bit PCM is supported; other bit depths fail with
// ErrOnlyPCM16bitSupported.
package aiff
