// SPDX-License-Identifier: EPL-2.0

// Package samples provides an immutable multichannel sample buffer and a
// set of pure per-frame transforms over it.
//
// # Sample Buffer
//
// A Buffer is a channels x frames grid of normalized float32 amplitudes
// plus a sample rate. It is value-like: constructors deep-copy, accessors
// return copies, and no operation ever mutates a buffer in place. That
// makes concurrent reads of the same buffer safe without coordination.
//
//	buf := samples.FromChannels([][]float32{
//	    {1, 2, 3},
//	    {4, 5, 6},
//	}, 48000)
//
// # Transforms
//
// Every transform returns a fresh buffer with the same channel count and
// sample rate:
//
//	buf.Reverse()         // frames in reverse order per channel
//	buf.ReversePolarity() // negated amplitudes
//	buf.Gain(0.5)         // scaled amplitudes, no clamping
//	buf.SwapChannels()    // channel order mirrored
//	buf.MonoMix()         // channels averaged into one
//	buf.Copy()            // independent deep duplicate
//
// Reverse of Reverse, ReversePolarity of ReversePolarity and SwapChannels
// of SwapChannels each restore the original buffer exactly.
//
// # Rectangularity
//
// Transforms assume every channel has the same frame count and do not
// check it; a ragged buffer produces undefined geometry. Length returns
// the maximum frame count across channels (-1 with zero channels), so
// raggedness can be detected by comparing it with one channel's length.
// Split is the exception: it validates and returns ErrRaggedChannels.
//
// # PCM Bridge
//
// FromClip and Buffer.Clip convert between the float grid and interleaved
// 16-bit PCM clips from the audio package, for composing with Bufferize
// and the formats decoders.
package samples
