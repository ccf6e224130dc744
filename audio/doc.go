// SPDX-License-Identifier: EPL-2.0

// Package audio provides the raw-PCM primitives of pcmkit: the format
// descriptor, frame-aligned buffer segmentation and the decoder registry.
//
// # Format Descriptor
//
// A Format carries the three numbers every byte-level operation needs:
//
//	format := audio.NewFormat(48000, 16, 2)
//	format.FrameSize() // 4 bytes: 2 bytes per sample x 2 channels
//	format.ByteRate()  // 192000 bytes per second
//
// It also converts between frames, samples, bytes and durations, always
// truncating toward zero on integer division.
//
// # Buffer Segmentation
//
// Bufferize splits a raw PCM byte buffer into chunks sized for device
// writes or network sends, aligned down so no chunk splits a frame:
//
//	chunks, err := audio.Bufferize(pcm, format, 1024)
//
// Chunks are independent copies in source order; concatenating them
// reproduces the input byte-for-byte. See Bufferize for the sub-frame
// buffer size edge case.
//
// # Error Handling
//
// Bufferize fails before touching any data, so a caller never observes a
// partial result. The two base sentinels classify every failure:
//
//	_, err := audio.Bufferize(nil, format, 1024)
//	errors.Is(err, audio.ErrInvalidArgument) // true
//
// ErrInvalidFormat covers a descriptor whose frame size is not positive;
// ErrInvalidArgument covers everything the caller passed directly.
//
// # Decoder Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// All decoders in the formats subpackages produce a Clip: interleaved
// little-endian 16-bit PCM plus its Format.
package audio
