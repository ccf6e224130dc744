// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/pcmkit/audio"
	"github.com/ik5/pcmkit/samples"
)

// WritePCM16 writes interleaved little-endian 16-bit PCM bytes as a WAV
// stream described by format. Only a 16-bit format is accepted; channel
// count and sample rate are taken from the descriptor.
func WritePCM16(w io.Writer, format *audio.Format, pcm []byte) error {
	if format == nil || format.BitsPerSample() != 16 {
		return ErrOnlyPCM16bitSupported
	}

	dataSize := uint32(len(pcm))
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], uint16(format.Channels()))
	binary.LittleEndian.PutUint32(header[24:28], uint32(format.SampleRate()))
	binary.LittleEndian.PutUint32(header[28:32], uint32(format.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(format.FrameSize()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(format.BitsPerSample()))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(pcm) == 0 {
		return nil
	}

	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteBuffer encodes a multichannel sample buffer as a 16-bit PCM WAV
// stream, interleaving and quantizing via the buffer's clip conversion.
func WriteBuffer(w io.Writer, buf *samples.Buffer) error {
	clip := buf.Clip()
	return WritePCM16(w, clip.Format(), clip.PCM())
}
