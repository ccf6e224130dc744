// SPDX-License-Identifier: EPL-2.0

package samples

// Split cuts the buffer into consecutive buffers of at most framesPerChunk
// frames each, preserving channel count and sample rate. The final chunk
// may be shorter. This is the only operation that validates rectangularity:
// ragged input is rejected with ErrRaggedChannels rather than producing
// undefined geometry.
func (b *Buffer) Split(framesPerChunk int) ([]*Buffer, error) {
	if framesPerChunk <= 0 {
		return nil, ErrChunkSize
	}

	channels := len(b.data)
	if channels == 0 {
		return nil, nil
	}

	total := len(b.data[0])
	for ch := 1; ch < channels; ch++ {
		if len(b.data[ch]) != total {
			return nil, ErrRaggedChannels
		}
	}

	var chunks []*Buffer

	for i := 0; i < total; i += framesPerChunk {
		n := min(framesPerChunk, total-i)
		chunk := New(channels, n, b.sampleRate)
		for ch := range chunk.data {
			copy(chunk.data[ch], b.data[ch][i:i+n])
		}
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}
