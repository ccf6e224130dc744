// SPDX-License-Identifier: EPL-2.0

package audio

// Bufferize splits raw interleaved PCM bytes into independently owned
// chunks of at most bufferSize bytes, aligned down to the format's frame
// size so no chunk splits a frame. Chunks are returned in source order and
// concatenating them reproduces data exactly. The last chunk may be
// shorter than the rest. Empty input yields zero chunks.
//
// When bufferSize is smaller than one frame, alignment is skipped and the
// data is split byte-exact at bufferSize boundaries. Callers that need
// frame-aligned output must request at least one frame per chunk.
func Bufferize(data []byte, format *Format, bufferSize int) ([][]byte, error) {
	if data == nil {
		return nil, ErrNilData
	}

	if format == nil {
		return nil, ErrNilFormat
	}

	if bufferSize <= 0 {
		return nil, ErrBufferSize
	}

	frameSize := format.FrameSize()
	if frameSize <= 0 {
		return nil, ErrBadFrameSize
	}

	// Align down to a whole number of frames. A sub-frame request would
	// align to zero, so it is kept as-is.
	if aligned := (bufferSize / frameSize) * frameSize; aligned > 0 {
		bufferSize = aligned
	}

	var chunks [][]byte

	for i := 0; i < len(data); i += bufferSize {
		end := min(i+bufferSize, len(data))
		chunk := make([]byte, end-i)
		copy(chunk, data[i:end])
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}
