package aiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/pcmkit/audio"
)

type Decoder struct{}

// Decode reads an entire PCM 16-bit AIFF stream into a clip. go-audio
// requires a seeker, so non-seeking readers are buffered in memory first.
func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	info := dec.Format()
	if info == nil {
		return nil, ErrNotAiffFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding aiff: %w", err)
	}

	format := audio.NewFormat(info.SampleRate, int(dec.BitDepth), info.NumChannels)

	pcm := make([]byte, len(buf.Data)*2)
	for i, v := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[i*2:i*2+2], uint16(int16(v)))
	}

	return audio.NewClip(pcm, format), nil
}
