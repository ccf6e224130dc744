package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/pcmkit/audio"
)

type Decoder struct{}

// Decode reads an entire PCM 16-bit WAV stream into a clip. The reader
// is buffered in memory first when it does not seek, which go-audio
// requires.
func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()

	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}

	format := audio.NewFormat(int(dec.SampleRate), int(dec.BitDepth), int(dec.NumChans))

	// go-audio hands back ints; repack as little-endian 16-bit
	pcm := make([]byte, len(buf.Data)*2)
	for i, v := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[i*2:i*2+2], uint16(int16(v)))
	}

	return audio.NewClip(pcm, format), nil
}
