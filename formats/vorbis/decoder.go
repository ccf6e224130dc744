package vorbis

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/pcmkit/audio"
	"github.com/ik5/pcmkit/utils"
)

type Decoder struct{}

// Decode reads an entire Ogg Vorbis stream into a clip. The decoder
// produces interleaved float32 frames which are quantized to 16-bit PCM.
func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis: %w", err)
	}

	pcm := make([]byte, len(data)*2)
	for i, v := range data {
		s := utils.Float32ToInt16(v)
		binary.LittleEndian.PutUint16(pcm[i*2:i*2+2], uint16(s))
	}

	return audio.NewClip(pcm, audio.NewFormat(format.SampleRate, 16, format.Channels)), nil
}
