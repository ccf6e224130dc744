// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/pcmkit/audio"
)

type Decoder struct{}

// Decode reads an entire MP3 stream into a clip. go-mp3 emits stereo
// 16-bit little-endian PCM, which is exactly the clip representation, so
// the decoded bytes are taken as-is.
func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return audio.NewClip(pcm, audio.NewFormat(dec.SampleRate(), 16, 2)), nil
}
