package pcmkit

import (
	"fmt"
	"io"

	"github.com/ik5/pcmkit/audio"
	"github.com/ik5/pcmkit/formats/aiff"
	"github.com/ik5/pcmkit/formats/mp3"
	"github.com/ik5/pcmkit/formats/vorbis"
	"github.com/ik5/pcmkit/formats/wav"
	"github.com/ik5/pcmkit/samples"
)

// Formats returns a registry with every built-in decoder registered under
// its usual file extension ("ogg" for Ogg Vorbis).
func Formats() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})

	return registry
}

// TransformWAV decodes a PCM 16-bit WAV stream from r, applies the given
// transforms in order, and writes the result back to w as WAV.
//
// This is a convenience pipeline for the common decode -> transform ->
// re-encode case. For more control, use wav.Decoder, samples.FromClip and
// wav.WriteBuffer directly.
//
// Example:
//
//	err := pcmkit.TransformWAV(in, out,
//	    (*samples.Buffer).Reverse,
//	    func(b *samples.Buffer) *samples.Buffer { return b.Gain(0.5) },
//	)
func TransformWAV(r io.Reader, w io.Writer, transforms ...samples.Transform) error {
	clip, err := wav.Decoder{}.Decode(r)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := samples.FromClip(clip)
	for _, transform := range transforms {
		if transform == nil {
			continue
		}
		buf = transform(buf)
	}

	if err := wav.WriteBuffer(w, buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// SegmentWAV decodes a PCM 16-bit WAV stream from r and splits its raw
// PCM into frame-aligned chunks of at most bufferSize bytes, suitable for
// device writes or network sends. The clip's format descriptor is
// returned alongside the chunks.
func SegmentWAV(r io.Reader, bufferSize int) ([][]byte, *audio.Format, error) {
	clip, err := wav.Decoder{}.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	chunks, err := audio.Bufferize(clip.PCM(), clip.Format(), bufferSize)
	if err != nil {
		return nil, nil, err
	}

	return chunks, clip.Format(), nil
}
