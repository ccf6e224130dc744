// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Clip is a fully decoded run of interleaved little-endian 16-bit PCM
// bytes together with its format descriptor.
type Clip struct {
	pcm    []byte
	format *Format
}

// NewClip wraps pcm bytes and their format. The clip takes ownership of
// pcm; the caller must not mutate it afterwards.
func NewClip(pcm []byte, format *Format) *Clip {
	return &Clip{pcm: pcm, format: format}
}

// PCM returns the interleaved PCM bytes backing the clip.
func (c *Clip) PCM() []byte { return c.pcm }

// Format of the PCM data.
func (c *Clip) Format() *Format { return c.format }

// Frames is the number of whole frames in the clip.
func (c *Clip) Frames() int {
	if c.format == nil {
		return 0
	}
	return c.format.BytesToFrames(len(c.pcm))
}

// Decoder constructs a Clip from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Clip, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
