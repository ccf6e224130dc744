package aiff

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	if ErrNotAiffFile.Error() != "not an AIFF file" {
		t.Errorf("ErrNotAiffFile.Error() = %q", ErrNotAiffFile.Error())
	}
	if ErrOnlyPCM16bitSupported.Error() != "only PCM 16-bit supported" {
		t.Errorf("ErrOnlyPCM16bitSupported.Error() = %q", ErrOnlyPCM16bitSupported.Error())
	}
}
