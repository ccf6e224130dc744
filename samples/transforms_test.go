// SPDX-License-Identifier: EPL-2.0

package samples

import (
	"math"
	"testing"

	"github.com/ik5/pcmkit/internal/audiotest"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	got := stereoFixture().Reverse()
	want := FromChannels([][]float32{
		{3, 2, 1},
		{6, 5, 4},
	}, 48000)

	buffersEqual(t, got, want)
}

func TestReverse_Involution(t *testing.T) {
	t.Parallel()

	b := stereoFixture()
	buffersEqual(t, b.Reverse().Reverse(), b)
}

func TestReverse_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	b := stereoFixture()
	_ = b.Reverse()

	buffersEqual(t, b, stereoFixture())
}

func TestReversePolarity(t *testing.T) {
	t.Parallel()

	got := stereoFixture().ReversePolarity()
	want := FromChannels([][]float32{
		{-1, -2, -3},
		{-4, -5, -6},
	}, 48000)

	buffersEqual(t, got, want)
}

func TestReversePolarity_DoubleNegation(t *testing.T) {
	t.Parallel()

	// Negation is exact for IEEE floats; equality must hold bit-for-bit
	b := FromChannels([][]float32{
		{0.1, -0.33, 0.0001, 1.5},
		{-0.999, 0.5, -1, 0},
	}, 44100)

	buffersEqual(t, b.ReversePolarity().ReversePolarity(), b)
}

func TestGain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		factor float32
		want   [][]float32
	}{
		{
			name:   "doubling",
			factor: 2,
			want:   [][]float32{{2, 4, 6}, {8, 10, 12}},
		},
		{
			name:   "attenuation",
			factor: 0.5,
			want:   [][]float32{{0.5, 1, 1.5}, {2, 2.5, 3}},
		},
		{
			name:   "zero yields silence",
			factor: 0,
			want:   [][]float32{{0, 0, 0}, {0, 0, 0}},
		},
		{
			name:   "negative inverts",
			factor: -1,
			want:   [][]float32{{-1, -2, -3}, {-4, -5, -6}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := stereoFixture().Gain(tt.factor)
			buffersEqual(t, got, FromChannels(tt.want, 48000))
		})
	}
}

func TestGain_NoClamping(t *testing.T) {
	t.Parallel()

	b := FromChannels([][]float32{{0.9}}, 8000).Gain(10)
	if b.Sample(0, 0) != 9 {
		t.Errorf("Sample(0, 0) = %v, want 9 with no clamping", b.Sample(0, 0))
	}
}

func TestGain_Linearity(t *testing.T) {
	t.Parallel()

	b := FromChannels(audiotest.Sine(48000, 2, 64, 440), 48000)

	chained := b.Gain(0.3).Gain(1.7)
	direct := b.Gain(0.3 * 1.7)

	const tolerance = 1e-6
	for ch := 0; ch < chained.Channels(); ch++ {
		for i := 0; i < chained.Length(); i++ {
			diff := math.Abs(float64(chained.Sample(ch, i) - direct.Sample(ch, i)))
			if diff > tolerance {
				t.Errorf("Sample(%d, %d): chained = %v, direct = %v", ch, i, chained.Sample(ch, i), direct.Sample(ch, i))
			}
		}
	}
}

func TestSwapChannels(t *testing.T) {
	t.Parallel()

	got := stereoFixture().SwapChannels()
	want := FromChannels([][]float32{
		{4, 5, 6},
		{1, 2, 3},
	}, 48000)

	buffersEqual(t, got, want)
}

func TestSwapChannels_Involution(t *testing.T) {
	t.Parallel()

	b := FromChannels([][]float32{
		{1, 2},
		{3, 4},
		{5, 6},
		{7, 8},
	}, 48000)

	buffersEqual(t, b.SwapChannels().SwapChannels(), b)
}

func TestSwapChannels_OddCountMiddleUnchanged(t *testing.T) {
	t.Parallel()

	b := FromChannels([][]float32{
		{1, 1},
		{2, 2},
		{3, 3},
	}, 48000)

	got := b.SwapChannels()
	want := FromChannels([][]float32{
		{3, 3},
		{2, 2},
		{1, 1},
	}, 48000)

	buffersEqual(t, got, want)
}

func TestMonoMix(t *testing.T) {
	t.Parallel()

	got := FromChannels([][]float32{
		{0.4, 0.2, 0},
		{0.6, 0.4, 0},
	}, 44100).MonoMix()

	if got.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", got.Channels())
	}
	if got.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got.SampleRate())
	}

	want := []float32{0.5, 0.3, 0}
	const tolerance = 1e-6
	for i, w := range want {
		diff := math.Abs(float64(got.Sample(0, i) - w))
		if diff > tolerance {
			t.Errorf("Sample(0, %d) = %v, want %v", i, got.Sample(0, i), w)
		}
	}
}

func TestMonoMix_ConstantChannels(t *testing.T) {
	t.Parallel()

	// Averaging identical channels is the identity
	b := FromChannels(audiotest.Constant(4, 16, 0.25), 8000)
	got := b.MonoMix()

	if got.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", got.Channels())
	}
	for i := 0; i < got.Length(); i++ {
		if got.Sample(0, i) != 0.25 {
			t.Errorf("Sample(0, %d) = %v, want 0.25", i, got.Sample(0, i))
		}
	}
}

func TestMonoMix_MonoPassthrough(t *testing.T) {
	t.Parallel()

	b := FromChannels([][]float32{{0.1, 0.2, 0.3}}, 8000)
	got := b.MonoMix()

	buffersEqual(t, got, b)

	// Passthrough must still be an independent copy
	got.data[0][0] = 99
	if b.Sample(0, 0) != 0.1 {
		t.Error("MonoMix() of mono input aliases the original")
	}
}

func TestTransforms_DegenerateBuffers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    *Buffer
	}{
		{
			name: "zero channels",
			b:    New(0, 0, 8000),
		},
		{
			name: "zero frames",
			b:    New(2, 0, 8000),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// None of these may panic, and geometry must survive
			for _, got := range []*Buffer{
				tt.b.Reverse(),
				tt.b.ReversePolarity(),
				tt.b.Gain(2),
				tt.b.SwapChannels(),
				tt.b.Copy(),
			} {
				if got.Channels() != tt.b.Channels() {
					t.Errorf("Channels() = %d, want %d", got.Channels(), tt.b.Channels())
				}
				if got.SampleRate() != tt.b.SampleRate() {
					t.Errorf("SampleRate() = %d, want %d", got.SampleRate(), tt.b.SampleRate())
				}
			}

			if got := tt.b.MonoMix(); got.Channels() > 1 {
				t.Errorf("MonoMix() channels = %d, want at most 1", got.Channels())
			}
		})
	}
}
