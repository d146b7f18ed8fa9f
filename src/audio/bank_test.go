package audio

import "testing"

func TestBankApplyReplacesOnlyTarget(t *testing.T) {
	b := NewBank(DemoOscillators()...)
	before := []Params{}
	for i := 0; i < b.Len(); i++ {
		p, _ := b.At(i)
		before = append(before, p)
	}

	next := Params{Frequency: 1000, Amplitude: 0.3, Waveform: WaveSaw, Speed: 2, Phase: 0.5}
	if appended := b.Apply(Update{Index: 1, Params: next}); appended {
		t.Fatalf("in-range index should replace")
	}
	if b.Len() != 3 {
		t.Fatalf("expected length 3, but got: %d", b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		got, _ := b.At(i)
		want := before[i]
		if i == 1 {
			want = next
		}
		if got != want {
			t.Errorf("oscillator %d: expected %+v, but got: %+v", i, want, got)
		}
	}
}

func TestBankApplyAppendsOutOfRange(t *testing.T) {
	b := NewBank(DefaultOscillators()...)
	for _, offset := range []int{0, 100} {
		length := b.Len()
		p := Params{Frequency: 220 + float64(offset), Amplitude: 0.1, Waveform: WaveSquare, Speed: 1}
		if appended := b.Apply(Update{Index: length + offset, Params: p}); !appended {
			t.Fatalf("index %d should append", length+offset)
		}
		if b.Len() != length+1 {
			t.Fatalf("expected length %d, but got: %d", length+1, b.Len())
		}
		got, ok := b.At(length)
		if !ok || got != p {
			t.Errorf("appended oscillator: expected %+v, but got: %+v", p, got)
		}
		if offset > 0 {
			if _, ok := b.At(length + offset); ok {
				t.Errorf("requested index %d should not exist", length+offset)
			}
		}
	}
}

func TestBankNegativeIndexAppends(t *testing.T) {
	b := NewBank()
	b.Apply(Update{Index: -1, Params: Params{Frequency: 1, Speed: 1}})
	if b.Len() != 1 {
		t.Errorf("expected length 1, but got: %d", b.Len())
	}
	if _, ok := b.At(-1); ok {
		t.Errorf("At(-1) should not be addressable")
	}
}

func TestBankNextIsSumOfOscillators(t *testing.T) {
	seed := append(DemoOscillators(), DefaultOscillators()...)
	b := NewBank(seed...)
	refs := make([]*Oscillator, len(seed))
	for i, p := range seed {
		refs[i] = NewOscillator(p)
	}
	for n := 0; n < 2000; n++ {
		want := 0.0
		for _, o := range refs {
			want += o.NextSample(44100)
		}
		got := b.Next(44100)
		if got != want {
			t.Fatalf("sample %d: expected %v, but got: %v", n, want, got)
		}
	}
}

func TestEmptyBankIsSilent(t *testing.T) {
	if got := NewBank().Next(48000); got != 0 {
		t.Errorf("expected 0, but got: %v", got)
	}
}
