package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestRenderOfflineMatchesSingleProcess(t *testing.T) {
	a := NewRenderer(48000, NewQueue(), DemoOscillators()...)
	b := NewRenderer(48000, NewQueue(), DemoOscillators()...)

	chunked := RenderOffline(a, 1000, 128)
	whole := make([]float32, 1000)
	b.Process(whole)
	for i := range whole {
		if chunked[i] != whole[i] {
			t.Fatalf("sample %d: expected %v, but got: %v", i, whole[i], chunked[i])
		}
	}
}

func TestRenderOfflineAppliesQueuedUpdates(t *testing.T) {
	q := NewQueue()
	r := NewRenderer(48000, q)
	expectNoError(t, q.Send(Update{Index: 0, Params: Params{Frequency: 100, Amplitude: 0.25, Waveform: WaveSquare, Speed: 1}}))
	out := RenderOffline(r, 300, 0)
	for i, v := range out {
		if v != 0.25 && v != -0.25 {
			t.Fatalf("sample %d: expected ±0.25, but got: %v", i, v)
		}
	}
}

func TestWriteWAV(t *testing.T) {
	samples := RenderOffline(NewRenderer(8000, NewQueue(), DemoOscillators()...), 800, 256)
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	expectNoError(t, err)
	expectNoError(t, WriteWAV(f, samples, 8000, 2))
	expectNoError(t, f.Close())

	f, err = os.Open(path)
	expectNoError(t, err)
	defer f.Close()
	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		t.Fatalf("expected a valid WAV file")
	}
	buf, err := d.FullPCMBuffer()
	expectNoError(t, err)
	if d.SampleRate != 8000 || d.NumChans != 2 || d.BitDepth != 16 {
		t.Errorf("unexpected format: %d Hz, %d channels, %d bits", d.SampleRate, d.NumChans, d.BitDepth)
	}
	if len(buf.Data) != len(samples)*2 {
		t.Fatalf("expected %d values, but got: %d", len(samples)*2, len(buf.Data))
	}
	for i, s := range samples {
		want := int(clip(s) * 32767)
		if buf.Data[2*i] != want || buf.Data[2*i+1] != want {
			t.Fatalf("frame %d: expected %d, but got: %d %d", i, want, buf.Data[2*i], buf.Data[2*i+1])
		}
	}
}
