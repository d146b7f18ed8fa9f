package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// RenderOffline runs r for frames samples, calling Process once per blockSize
// samples as a device would. Updates already queued are applied at block
// boundaries.
func RenderOffline(r *Renderer, frames int, blockSize int) []float32 {
	out := make([]float32, frames)
	if blockSize <= 0 {
		blockSize = frames
	}
	for start := 0; start < frames; start += blockSize {
		end := min(start+blockSize, frames)
		r.Process(out[start:end])
	}
	return out
}

// WriteWAV writes mono samples as 16-bit PCM with the signal copied to each of
// channels.
func WriteWAV(w io.WriteSeeker, samples []float32, sampleRate int, channels int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)*channels),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		v := int(clip(s) * 32767)
		for ch := 0; ch < channels; ch++ {
			buf.Data[i*channels+ch] = v
		}
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav: %w", err)
	}
	return nil
}
