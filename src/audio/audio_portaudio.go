//go:build portaudio

package audio

import (
	"context"
	"errors"
	"log"

	"github.com/gordonklaus/portaudio"
)

// ----- Audio (PortAudio) ----- //

// Audio drives a Renderer from PortAudio's default output stream. PortAudio
// calls process once per buffer on its own real-time thread.
type Audio struct {
	stream   *portaudio.Stream
	renderer *Renderer
	config   Config
	mono     []float32
}

func NewAudio(config Config, renderer *Renderer) (*Audio, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	a := &Audio{
		renderer: renderer,
		config:   config,
		mono:     make([]float32, config.FramesPerBuffer),
	}
	stream, err := portaudio.OpenDefaultStream(0, config.Channels, float64(config.SampleRate), config.FramesPerBuffer, a.process)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	a.stream = stream
	return a, nil
}

func (a *Audio) process(out []float32) {
	mono := monoScratch(&a.mono, len(out)/a.config.Channels)
	a.renderer.Process(mono)
	spread(mono, out, a.config.Channels)
}

// Start runs the stream until ctx is cancelled.
func (a *Audio) Start(ctx context.Context) error {
	defer a.renderer.Close()
	if err := a.stream.Start(); err != nil {
		log.Printf("audio stream error: %v", err)
		return err
	}
	<-ctx.Done()
	if err := a.stream.Stop(); err != nil {
		log.Printf("error while stopping stream: %v", err)
	}
	log.Println("Start() ended.")
	return nil
}

func (a *Audio) Close() error {
	log.Println("Closing Audio...")
	return errors.Join(a.stream.Close(), portaudio.Terminate())
}
