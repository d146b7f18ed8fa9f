//go:build !portaudio

package audio

import (
	"context"
	"io"
	"log"

	"github.com/hajimehoshi/oto"
)

// ----- Audio ----- //

// Audio drives a Renderer from the default output device. The device pulls
// PCM through Read; each Read is one render invocation.
type Audio struct {
	ctx        context.Context
	otoContext *oto.Context
	renderer   *Renderer
	config     Config
	mono       []float32
}

var _ io.Reader = (*Audio)(nil)

// NewAudio acquires the output device. An error here means playback cannot
// start at all.
func NewAudio(config Config, renderer *Renderer) (*Audio, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	bufferSizeInBytes := config.FramesPerBuffer * config.bytesPerFrame()
	otoContext, err := oto.NewContext(config.SampleRate, config.Channels, bitDepthInBytes, bufferSizeInBytes)
	if err != nil {
		return nil, err
	}
	return &Audio{
		ctx:        context.Background(),
		otoContext: otoContext,
		renderer:   renderer,
		config:     config,
		mono:       make([]float32, config.FramesPerBuffer),
	}, nil
}

func (a *Audio) Read(buf []byte) (int, error) {
	select {
	case <-a.ctx.Done():
		return 0, io.EOF
	default:
	}
	bytesPerFrame := a.config.bytesPerFrame()
	mono := monoScratch(&a.mono, len(buf)/bytesPerFrame)
	a.renderer.Process(mono)
	writeBuffer(mono, buf, a.config.Channels)
	return len(mono) * bytesPerFrame, nil
}

// Start renders until ctx is cancelled or the stream fails. The renderer is
// closed on return, so later sends report ErrQueueClosed.
func (a *Audio) Start(ctx context.Context) error {
	defer a.renderer.Close()
	p := a.otoContext.NewPlayer()
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("error while closing player: %v", err)
		}
	}()
	a.ctx = ctx

	// block until cancel() called
	buf := make([]byte, a.config.FramesPerBuffer*a.config.bytesPerFrame())
	if _, err := io.CopyBuffer(p, a, buf); err != nil {
		log.Printf("audio stream error: %v", err)
		return err
	}
	log.Println("Start() ended.")
	return nil
}

func (a *Audio) Close() error {
	log.Println("Closing Audio...")
	return a.otoContext.Close()
}
