package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinjor/simple-synth/src/audio"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const banner = `
		simple-synth running!
Enter values separated by space to modify an oscillator.
Use the following format:
	index frequency amplitude waveform speed phase
`

func main() {
	defaults := audio.DefaultConfig()
	var (
		sampleRate = flag.Int("sample-rate", defaults.SampleRate, "output sample rate in Hz")
		channels   = flag.Int("channels", defaults.Channels, "output channels (1 or 2)")
		frames     = flag.Int("buffer", defaults.FramesPerBuffer, "frames per device buffer")
		demo       = flag.Bool("demo", false, "start with the 440/550/660 Hz demo bank")
		sockPath   = flag.String("sock", "", "read control lines from a unix socket instead of stdin")
		midiIn     = flag.Bool("midi", false, "map the first MIDI input onto oscillators")
		midiGain   = flag.Float64("midi-gain", 0.1, "amplitude of a full-velocity MIDI note")
		script     = flag.String("script", "", "run a Lua control script")
		renderPath = flag.String("render", "", "render to a WAV file instead of playing")
		updates    = flag.String("updates", "", "with -render: control lines applied before rendering")
		seconds    = flag.Float64("seconds", 5, "with -render: length in seconds")
	)
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	config := audio.Config{
		SampleRate:      *sampleRate,
		Channels:        *channels,
		FramesPerBuffer: *frames,
	}
	initial := audio.DefaultOscillators()
	if *demo {
		initial = audio.DemoOscillators()
	}
	queue := audio.NewQueue()
	renderer := audio.NewRenderer(float64(config.SampleRate), queue, initial...)

	if *renderPath != "" {
		if err := renderToFile(*renderPath, *updates, *seconds, config, renderer, queue); err != nil {
			log.Fatalf("error: %v\n", err)
		}
		return
	}

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a, err := audio.NewAudio(config, renderer)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	defer a.Close()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalCh)
		cancel()
	}()
	go func() {
		sig := <-signalCh
		log.Printf("Caught signal %s: shutting down...\n", sig)
		cancel()
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Start(ctx)
	})
	if *midiIn {
		g.Go(func() error {
			return audio.ForwardMidi(ctx, audio.ListenToMidiIn(ctx), audio.NewMidiMapper(*midiGain), queue)
		})
	}
	if *script != "" {
		g.Go(func() error {
			if err := audio.RunScript(ctx, *script, float64(config.SampleRate), queue); err != nil {
				log.Printf("script ended with error: %v\n", err)
			}
			return nil
		})
	}
	if *sockPath != "" {
		g.Go(func() error {
			return withIPCConnection(ctx, *sockPath, func(conn net.Conn) error {
				return audio.ReadUpdates(ctx, conn, queue)
			})
		})
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println(banner)
		}
		// stdin blocks and cannot be interrupted; it is not part of the group.
		go func() {
			if err := audio.ReadUpdates(ctx, os.Stdin, queue); err != nil {
				log.Printf("error while reading stdin: %v\n", err)
			}
		}()
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("main() ended.")
}

func withIPCConnection(ctx context.Context, path string, f func(net.Conn) error) error {
	os.Remove(path)
	listener, err := new(net.ListenConfig).Listen(ctx, "unix", path)
	if err != nil {
		return err
	}
	defer func() {
		log.Println("Closing IPC...")
		err := listener.Close()
		if err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("error while closing listener: %v", err)
		}
		os.Remove(path)
	}()
	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()
	log.Printf("start listening on %s...\n", path)
	conn, err := listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	defer func() {
		err := conn.Close()
		if err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("error while closing connection: %v", err)
		}
	}()
	context.AfterFunc(ctx, func() {
		conn.Close()
	})
	return f(conn)
}

func renderToFile(path string, updatesPath string, seconds float64, config audio.Config, renderer *audio.Renderer, queue *audio.Queue) error {
	if updatesPath != "" {
		f, err := os.Open(updatesPath)
		if err != nil {
			return err
		}
		err = audio.ReadUpdates(context.Background(), f, queue)
		f.Close()
		if err != nil {
			return err
		}
	}
	frames := int(seconds * float64(config.SampleRate))
	samples := audio.RenderOffline(renderer, frames, config.FramesPerBuffer)
	renderer.Close()

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audio.WriteWAV(out, samples, config.SampleRate, config.Channels); err != nil {
		out.Close()
		return err
	}
	log.Printf("rendered %d frames to %s\n", frames, path)
	return out.Close()
}
