package audio

import "fmt"

const (
	defaultSampleRate      = 48000
	defaultChannelNum      = 2
	defaultFramesPerBuffer = 1024
	bitDepthInBytes        = 2
)

// ----- Config ----- //

// Config describes the output stream negotiated with the device.
type Config struct {
	SampleRate      int
	Channels        int // 1 or 2; the mono render is copied to each
	FramesPerBuffer int
}

func DefaultConfig() Config {
	return Config{
		SampleRate:      defaultSampleRate,
		Channels:        defaultChannelNum,
		FramesPerBuffer: defaultFramesPerBuffer,
	}
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Channels != 1 && c.Channels != 2 {
		return fmt.Errorf("%w: %d channels", ErrInvalidConfig, c.Channels)
	}
	if c.FramesPerBuffer <= 0 {
		return fmt.Errorf("%w: %d frames per buffer", ErrInvalidConfig, c.FramesPerBuffer)
	}
	return nil
}

func (c Config) bytesPerFrame() int {
	return bitDepthInBytes * c.Channels
}

// ----- Buffers ----- //

// writeBuffer encodes mono as interleaved 16-bit little-endian PCM, the same
// value on every channel. Values outside [-1, 1] are clipped.
func writeBuffer(mono []float32, buf []byte, channels int) {
	const max = 32767
	bytesPerFrame := bitDepthInBytes * channels
	for i, value := range mono {
		b := int16(clip(value) * max)
		for ch := 0; ch < channels; ch++ {
			buf[bytesPerFrame*i+2*ch] = byte(b)
			buf[bytesPerFrame*i+2*ch+1] = byte(b >> 8)
		}
	}
}

// spread copies mono into interleaved float output.
func spread(mono []float32, out []float32, channels int) {
	for i, value := range mono {
		for ch := 0; ch < channels; ch++ {
			out[i*channels+ch] = value
		}
	}
}

func clip(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// monoScratch returns a slice of n samples backed by *buf, growing it only when
// the device asks for a larger buffer than before.
func monoScratch(buf *[]float32, n int) []float32 {
	if cap(*buf) < n {
		*buf = make([]float32, n)
	}
	return (*buf)[:n]
}
