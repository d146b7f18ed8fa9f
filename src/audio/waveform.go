package audio

import "fmt"

// ----- Waveform ----- //

// Waveform is the closed set of shapes an Oscillator can evaluate.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
)

// ParseWaveform accepts the control protocol tokens "sine", "square" and "saw".
// Matching is case-sensitive.
func ParseWaveform(s string) (Waveform, error) {
	switch s {
	case "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "saw":
		return WaveSaw, nil
	}
	return WaveSine, fmt.Errorf("%w: %q", ErrUnknownWaveform, s)
}

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

// WaveformFromCode maps the numeric codes used by Sample: 0 sine, 1 square,
// 2 saw. Any other code is a sine.
func WaveformFromCode(code uint32) Waveform {
	switch code {
	case 1:
		return WaveSquare
	case 2:
		return WaveSaw
	}
	return WaveSine
}

// Code is the inverse of WaveformFromCode.
func (w Waveform) Code() uint32 {
	switch w {
	case WaveSquare:
		return 1
	case WaveSaw:
		return 2
	}
	return 0
}
