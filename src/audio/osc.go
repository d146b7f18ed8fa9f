package audio

import "math"

// ----- OSC ----- //

// Oscillator is one periodic generator. It is owned by a Bank and must only be
// touched from the render goroutine.
type Oscillator struct {
	frequency float64
	amplitude float64
	waveform  Waveform
	speed     float64
	phase     float64
}

func NewOscillator(p Params) *Oscillator {
	o := &Oscillator{}
	o.Set(p)
	return o
}

// Set replaces the whole configuration, phase included.
func (o *Oscillator) Set(p Params) {
	o.frequency = p.Frequency
	o.amplitude = p.Amplitude
	o.waveform = p.Waveform
	o.speed = p.Speed
	o.phase = p.Phase
}

func (o *Oscillator) Params() Params {
	return Params{
		Frequency: o.frequency,
		Amplitude: o.amplitude,
		Waveform:  o.waveform,
		Speed:     o.speed,
		Phase:     o.phase,
	}
}

// NextSample advances the phase by one sample period and evaluates the waveform
// at the new phase.
func (o *Oscillator) NextSample(sampleRate float64) float64 {
	o.phase = fract(o.phase + phaseIncrement(o.frequency, o.speed, sampleRate))
	return evaluate(o.waveform, o.amplitude, o.frequency, o.phase)
}

// phaseIncrement keeps the 2π factor even though the phase is normalized, so
// one cycle of the stored phase is 1/(2π) of a frequency period.
func phaseIncrement(frequency, speed, sampleRate float64) float64 {
	period := 1.0 / (frequency * speed)
	return 1.0 / sampleRate * (2.0 * math.Pi / period)
}

func evaluate(w Waveform, amplitude, frequency, phase float64) float64 {
	switch w {
	case WaveSine:
		return amplitude * math.Sin(2.0*math.Pi*phase)
	case WaveSquare:
		// zero is negative
		if math.Sin(2.0*math.Pi*phase) > 0 {
			return amplitude
		}
		return -amplitude
	case WaveSaw:
		return (2.0 * amplitude / math.Pi) * math.Asin(math.Sin(frequency*math.Pi*phase))
	}
	return 0
}

// fract wraps x into [0, 1) regardless of sign.
func fract(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		return 0
	}
	return x
}

// Sample is the stateless form of NextSample: a fresh oscillator built from the
// arguments, advanced once. waveform uses the codes of WaveformFromCode.
func Sample(sampleRate, frequency, amplitude float32, waveform uint32, speed, phase float32) float32 {
	o := NewOscillator(Params{
		Frequency: float64(frequency),
		Amplitude: float64(amplitude),
		Waveform:  WaveformFromCode(waveform),
		Speed:     float64(speed),
		Phase:     float64(phase),
	})
	return float32(o.NextSample(float64(sampleRate)))
}
