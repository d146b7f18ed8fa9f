package audio

// ----- Bank ----- //

// Bank is the ordered set of live oscillators. Position is the address used by
// Update.Index. Oscillators are only ever replaced or appended.
type Bank struct {
	oscs []*Oscillator
}

func NewBank(initial ...Params) *Bank {
	b := &Bank{oscs: make([]*Oscillator, 0, len(initial))}
	for _, p := range initial {
		b.oscs = append(b.oscs, NewOscillator(p))
	}
	return b
}

func (b *Bank) Len() int {
	return len(b.oscs)
}

// At returns a snapshot of the oscillator at index i.
func (b *Bank) At(i int) (Params, bool) {
	if i < 0 || i >= len(b.oscs) {
		return Params{}, false
	}
	return b.oscs[i].Params(), true
}

// Apply replaces the oscillator at u.Index, or appends a new one when the index
// is out of range. An appended oscillator lands at Len()-1 whatever index was
// requested; no gap is created.
func (b *Bank) Apply(u Update) (appended bool) {
	if u.Index >= 0 && u.Index < len(b.oscs) {
		b.oscs[u.Index].Set(u.Params)
		return false
	}
	b.oscs = append(b.oscs, NewOscillator(u.Params))
	return true
}

// Next advances every oscillator by one sample and returns the sum, in bank order.
func (b *Bank) Next(sampleRate float64) float64 {
	sum := 0.0
	for _, o := range b.oscs {
		sum += o.NextSample(sampleRate)
	}
	return sum
}

// DefaultOscillators is the seed used by the live-control player.
func DefaultOscillators() []Params {
	return []Params{
		{Frequency: 20, Amplitude: 0.01, Waveform: WaveSquare, Speed: 1, Phase: 0},
		{Frequency: 5, Amplitude: 0.02, Waveform: WaveSaw, Speed: 1, Phase: 0},
		{Frequency: 40, Amplitude: 0.01, Waveform: WaveSine, Speed: 1, Phase: 0},
	}
}

// DemoOscillators is an A major triad, one oscillator per waveform.
func DemoOscillators() []Params {
	return []Params{
		{Frequency: 440, Amplitude: 0.1, Waveform: WaveSine, Speed: 1, Phase: 0},
		{Frequency: 550, Amplitude: 0.1, Waveform: WaveSquare, Speed: 1, Phase: 0},
		{Frequency: 660, Amplitude: 0.1, Waveform: WaveSaw, Speed: 1, Phase: 0},
	}
}
