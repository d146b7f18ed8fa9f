package audio

import (
	"context"
	"log"
	"math"

	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/rtmididrv"
)

const baseFreq = 440.0

func noteToFreq(note int) float64 {
	return baseFreq * math.Pow(2, float64(note-69)/12)
}

// ListenToMidiIn forwards raw messages from the first MIDI input port. The
// channel is closed when ctx is done or the port cannot be opened.
func ListenToMidiIn(ctx context.Context) <-chan []byte {
	ch := make(chan []byte, 65536)
	go func() {
		defer close(ch)
		drv, err := rtmididrv.New()
		if err != nil {
			log.Printf("failed to initialize MIDI driver: %v\n", err)
			return
		}
		defer func() {
			err := drv.Close()
			if err != nil {
				log.Printf("failed to close MIDI driver: %v\n", err)
			}
		}()
		ins, err := drv.Ins()
		if err != nil {
			log.Printf("failed to get MIDI IN: %v\n", err)
			return
		}
		log.Printf("MIDI IN: %v\n", ins)

		if len(ins) == 0 {
			log.Println("WARN: MIDI IN not found")
			return
		}
		listen(ctx, ins[0], ch)
	}()
	return ch
}

func listen(ctx context.Context, in midi.In, ch chan<- []byte) {
	if err := in.Open(); err != nil {
		log.Printf("failed to open MIDI IN: %v\n", err)
		return
	}
	log.Println("opened " + in.String())
	defer func() {
		err := in.Close()
		if err != nil {
			log.Printf("failed to close MIDI IN: %v\n", err)
		}
	}()
	log.Println("start listening MIDI IN...")
	if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
		msg := append([]byte(nil), data...)
		select {
		case ch <- msg:
		default:
			log.Println("[WARN] MIDI message dropped")
		}
	}); err != nil {
		log.Println("failed to set listener: " + err.Error())
		return
	}
	defer func() {
		log.Println("stop listening MIDI IN...")
		err := in.StopListening()
		if err != nil {
			log.Printf("failed to stop listening: %v\n", err)
		}
	}()
	<-ctx.Done()
}

// ----- MIDI Mapper ----- //

// MidiMapper turns MIDI channel messages into Updates. MIDI channel n drives
// oscillator n. It keeps the last configuration per channel so that every
// Update it emits is a full replacement.
type MidiMapper struct {
	Gain   float64
	params [16]Params
	notes  [16]int
}

func NewMidiMapper(gain float64) *MidiMapper {
	m := &MidiMapper{Gain: gain}
	for i := range m.params {
		m.params[i] = Params{Frequency: baseFreq, Waveform: WaveSine, Speed: 1}
		m.notes[i] = -1
	}
	return m
}

// Map returns the Update for data, or false when the message does not change
// any oscillator.
func (m *MidiMapper) Map(data []byte) (Update, bool) {
	if len(data) < 2 {
		return Update{}, false
	}
	kind := data[0] >> 4
	ch := int(data[0] & 0x0f)
	p := &m.params[ch]
	switch {
	case kind == 9 && len(data) >= 3 && data[2] > 0:
		m.notes[ch] = int(data[1])
		p.Frequency = noteToFreq(int(data[1]))
		p.Amplitude = float64(data[2]) / 127 * m.Gain
	case kind == 8 && len(data) >= 3, kind == 9 && len(data) >= 3:
		if m.notes[ch] != int(data[1]) {
			return Update{}, false
		}
		m.notes[ch] = -1
		p.Amplitude = 0
	case kind == 0xc:
		p.Waveform = WaveformFromCode(uint32(data[1]))
	case kind == 0xb && len(data) >= 3 && data[1] == 1:
		p.Speed = 1 + float64(data[2])/127
	default:
		return Update{}, false
	}
	p.Phase = 0
	return Update{Index: ch, Params: *p}, true
}

// ForwardMidi maps messages from in and sends them to q until in is closed or
// ctx is done.
func ForwardMidi(ctx context.Context, in <-chan []byte, mapper *MidiMapper, q *Queue) error {
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case data, ok := <-in:
			if !ok {
				break loop
			}
			u, ok := mapper.Map(data)
			if !ok {
				continue
			}
			if err := q.Send(u); err != nil {
				log.Printf("failed to deliver MIDI update: %v\n", err)
			}
		}
	}
	log.Println("ForwardMidi() ended.")
	return nil
}
