package audio

import (
	"fmt"
	"strconv"
	"strings"
)

// ----- Params ----- //

// Params is the full configuration of one oscillator.
type Params struct {
	Frequency float64 // Hz
	Amplitude float64 // linear gain
	Waveform  Waveform
	Speed     float64 // multiplier on the phase advance only
	Phase     float64 // [0, 1)
}

// Update replaces the oscillator at Index with Params. An Index past the end of
// the bank appends instead.
type Update struct {
	Index int
	Params
}

// ParseUpdate parses one control line:
//
//	<index> <frequency> <amplitude> <sine|square|saw> <speed> <phase>
func ParseUpdate(line string) (Update, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return Update{}, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}
	index, err := strconv.ParseUint(fields[0], 10, 0)
	if err != nil {
		return Update{}, fmt.Errorf("%w index: %v", ErrInvalidField, err)
	}
	frequency, err := parseFloat32("frequency", fields[1])
	if err != nil {
		return Update{}, err
	}
	amplitude, err := parseFloat32("amplitude", fields[2])
	if err != nil {
		return Update{}, err
	}
	waveform, err := ParseWaveform(fields[3])
	if err != nil {
		return Update{}, err
	}
	speed, err := parseFloat32("speed", fields[4])
	if err != nil {
		return Update{}, err
	}
	phase, err := parseFloat32("phase", fields[5])
	if err != nil {
		return Update{}, err
	}
	return Update{
		Index: int(index),
		Params: Params{
			Frequency: frequency,
			Amplitude: amplitude,
			Waveform:  waveform,
			Speed:     speed,
			Phase:     phase,
		},
	}, nil
}

func parseFloat32(name string, s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %v", ErrInvalidField, name, err)
	}
	return value, nil
}

func (u Update) String() string {
	return strings.Join([]string{
		strconv.Itoa(u.Index),
		strconv.FormatFloat(u.Frequency, 'g', -1, 32),
		strconv.FormatFloat(u.Amplitude, 'g', -1, 32),
		u.Waveform.String(),
		strconv.FormatFloat(u.Speed, 'g', -1, 32),
		strconv.FormatFloat(u.Phase, 'g', -1, 32),
	}, " ")
}
