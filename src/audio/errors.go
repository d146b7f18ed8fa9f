package audio

import "errors"

var (
	// ErrQueueClosed is returned by Queue.Send once the renderer has stopped.
	ErrQueueClosed     = errors.New("update queue closed")
	ErrFieldCount      = errors.New("expected 6 fields: index frequency amplitude waveform speed phase")
	ErrInvalidField    = errors.New("invalid field")
	ErrUnknownWaveform = errors.New("unknown waveform")
	ErrInvalidConfig   = errors.New("invalid audio config")
)
