package audio

import (
	"context"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// ----- Script ----- //

// RunScript executes a Lua control script. The script sees:
//
//	set(index, frequency, amplitude, waveform [, speed [, phase]]) -> ok [, err]
//	sleep(ms)
//	sample_rate
//
// set enqueues a full-replacement Update; speed defaults to 1 and phase to 0.
// A failed send makes set return false and the error text instead of raising.
func RunScript(ctx context.Context, path string, sampleRate float64, q *Queue) error {
	L := newScriptState(ctx, sampleRate, q)
	defer L.Close()
	return L.DoFile(path)
}

// RunScriptString is RunScript for inline source.
func RunScriptString(ctx context.Context, source string, sampleRate float64, q *Queue) error {
	L := newScriptState(ctx, sampleRate, q)
	defer L.Close()
	return L.DoString(source)
}

func newScriptState(ctx context.Context, sampleRate float64, q *Queue) *lua.LState {
	L := lua.NewState()
	L.SetContext(ctx)
	L.SetGlobal("sample_rate", lua.LNumber(sampleRate))
	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		index := L.CheckInt(1)
		if index < 0 {
			L.ArgError(1, "index must not be negative")
			return 0
		}
		waveform, err := ParseWaveform(L.CheckString(4))
		if err != nil {
			L.ArgError(4, err.Error())
			return 0
		}
		u := Update{
			Index: index,
			Params: Params{
				Frequency: float64(L.CheckNumber(2)),
				Amplitude: float64(L.CheckNumber(3)),
				Waveform:  waveform,
				Speed:     float64(L.OptNumber(5, 1)),
				Phase:     float64(L.OptNumber(6, 0)),
			},
		}
		if err := q.Send(u); err != nil {
			L.Push(lua.LFalse)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		L.Push(lua.LTrue)
		return 1
	}))
	L.SetGlobal("sleep", L.NewFunction(func(L *lua.LState) int {
		ms := float64(L.CheckNumber(1))
		t := time.NewTimer(time.Duration(ms * float64(time.Millisecond)))
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			L.RaiseError("%v", ctx.Err())
		}
		return 0
	}))
	return L
}
