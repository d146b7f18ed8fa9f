package audio

import (
	"context"
	"strings"
	"testing"
)

func TestReadUpdatesDropsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"0 440 0.5 sine 1 0",
		"not a command",
		"1 550 0.5 triangle 1 0",
		"",
		"1 550 0.5 square 1 0",
		"2 660 x saw 1 0",
		"7 660 0.25 saw 2 0.5",
	}, "\n")
	q := NewQueue()
	expectNoError(t, ReadUpdates(context.Background(), strings.NewReader(input), q))

	want := []int{0, 1, 7}
	for _, index := range want {
		u, ok := q.TryRecv()
		if !ok {
			t.Fatalf("expected update for index %d", index)
		}
		if u.Index != index {
			t.Errorf("expected index %d, but got: %d", index, u.Index)
		}
	}
	if u, ok := q.TryRecv(); ok {
		t.Errorf("unexpected update: %+v", u)
	}
}

func TestReadUpdatesLongLine(t *testing.T) {
	line := "3 440 0.5 sine 1 " + strings.Repeat("0", 8192)
	q := NewQueue()
	expectNoError(t, ReadUpdates(context.Background(), strings.NewReader(line+"\n"), q))
	u, ok := q.TryRecv()
	if !ok || u.Index != 3 {
		t.Errorf("expected index 3, but got: %+v (ok=%v)", u, ok)
	}
}

func TestReadUpdatesContinuesAfterQueueClosed(t *testing.T) {
	q := NewQueue()
	q.Close()
	err := ReadUpdates(context.Background(), strings.NewReader("0 440 0.5 sine 1 0\n1 440 0.5 sine 1 0\n"), q)
	expectNoError(t, err)
}

func TestReadUpdatesStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q := NewQueue()
	expectNoError(t, ReadUpdates(ctx, strings.NewReader("0 440 0.5 sine 1 0\n"), q))
	if _, ok := q.TryRecv(); ok {
		t.Errorf("cancelled reader should not send")
	}
}
