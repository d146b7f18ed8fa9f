package audio

import (
	"bufio"
	"context"
	"io"
	"log"
	"strings"
)

// ReadUpdates reads control lines from r and sends each parsed Update to q.
// Malformed lines are logged and dropped. A failed send is logged and does not
// stop the loop. It returns nil at EOF or when ctx is done.
func ReadUpdates(ctx context.Context, r io.Reader, q *Queue) error {
	reader := bufio.NewReader(r)
	var line []byte
loop:
	for {
		select {
		case <-ctx.Done():
			log.Println("ReadUpdates() interrupted")
			break loop
		default:
		}
		next, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			break loop
		}
		if err != nil {
			if ctx.Err() != nil {
				break loop
			}
			return err
		}
		line = append(line, next...)
		if isPrefix {
			continue
		}
		text := string(line)
		line = line[:0]
		if strings.TrimSpace(text) == "" {
			continue
		}
		u, err := ParseUpdate(text)
		if err != nil {
			log.Printf("discarded %q: %v\n", text, err)
			continue
		}
		if err := q.Send(u); err != nil {
			log.Printf("failed to deliver %q: %v\n", text, err)
			continue
		}
		log.Printf("received: %s\n", text)
	}
	log.Println("ReadUpdates() ended.")
	return nil
}
