// Package stream implements text/event-stream endpoints.
package stream

import "bytes"

// Frame is a single server-sent event: an optional event type and a payload.
type Frame struct {
	Event string // event type [optional]
	Data  []byte // payload, usually JSON
}

// Bytes returns the wire form of the frame, terminated by a blank line.
// Each line of a multi-line payload gets its own "data:" field.
func (f Frame) Bytes() []byte {
	b := make([]byte, 0, len("event: \n")+len(f.Event)+len("data: \n\n")+len(f.Data))
	if f.Event != "" {
		b = append(b, "event: "...)
		b = append(b, f.Event...)
		b = append(b, '\n')
	}
	for _, line := range bytes.Split(f.Data, []byte("\n")) {
		b = append(b, "data: "...)
		b = append(b, line...)
		b = append(b, '\n')
	}
	b = append(b, '\n')
	return b
}

// comment returns a comment frame. Clients ignore lines starting with a colon.
func comment(text string) []byte {
	b := make([]byte, 0, len(text)+4)
	b = append(b, ": "...)
	b = append(b, text...)
	b = append(b, '\n', '\n')
	return b
}
