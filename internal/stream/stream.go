package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrStreamingUnsupported is returned when the response writer cannot flush.
var ErrStreamingUnsupported = errors.New("streaming unsupported")

// Stream is an open event-stream response.
type Stream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	sent    int
}

// Open writes the event-stream headers and flushes them so the client sees the connection open.
func Open(w http.ResponseWriter) (*Stream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	headers := w.Header()
	headers.Set("Content-Type", "text/event-stream")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")

	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Stream{w: w, flusher: flusher}, nil
}

// Send writes one frame and flushes it.
func (s *Stream) Send(f Frame) error {
	if err := s.write(f.Bytes()); err != nil {
		return err
	}
	s.sent++
	return nil
}

// SendJSON marshals v and sends it as the payload of a frame with the given event type.
func (s *Stream) SendJSON(event string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode frame payload: %w", err)
	}
	return s.Send(Frame{Event: event, Data: data})
}

// Comment writes a comment frame and flushes it.
func (s *Stream) Comment(text string) error {
	return s.write(comment(text))
}

// Sent returns the number of frames written, not counting comments.
func (s *Stream) Sent() int {
	return s.sent
}

func (s *Stream) write(b []byte) error {
	if _, err := s.w.Write(b); err != nil {
		return fmt.Errorf("failed to write to stream: %w", err)
	}
	s.flusher.Flush()
	return nil
}
