package stream

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
)

// recordingWriter counts data frames as they are written and calls onFrame after each one.
type recordingWriter struct {
	*httptest.ResponseRecorder
	frames  int
	onFrame func(n int)
}

func newRecordingWriter(onFrame func(n int)) *recordingWriter {
	return &recordingWriter{ResponseRecorder: httptest.NewRecorder(), onFrame: onFrame}
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseRecorder.Write(b)
	if bytes.Contains(b, []byte("data: ")) {
		w.frames++
		if w.onFrame != nil {
			w.onFrame(w.frames)
		}
	}
	return n, err
}

// plainWriter is a ResponseWriter that cannot flush.
type plainWriter struct {
	header http.Header
	code   int
	body   bytes.Buffer
}

func (w *plainWriter) Header() http.Header         { return w.header }
func (w *plainWriter) Write(b []byte) (int, error) { return w.body.Write(b) }
func (w *plainWriter) WriteHeader(code int)        { w.code = code }

type parsedFrame struct {
	event   string
	data    string
	comment bool
}

// parseFrames splits an event-stream body into frames.
func parseFrames(body string) []parsedFrame {
	var frames []parsedFrame
	for _, block := range strings.Split(body, "\n\n") {
		if block == "" {
			continue
		}
		var f parsedFrame
		var data []string
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, ":"):
				f.comment = true
			case strings.HasPrefix(line, "event: "):
				f.event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = append(data, strings.TrimPrefix(line, "data: "))
			}
		}
		f.data = strings.Join(data, "\n")
		frames = append(frames, f)
	}
	return frames
}

// dataFrames filters out comment frames.
func dataFrames(frames []parsedFrame) []parsedFrame {
	var out []parsedFrame
	for _, f := range frames {
		if !f.comment {
			out = append(out, f)
		}
	}
	return out
}
