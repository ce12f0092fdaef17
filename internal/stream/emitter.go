package stream

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// timestampFormat is RFC 3339 in UTC with millisecond precision.
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Tick is the payload of each periodic frame.
type Tick struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Random    int    `json:"random"`
}

// Emitter is an http.Handler that writes one Tick frame per interval until the client goes away.
type Emitter struct {
	interval time.Duration
	message  string
	tracker  *Tracker
	logger   zerolog.Logger

	now    func() time.Time
	random func() int
}

// NewEmitter creates a periodic emitter.
func NewEmitter(interval time.Duration, message string, tracker *Tracker, logger zerolog.Logger) *Emitter {
	return &Emitter{
		interval: interval,
		message:  message,
		tracker:  tracker,
		logger:   logger.With().Str("stream", "events").Logger(),
		now:      time.Now,
		random:   func() int { return rand.Intn(100) },
	}
}

// ServeHTTP implements the http.Handler interface.
func (e *Emitter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := Open(w)
	if err != nil {
		e.logger.Error().Err(err).Msg("cannot open event stream")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	release := e.tracker.Open("events")
	defer release()

	e.logger.Info().Str("remote_addr", r.RemoteAddr).Msg("client connected")

	if err := s.Comment("connected"); err != nil {
		e.logger.Debug().Err(err).Msg("failed to write greeting, closing")
		return
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// select picks randomly when the tick and the disconnect are both ready
			if r.Context().Err() != nil {
				e.logger.Info().
					Str("remote_addr", r.RemoteAddr).
					Int("frames_sent", s.Sent()).
					Msg("client disconnected")
				return
			}
			tick := Tick{
				Timestamp: e.now().UTC().Format(timestampFormat),
				Message:   e.message,
				Random:    e.random(),
			}
			if err := s.SendJSON("", tick); err != nil {
				e.logger.Debug().Err(err).Msg("error writing frame to client, closing")
				return
			}

		case <-r.Context().Done():
			e.logger.Info().
				Str("remote_addr", r.RemoteAddr).
				Int("frames_sent", s.Sent()).
				Msg("client disconnected")
			return
		}
	}
}
