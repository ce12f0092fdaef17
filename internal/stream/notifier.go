package stream

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Notification is one scheduled frame, sent After the stream opens.
type Notification struct {
	After   time.Duration
	Type    string
	Message string
}

// DefaultSchedule returns the three notifications sent on every stream.
func DefaultSchedule() []Notification {
	return []Notification{
		{After: 3 * time.Second, Type: "info", Message: "Nueva actualización disponible"},
		{After: 6 * time.Second, Type: "warning", Message: "Tu sesión expirará pronto"},
		{After: 9 * time.Second, Type: "success", Message: "Proceso completado con éxito"},
	}
}

// NotificationPayload is the JSON body of a notification frame.
type NotificationPayload struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Notifier is an http.Handler that sends a fixed schedule of named frames and then ends the stream.
type Notifier struct {
	schedule []Notification
	tracker  *Tracker
	logger   zerolog.Logger

	now func() time.Time
}

// NewNotifier creates a notifier. Offsets in schedule must be non-decreasing.
func NewNotifier(schedule []Notification, tracker *Tracker, logger zerolog.Logger) *Notifier {
	return &Notifier{
		schedule: schedule,
		tracker:  tracker,
		logger:   logger.With().Str("stream", "notification").Logger(),
		now:      time.Now,
	}
}

// ServeHTTP implements the http.Handler interface.
func (n *Notifier) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := Open(w)
	if err != nil {
		n.logger.Error().Err(err).Msg("cannot open event stream")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	release := n.tracker.Open("notification")
	defer release()

	n.logger.Info().Str("remote_addr", r.RemoteAddr).Msg("client connected")

	start := time.Now()
	for _, note := range n.schedule {
		timer := time.NewTimer(note.After - time.Since(start))

		select {
		case <-timer.C:
		case <-r.Context().Done():
			timer.Stop()
		}

		if r.Context().Err() != nil {
			n.logger.Info().
				Str("remote_addr", r.RemoteAddr).
				Int("frames_sent", s.Sent()).
				Msg("client disconnected before schedule completed")
			return
		}

		payload := NotificationPayload{
			Type:      note.Type,
			Message:   note.Message,
			Timestamp: n.now().UTC().Format(timestampFormat),
		}
		if err := s.SendJSON(note.Type, payload); err != nil {
			n.logger.Debug().Err(err).Msg("error writing notification to client, closing")
			return
		}
	}

	n.logger.Info().
		Str("remote_addr", r.RemoteAddr).
		Int("frames_sent", s.Sent()).
		Msg("notification schedule completed")
}
