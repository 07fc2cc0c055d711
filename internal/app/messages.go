package app

import (
	"time"

	"github.com/ekremtas/lingopyr/internal/events"
	"github.com/ekremtas/lingopyr/internal/store"
)

// sessionReadyMsg carries the freshly created pyramid session.
type sessionReadyMsg struct {
	Rec *store.PyramidRecord
	Err error
}

// stepAppendedMsg carries the session after the next step was generated
// and appended.
type stepAppendedMsg struct {
	Rec *store.PyramidRecord
	Err error
}

// completedMsg carries the closed activity event. Event is nil when the
// session was already completed by another writer.
type completedMsg struct {
	Event *events.Record
	Err   error
}

// timerTickMsg is sent every second to refresh the elapsed display.
type timerTickMsg time.Time
