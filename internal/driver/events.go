package driver

// Status captures progress state for one input line of a batch.
type Status string

const (
	// StatusQueued indicates the line is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the line is being parsed.
	StatusWorking Status = "working"
	// StatusDone indicates the parse finished and ok was true.
	StatusDone Status = "done"
	// StatusError indicates the parse finished with error issues.
	StatusError Status = "error"
)

// Event reports batch progress for one input line. Label is the display
// name of the line (its rendered argv), Line its 0-based index.
type Event struct {
	Line   int
	Label  string
	Status Status
	Issues int
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel, for UI consumers.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
