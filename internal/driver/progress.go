package driver

import "time"

// Status is the per-file state reported during TokenizeDir.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusLexing indicates the file is being tokenized.
	StatusLexing Status = "lexing"
	// StatusDone indicates the file was lexed without errors.
	StatusDone Status = "done"
	// StatusError indicates a load failure or lexical errors.
	StatusError Status = "error"
)

// Event reports progress for a single file.
type Event struct {
	File    string
	Status  Status
	Tokens  int
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
