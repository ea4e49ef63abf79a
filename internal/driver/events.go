package driver

// Stage is a pipeline phase as shown to the user.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLoad
	StageExpand
	StagePrint
)

// Status is the state of one file within a stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
	StatusCached
)

// Event is one progress update from the pipeline. An empty File updates
// the run-wide stage label instead of a per-file row.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// ProgressSink consumes progress events. Implementations must be safe
// for concurrent use: ExpandDir emits from several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- ev
}
