package driver

// FileStatus is the per-file state reported to a ProgressSink.
type FileStatus uint8

const (
	FileQueued FileStatus = iota
	FileLexing
	FileDone
	// FileFailed means the file could not be loaded or produced errors.
	FileFailed
)

func (s FileStatus) String() string {
	switch s {
	case FileQueued:
		return "queued"
	case FileLexing:
		return "lexing"
	case FileDone:
		return "done"
	case FileFailed:
		return "error"
	default:
		return ""
	}
}

// FileEvent reports progress of one file in directory mode.
type FileEvent struct {
	Path   string
	Status FileStatus
	Tokens int
	Errors int
}

// ProgressSink receives FileEvents from worker goroutines; implementations
// must be safe for concurrent use.
type ProgressSink interface {
	OnFile(FileEvent)
}

// ChannelSink forwards events into a channel. The caller owns the channel
// and closes it once TokenizeDir has returned.
type ChannelSink struct {
	Ch chan<- FileEvent
}

func (s ChannelSink) OnFile(ev FileEvent) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

func (o Options) progress(ev FileEvent) {
	if o.Progress != nil {
		o.Progress.OnFile(ev)
	}
}
