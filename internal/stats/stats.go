package stats

import (
	"go.uber.org/atomic"
)

// Recorder counts index renders and archive downloads since process start.
// The archive set is fixed at construction, so reads and writes are lock-free.
type Recorder struct {
	indexRenders atomic.Int64
	archives     map[string]*archiveCounters
}

type archiveCounters struct {
	downloads atomic.Int64
	bytes     atomic.Int64
}

func NewRecorder(archiveNames []string) *Recorder {
	archives := make(map[string]*archiveCounters, len(archiveNames))
	for _, name := range archiveNames {
		archives[name] = new(archiveCounters)
	}
	return &Recorder{archives: archives}
}

func (r *Recorder) IndexRendered() {
	r.indexRenders.Inc()
}

// Download records a served archive. Size is the archive size at hit time.
// Unknown names are ignored.
func (r *Recorder) Download(name string, size int64) {
	c, ok := r.archives[name]
	if !ok {
		return
	}
	c.downloads.Inc()
	c.bytes.Add(size)
}

type Snapshot struct {
	IndexRenders int64                      `json:"index_renders"`
	Archives     map[string]ArchiveSnapshot `json:"archives"`
}

type ArchiveSnapshot struct {
	Downloads int64 `json:"downloads"`
	Bytes     int64 `json:"bytes"`
}

func (r *Recorder) Snapshot() Snapshot {
	s := Snapshot{
		IndexRenders: r.indexRenders.Load(),
		Archives:     make(map[string]ArchiveSnapshot, len(r.archives)),
	}
	for name, c := range r.archives {
		s.Archives[name] = ArchiveSnapshot{
			Downloads: c.downloads.Load(),
			Bytes:     c.bytes.Load(),
		}
	}
	return s
}
