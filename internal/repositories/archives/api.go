package archivesrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

var ErrUnknownArchive = errors.New("unknown archive")

const bytesPerMiB = 1 << 20

// Archive is a descriptor of a single served archive,
// recomputed from the filesystem on every call.
type Archive struct {
	Name   string
	Title  string
	Note   string
	Exists bool
	Size   int64
}

func (a Archive) SizeMiB() float64 {
	return float64(a.Size) / bytesPerMiB
}

// List describes all configured archives in config order.
// An absent file yields Exists=false and Size=0, never an error.
func (r *Repo) List(ctx context.Context) []Archive {
	result := make([]Archive, 0, len(r.files))
	for _, f := range r.files {
		result = append(result, r.describe(f))
	}
	return result
}

// Describe returns the descriptor of a single configured archive.
// It fails only for names outside the configured set.
func (r *Repo) Describe(ctx context.Context, name string) (Archive, error) {
	for _, f := range r.files {
		if f.Name == name {
			return r.describe(f), nil
		}
	}
	return Archive{}, ErrUnknownArchive
}

func (r *Repo) describe(f ArchiveFile) Archive {
	a := Archive{
		Name:  f.Name,
		Title: f.Title,
		Note:  f.Note,
	}

	fi, err := os.Stat(filepath.Join(r.dir, f.Name))
	if err != nil || fi.IsDir() {
		return a
	}

	a.Exists = true
	a.Size = fi.Size()
	return a
}
