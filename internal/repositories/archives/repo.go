package archivesrepo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
)

// ArchiveFile is a fixed entry of the served archive set.
type ArchiveFile struct {
	Name  string
	Title string
	Note  string
}

//go:generate options-gen -out-filename=repo_options.gen.go -from-struct=Options
type Options struct {
	dir   string        `option:"mandatory" validate:"required"`
	files []ArchiveFile `option:"mandatory" validate:"min=1"`
}

type Repo struct {
	Options
}

func New(opts Options) (*Repo, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	fi, err := os.Stat(opts.dir)
	if err != nil {
		return nil, fmt.Errorf("stat served dir: %v", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("served dir %q is not a directory", opts.dir)
	}

	if err := validateFiles(opts.files); err != nil {
		return nil, fmt.Errorf("validate archive files: %v", err)
	}

	return &Repo{Options: opts}, nil
}

func validateFiles(files []ArchiveFile) error {
	var errs error

	known := make(map[string]struct{}, len(files))
	for _, f := range files {
		switch name := f.Name; {
		case name == "":
			errs = multierr.Append(errs, errors.New("empty archive name"))
		case strings.ContainsAny(name, `/\`) || strings.Contains(name, ".."):
			errs = multierr.Append(errs, fmt.Errorf("archive name %q must be a plain file name", name))
		default:
			if _, ok := known[name]; ok {
				errs = multierr.Append(errs, fmt.Errorf("duplicated archive name %q", name))
			}
			known[name] = struct{}{}
		}
	}

	return errs
}

// Dir returns the served directory.
func (r *Repo) Dir() string {
	return r.dir
}
