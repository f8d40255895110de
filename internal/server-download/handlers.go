package serverdownload

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	archivesrepo "github.com/zestagio/download-service/internal/repositories/archives"
)

type archivesRepository interface {
	List(ctx context.Context) []archivesrepo.Archive
	Describe(ctx context.Context, name string) (archivesrepo.Archive, error)
}

type downloadsRecorder interface {
	IndexRendered()
	Download(name string, size int64)
}

//go:generate options-gen -out-filename=handlers_options.gen.go -from-struct=Options
type Options struct {
	logger    *zap.Logger        `option:"mandatory" validate:"required"`
	pageTitle string             `option:"mandatory" validate:"required"`
	archives  archivesRepository `option:"mandatory" validate:"required"`
	stats     downloadsRecorder  `option:"mandatory" validate:"required"`
}

type Handlers struct {
	Options
}

func NewHandlers(opts Options) (Handlers, error) {
	if err := opts.Validate(); err != nil {
		return Handlers{}, fmt.Errorf("validate options: %v", err)
	}
	return Handlers{Options: opts}, nil
}
