package main

import (
	"fmt"

	"go.uber.org/zap"

	archivesrepo "github.com/zestagio/download-service/internal/repositories/archives"
	"github.com/zestagio/download-service/internal/server"
	serverdownload "github.com/zestagio/download-service/internal/server-download"
	"github.com/zestagio/download-service/internal/stats"
)

const nameServerDownload = "server-download"

func initServerDownload(
	addr string,
	pageTitle string,

	archivesRepo *archivesrepo.Repo,
	recorder *stats.Recorder,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerDownload)

	handlers, err := serverdownload.NewHandlers(serverdownload.NewOptions(
		lg,
		pageTitle,
		archivesRepo,
		recorder,
	))
	if err != nil {
		return nil, fmt.Errorf("create handlers: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		serverdownload.NewHandlersRegistrar(handlers, archivesRepo.Dir()),
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
