package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/download-service/internal/config"
	"github.com/zestagio/download-service/internal/logger"
	archivesrepo "github.com/zestagio/download-service/internal/repositories/archives"
	serverdebug "github.com/zestagio/download-service/internal/server-debug"
	"github.com/zestagio/download-service/internal/stats"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	if err := run(); err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			log.Fatalf("run app: %v\nthe port is already in use, close the other application or change the addr in config", err)
		}
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	servedDir, err := resolveServedDir(cfg.Archives.Dir)
	if err != nil {
		return fmt.Errorf("resolve served dir: %v", err)
	}

	// Repositories.
	archivesRepo, err := archivesrepo.New(archivesrepo.NewOptions(servedDir, archiveFiles(cfg)))
	if err != nil {
		return fmt.Errorf("create archives repo: %v", err)
	}

	recorder := stats.NewRecorder(archiveNames(cfg))

	// Servers.
	srvDownload, err := initServerDownload(
		cfg.Servers.Download.Addr,
		cfg.Archives.Title,
		archivesRepo,
		recorder,
	)
	if err != nil {
		return fmt.Errorf("init download server: %v", err)
	}

	srvDebug, err := serverdebug.New(serverdebug.NewOptions(
		cfg.Servers.Debug.Addr,
		recorder,
	))
	if err != nil {
		return fmt.Errorf("init debug server: %v", err)
	}

	lg.Info("serving archives",
		zap.String("dir", servedDir),
		zap.String("url", reachableURL(cfg.Servers.Download.Addr)),
	)

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvDownload.Run(ctx) })
	eg.Go(func() error { return srvDebug.Run(ctx) })

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %w", err)
	}

	lg.Info("server stopped")
	return nil
}

// resolveServedDir defaults to the directory of the executable,
// like the distribution script this service replaces.
func resolveServedDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %v", err)
	}
	return filepath.Dir(exe), nil
}

func reachableURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}

func archiveFiles(cfg config.Config) []archivesrepo.ArchiveFile {
	files := make([]archivesrepo.ArchiveFile, 0, len(cfg.Archives.Files))
	for _, f := range cfg.Archives.Files {
		files = append(files, archivesrepo.ArchiveFile{
			Name:  f.Name,
			Title: f.Title,
			Note:  f.Note,
		})
	}
	return files
}

func archiveNames(cfg config.Config) []string {
	names := make([]string, 0, len(cfg.Archives.Files))
	for _, f := range cfg.Archives.Files {
		names = append(names, f.Name)
	}
	return names
}
