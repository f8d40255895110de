package server_test

import (
	"context"
	"net"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/zestagio/download-service/internal/server"
)

func pingRegistrar(e *echo.Echo) {
	e.GET("/ping", func(eCtx echo.Context) error {
		return eCtx.String(http.StatusOK, "pong")
	})
}

func TestNew_Validation(t *testing.T) {
	_, err := server.New(server.NewOptions(nil, ":0", pingRegistrar))
	require.Error(t, err)

	_, err = server.New(server.NewOptions(zap.NewNop(), "no-port", pingRegistrar))
	require.Error(t, err)

	_, err = server.New(server.NewOptions(zap.NewNop(), ":0", nil))
	require.Error(t, err)
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr := freeAddr(t)

	srv, err := server.New(server.NewOptions(zap.NewNop(), addr, pingRegistrar))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	tr := &http.Transport{DisableKeepAlives: true}
	defer tr.CloseIdleConnections()
	client := &http.Client{Transport: tr, Timeout: time.Second}

	waitForPing(t, client, "http://"+addr+"/ping")

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

func TestServer_Run_PortAlreadyInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { require.NoError(t, l.Close()) }()

	srv, err := server.New(server.NewOptions(zap.NewNop(), l.Addr().String(), pingRegistrar))
	require.NoError(t, err)

	err = srv.Run(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, syscall.EADDRINUSE)
}

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func waitForPing(t *testing.T, client *http.Client, url string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(url) //nolint:noctx // test helper with client timeout
		if err == nil {
			require.NoError(t, resp.Body.Close())
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("server at %s did not become ready", url)
}
