package serverdownload_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	archivesrepo "github.com/zestagio/download-service/internal/repositories/archives"
	"github.com/zestagio/download-service/internal/server"
	serverdownload "github.com/zestagio/download-service/internal/server-download"
	"github.com/zestagio/download-service/internal/stats"
)

const mib = 1024 * 1024

var testFiles = []archivesrepo.ArchiveFile{
	{Name: "a.zip", Title: "Build A", Note: "recommended"},
	{Name: "b.zip", Title: "Build B"},
}

type env struct {
	dir      string
	recorder *stats.Recorder
	srv      *httptest.Server
}

func newEnv(t *testing.T) env {
	t.Helper()

	dir := t.TempDir()

	repo, err := archivesrepo.New(archivesrepo.NewOptions(dir, testFiles))
	require.NoError(t, err)

	recorder := stats.NewRecorder([]string{"a.zip", "b.zip"})

	handlers, err := serverdownload.NewHandlers(serverdownload.NewOptions(
		zap.NewNop(),
		"Nightly Builds",
		repo,
		recorder,
	))
	require.NoError(t, err)

	srv, err := server.New(server.NewOptions(
		zap.NewNop(),
		":8080",
		serverdownload.NewHandlersRegistrar(handlers, dir),
	))
	require.NoError(t, err)

	testSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(testSrv.Close)

	return env{dir: dir, recorder: recorder, srv: testSrv}
}

func (e env) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(e.srv.URL + path) //nolint:noctx // test helper
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func (e env) writeArchive(t *testing.T, name string, size int) []byte {
	t.Helper()

	payload := make([]byte, size)
	for i := range payload {
		payload[i] = byte(i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(e.dir, name), payload, 0o600))
	return payload
}

func assertDownloadHeaders(t *testing.T, resp *http.Response) {
	t.Helper()

	assert.Equal(t, "*", resp.Header.Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "GET, OPTIONS", resp.Header.Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
}

func TestGetIndex(t *testing.T) {
	e := newEnv(t)
	e.writeArchive(t, "a.zip", mib) // b.zip stays absent.

	resp, body := e.get(t, "/")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertDownloadHeaders(t, resp)
	assert.True(t, strings.HasPrefix(resp.Header.Get(echo.HeaderContentType), echo.MIMETextHTML))

	page := string(body)
	assert.Contains(t, page, "Nightly Builds")
	assert.Contains(t, page, `href="a.zip"`)
	assert.Contains(t, page, "Size: 1.0 MB")
	assert.Contains(t, page, `href="b.zip"`)
	assert.Contains(t, page, "Size: 0.0 MB")
	assert.Contains(t, page, "recommended")

	assert.Equal(t, strconv.Itoa(len(body)), resp.Header.Get(echo.HeaderContentLength))
}

func TestGetIndex_Idempotence(t *testing.T) {
	e := newEnv(t)
	e.writeArchive(t, "a.zip", 123456)

	_, first := e.get(t, "/")
	_, second := e.get(t, "/")
	assert.Equal(t, first, second)
}

func TestGetIndex_ReflectsCurrentSizes(t *testing.T) {
	e := newEnv(t)

	e.writeArchive(t, "a.zip", mib)
	_, body := e.get(t, "/")
	assert.Contains(t, string(body), "Size: 1.0 MB")

	e.writeArchive(t, "a.zip", mib/2)
	_, body = e.get(t, "/")
	assert.Contains(t, string(body), "Size: 0.5 MB")
}

func TestGetIndex_CountsRenders(t *testing.T) {
	e := newEnv(t)

	e.get(t, "/")
	e.get(t, "/")

	assert.EqualValues(t, 2, e.recorder.Snapshot().IndexRenders)
}
