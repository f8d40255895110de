package serverdownload

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewHandlersRegistrar mounts the index page and the static passthrough
// rooted at the served directory. Path traversal is rejected by echo's
// static handler; an absent file yields 404.
func NewHandlersRegistrar(h Handlers, dir string) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		e.GET("/", h.GetIndex)
		e.GET("/*", echo.StaticDirectoryHandler(os.DirFS(dir), false), h.countDownload)
	}
}

// countDownload bumps the per-archive counter after a successful
// static response for a configured archive name.
func (h Handlers) countDownload(next echo.HandlerFunc) echo.HandlerFunc {
	return func(eCtx echo.Context) error {
		if err := next(eCtx); err != nil {
			return err
		}

		if eCtx.Response().Status != http.StatusOK {
			return nil
		}

		name := strings.TrimPrefix(eCtx.Request().URL.Path, "/")
		a, err := h.archives.Describe(eCtx.Request().Context(), name)
		if err != nil || !a.Exists {
			return nil
		}

		h.stats.Download(a.Name, a.Size)
		h.logger.Debug("archive downloaded",
			zap.String("name", a.Name),
			zap.Int64("size", a.Size),
		)
		return nil
	}
}
