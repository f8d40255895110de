package middlewares

import (
	"github.com/labstack/echo/v4"
)

const (
	HeaderAccessControlAllowOriginValue  = "*"
	HeaderAccessControlAllowMethodsValue = "GET, OPTIONS"
	HeaderCacheControlValue              = "no-store, no-cache, must-revalidate"
)

// NewDownloadHeaders stamps CORS and cache-control headers on every response,
// including static file downloads and error responses. Headers are set before
// the handler runs, so they survive whatever status it writes.
func NewDownloadHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			h := eCtx.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, HeaderAccessControlAllowOriginValue)
			h.Set(echo.HeaderAccessControlAllowMethods, HeaderAccessControlAllowMethodsValue)
			h.Set("Cache-Control", HeaderCacheControlValue)
			return next(eCtx)
		}
	}
}
