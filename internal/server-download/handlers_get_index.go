package serverdownload

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// GetIndex renders the landing page with a download section per configured
// archive. Sizes are stat'ed on every request; an absent archive is listed
// with size 0.0.
func (h Handlers) GetIndex(eCtx echo.Context) error {
	archives := h.archives.List(eCtx.Request().Context())

	data := indexData{
		Title:    h.pageTitle,
		Archives: make([]indexArchive, 0, len(archives)),
	}
	for _, a := range archives {
		data.Archives = append(data.Archives, indexArchive{
			Name:    a.Name,
			Title:   a.Title,
			Note:    a.Note,
			SizeMiB: fmt.Sprintf("%.1f", a.SizeMiB()),
		})
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render index: %v", err)
	}

	h.stats.IndexRendered()

	eCtx.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(buf.Len()))
	return eCtx.HTMLBlob(http.StatusOK, buf.Bytes())
}
