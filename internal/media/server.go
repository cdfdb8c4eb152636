// Package media streams stored image bytes over HTTP.
package media

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"qualifygym/internal/common"
)

// Content describes a byte stream ready to be written to a response.
type Content struct {
	Reader   io.Reader
	Filename string
	MimeType string
	Size     int64
}

// ServeContent writes the bytes with the stored Content-Type and
// Content-Length. An empty MimeType is derived from the filename.
func ServeContent(w http.ResponseWriter, r *http.Request, c Content) {
	contentType := c.MimeType
	if contentType == "" {
		contentType = common.DetectImageMimeType("", c.Filename).String()
	}

	w.Header().Set("Content-Type", contentType)
	if c.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(c.Size, 10))
	}
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, c.Reader); err != nil {
		slog.ErrorContext(r.Context(), "error streaming file",
			"filename", c.Filename,
			"error", err,
		)
	}
}
