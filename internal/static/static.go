// Package static serves files from the document root.
package static

import (
	"errors"
	"io/fs"
	"os"

	"github.com/muurk/tinyhttpd/internal/httpwire"
	"github.com/muurk/tinyhttpd/internal/logging"
	"github.com/muurk/tinyhttpd/internal/sandbox"
	"go.uber.org/zap"
)

// Handler serves regular files below Root
type Handler struct {
	// Root is the canonical document root
	Root string
}

// NewHandler creates a Handler for a canonical document root
func NewHandler(root string) *Handler {
	return &Handler{Root: root}
}

// Serve builds the response for a static URL path. Directories are never
// listed; anything that is not a regular file is reported as not found.
func (h *Handler) Serve(urlPath string) httpwire.Response {
	resolved, err := sandbox.Resolve(h.Root, sandbox.StaticRelative(urlPath))
	if err != nil {
		logging.Warn("Static path rejected",
			zap.String("path", urlPath),
			zap.Error(err),
		)
		if errors.Is(err, sandbox.ErrSandboxViolation) {
			return httpwire.Forbidden()
		}
		return httpwire.InternalError(err.Error())
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		logging.Debug("Static file not found",
			zap.String("path", urlPath),
			zap.String("resolved", resolved),
		)
		return httpwire.NotFound()
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return httpwire.NotFound()
		}
		logging.Error("Failed to read static file",
			zap.String("resolved", resolved),
			zap.Error(err),
		)
		return httpwire.InternalError(err.Error())
	}

	return httpwire.OK(httpwire.ContentTypeHTML, content)
}
