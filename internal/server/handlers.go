package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fsbrowse/internal/browse"
	"fsbrowse/internal/metrics"
)

// chosenRoot picks the root for a request: the root query parameter
// when present, otherwise the registry's default.
func (s *Server) chosenRoot(c *gin.Context) (string, error) {
	root := strings.TrimSpace(c.Query("root"))
	if root != "" {
		return root, nil
	}

	return s.registry.DefaultRoot()
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", nil)
}

func (s *Server) handleConfig(c *gin.Context) {
	roots, err := s.registry.AllowedRoots()
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed_roots": roots})
}

func (s *Server) handleList(c *gin.Context) {
	root, err := s.chosenRoot(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	target, err := browse.ResolveTarget(root, c.Query("path"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	listing, err := browse.List(target, root)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (s *Server) handleFile(c *gin.Context) {
	root, err := s.chosenRoot(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	target, err := browse.ValidateFileTarget(root, c.Query("path"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	if _, err := browse.StatFile(target, root); err != nil {
		s.respondError(c, err)
		return
	}

	// ServeContent sniffs content when the type is unset; pin it to the
	// extension-derived type so file bytes are never inspected.
	contentType := "application/octet-stream"
	if t := browse.MimeType(target); t != nil {
		contentType = *t
	}
	c.Header("Content-Type", contentType)

	c.File(target)
}

func (s *Server) handleTextPreview(c *gin.Context) {
	root, err := s.chosenRoot(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	target, err := browse.ValidateFileTarget(root, c.Query("path"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	preview, err := browse.Preview(target, root)
	if err != nil {
		s.respondError(c, err)
		return
	}

	metrics.RecordPreviewBytes(len(preview.Content))
	c.JSON(http.StatusOK, preview)
}
