package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snapgeo/snapgeo-ocr/internal/extract"
)

// maxUploadBytes caps frame uploads; overlay frames are single video stills.
const maxUploadBytes = 20 << 20

// handleHealth reports service liveness and recognition engine availability.
func (s *Server) handleHealth(c *gin.Context) {
	info := s.engineProbe()
	status := "healthy"
	if !info.Available {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"service": "snapgeo-ocr",
		"engine":  info,
	})
}

// handleOCR accepts a multipart frame upload under the "file" field and
// returns the extraction record. Status codes follow the extraction outcome:
// 200 when coordinates were resolved, 422 when only non-coordinate metadata
// was recovered, 500 when processing failed outright.
func (s *Server) handleOCR(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an image"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file upload"})
		return
	}

	result := s.extractor.Extract(data)
	c.JSON(statusFor(result), result)
}

func statusFor(r *extract.ExtractionResult) int {
	switch {
	case r.Error == "":
		return http.StatusOK
	case r.Error == extract.ErrNoCoordinates:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
