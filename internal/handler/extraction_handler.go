package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vivaran/internal/csvexport"
	"vivaran/internal/service"
)

// exportLimit caps how many runs a single CSV export carries.
const exportLimit = 1000

// ExtractionHandler handles report extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// Extract handles POST /api/v1/extractions
func (h *ExtractionHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	run, err := h.extractionService.Extract(c.Request.Context(), service.ExtractInput{
		FileName: header.Filename,
		Content:  content,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, run)
}

// GetByID handles GET /api/v1/extractions/:id
func (h *ExtractionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid extraction run ID")
		return
	}

	run, err := h.extractionService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, run)
}

// List handles GET /api/v1/extractions
func (h *ExtractionHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	runs, total, err := h.extractionService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, runs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Export handles GET /api/v1/extractions/export
func (h *ExtractionHandler) Export(c *gin.Context) {
	runs, _, err := h.extractionService.List(c.Request.Context(), 0, exportLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("extraction_runs")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRuns(runs); err != nil {
		return
	}
	w.Flush()
}

// GetChunkArtifact handles GET /api/v1/extractions/:id/chunks/:chunkID
func (h *ExtractionHandler) GetChunkArtifact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid extraction run ID")
		return
	}

	body, err := h.extractionService.GetChunkArtifact(c.Request.Context(), id, c.Param("chunkID"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// parsePagination reads offset/limit query params with sane bounds.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
