package export

import (
	"errors"
	"net/http"

	"crm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExportPDFRequest struct {
	Latex string `json:"latex" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(export *gin.RouterGroup) {
	export.POST("/pdf", h.ExportPDF)
}

// ExportPDF compiles the submitted LaTeX source and streams back the PDF.
// @Summary Export dashboard report as PDF
// @Tags Export
// @Security BearerAuth
// @Param request body ExportPDFRequest true "LaTeX source"
// @Success 200 {file} binary "Compiled PDF"
// @Failure 400 {object} map[string]interface{} "Empty LaTeX source"
// @Failure 500 {object} map[string]interface{} "Compilation failed"
// @Router /export/pdf [post]
func (h *Handler) ExportPDF(c *gin.Context) {
	var req ExportPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Request body must contain a latex field")
		return
	}

	pdf, err := h.service.CompilePDF(c.Request.Context(), req.Latex)
	if err != nil {
		if errors.Is(err, ErrEmptyDocument) {
			response.Error(c, http.StatusBadRequest, "EMPTY_DOCUMENT", "LaTeX source is empty")
			return
		}

		var compileErr *CompileError
		if errors.As(err, &compileErr) {
			response.ErrorWithDetails(c, http.StatusInternalServerError, "COMPILE_FAILED",
				"LaTeX compilation failed", gin.H{"log": compileErr.Output})
			return
		}

		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export PDF")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="crm_dashboard_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
