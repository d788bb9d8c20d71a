package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wisenkap/internal/services"
)

// ExportHandler serves downloadable statements
type ExportHandler struct {
	exportService services.ExportServicer
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService services.ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportTransactions renders the user's transactions as a PDF
// @Summary     Export transactions
// @Description PDF statement of the transactions dated within the inclusive range
// @Tags        export
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       start_date query string true "First day (YYYY-MM-DD)"
// @Param       end_date   query string true "Last day (YYYY-MM-DD)"
// @Success     200 {file} file
// @Failure     400 {object} ErrorResponse
// @Failure     401 {object} ErrorResponse
// @Router      /export [get]
func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	file, err := h.exportService.ExportTransactions(c.Request.Context(), userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
