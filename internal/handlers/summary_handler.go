package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/services"
)

// SummaryHandler handles aggregate income requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetTotalIncome returns the caller's aggregate income: goal savings plus
// investment market value, recomputed per request.
// @Summary     Total income
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.IncomeSummary "Aggregate income"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /total-income [get]
func (h *SummaryHandler) GetTotalIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.TotalIncome(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
