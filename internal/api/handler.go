package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/platformctl/paymerge/internal/domain/dto"
	"github.com/platformctl/paymerge/internal/service"
)

var periodRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Handler provides the HTTP handlers for consolidated report queries.
type Handler struct {
	svc service.TotalsService
}

func NewHandler(svc service.TotalsService) *Handler {
	return &Handler{svc: svc}
}

// GetTotals handles GET /api/v1/totals requests.
//
// GetTotals godoc
// @Summary      Consolidated headline totals
// @Description  Returns product sales, selling fees, fulfilment fees and total for a period, optionally narrowed to one marketplace
// @Tags         totals
// @Produce      json
// @Param        period   query     string  true   "Reporting period (YYYY-MM)" example(2025-09)
// @Param        country  query     string  false  "Two-letter marketplace code" example(DE)
// @Success      200      {object}  dto.TotalsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse   "Not Found"
// @Failure      500      {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/totals [get]
func (h *Handler) GetTotals(c *gin.Context) {
	period := strings.TrimSpace(c.Query("period"))
	if !periodRE.MatchString(period) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("period is required as YYYY-MM", nil))
		return
	}

	country := strings.ToUpper(strings.TrimSpace(c.Query("country")))
	if country != "" && len(country) != 2 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("country must be a two-letter marketplace code", nil))
		return
	}

	totals, err := h.svc.GetTotals(c.Request.Context(), period, country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch totals", err))
		return
	}
	if totals == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data loaded for this period", nil))
		return
	}

	c.JSON(http.StatusOK, dto.TotalsResponse{
		Period:       totals.Period,
		Country:      totals.Country,
		ProductSales: totals.ProductSales,
		SellingFees:  totals.SellingFees,
		FbaFees:      totals.FbaFees,
		Total:        totals.Total,
		RowCount:     totals.RowCount,
	})
}
