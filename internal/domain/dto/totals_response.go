package dto

// TotalsResponse is the JSON body returned by GET /api/v1/totals.
//
// It mirrors models.Totals but stays a separate type so the API surface can
// evolve independently of the internal model.
type TotalsResponse struct {
	Period       string  `json:"period" example:"2025-09"`                // Reporting period (YYYY-MM)
	Country      string  `json:"country,omitempty" example:"DE"`          // Marketplace filter, empty for all
	ProductSales float64 `json:"product_sales" example:"12345.67"`        // Sum of product sales
	SellingFees  float64 `json:"selling_fees" example:"-987.65"`          // Sum of selling fees
	FbaFees      float64 `json:"fba_fees" example:"-432.10"`              // Sum of fulfilment fees
	Total        float64 `json:"total" example:"10925.92"`                // Sum of transaction totals
	RowCount     int64   `json:"row_count" example:"4821"`                // Number of consolidated rows
}
