package models

// Totals carries the headline sums for one period, either for a single
// marketplace or across all of them.
//
// Amounts are expressed in the reference currency when the load ran with
// conversion enabled, otherwise in each marketplace's native currency.
//
// swagger:model Totals
type Totals struct {
	Period       string  `json:"period" example:"2025-09"`
	Country      string  `json:"country,omitempty" example:"DE"`
	ProductSales float64 `json:"product_sales" example:"12345.67"`
	SellingFees  float64 `json:"selling_fees" example:"-987.65"`
	FbaFees      float64 `json:"fba_fees" example:"-432.10"`
	Total        float64 `json:"total" example:"10925.92"`
	RowCount     int64   `json:"row_count" example:"4821"`
}
