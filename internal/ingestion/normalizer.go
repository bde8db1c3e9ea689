package ingestion

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/platformctl/paymerge/internal/currency"
	"github.com/platformctl/paymerge/internal/locale"
	"github.com/platformctl/paymerge/internal/report"
	"github.com/platformctl/paymerge/internal/translate"
)

// transferType is the canonical label for internal money movements. Those
// rows are not sale events and must never reach consolidated totals.
const transferType = "Transfer"

// Normalizer maps one source file's rows into the canonical schema. It is
// stateless across files; the translation table and month index are built
// once per run and shared read-only.
type Normalizer struct {
	table *translate.Table
	dates *locale.DateNormalizer
	conv  *currency.Converter // nil disables conversion
}

func NewNormalizer(table *translate.Table, months locale.MonthIndex, conv *currency.Converter) *Normalizer {
	return &Normalizer{
		table: table,
		dates: locale.NewDateNormalizer(months),
		conv:  conv,
	}
}

// NormalizeBatch turns one marketplace file (header plus records) into a
// Batch of canonical rows:
//
//  1. columns are renamed through the header translation map; columns that
//     neither translate nor already carry a canonical name are dropped
//  2. every canonical column exists in every row, empty when absent
//  3. the type column goes through the payment-type map; untranslatable
//     values pass through unchanged
//  4. rows are stamped with the marketplace code
//  5. the date column is normalized to dd-mm-yyyy
//  6. Transfer rows are excluded
//  7. each monetary column is parsed into a raw shadow value, converted to
//     the reference currency when conversion is on, and its display cell is
//     re-rendered from the numeric value
func (n *Normalizer) NormalizeBatch(country string, header []string, records [][]string) (report.Batch, error) {
	canonical := make(map[string]struct{}, len(report.FinalColumns))
	for _, c := range report.FinalColumns {
		canonical[c] = struct{}{}
	}

	// Resolve each source column to a canonical name, or "" to drop it.
	names := make([]string, len(header))
	for i, h := range header {
		if eng, ok := n.table.Header(h); ok {
			names[i] = eng
			continue
		}
		lc := strings.ToLower(strings.TrimSpace(h))
		if _, ok := canonical[lc]; ok {
			names[i] = lc // already canonical (English source file)
		}
	}

	batch := report.Batch{Country: country}
	for _, rec := range records {
		row := report.NewRow()
		for i, name := range names {
			if name == "" || i >= len(rec) {
				continue
			}
			row.Cells[name] = rec[i]
		}

		if eng, ok := n.table.PaymentType(row.Cells["type"]); ok {
			row.Cells["type"] = eng
		}
		if row.Cells["type"] == transferType {
			continue
		}

		row.Cells["country"] = country
		row.Cells["date/time"] = n.dates.Normalize(row.Cells["date/time"])

		if err := n.money(&row, country); err != nil {
			return report.Batch{}, err
		}

		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}

// money fills shadows and re-renders display cells for every monetary
// column of one row.
func (n *Normalizer) money(row *report.Row, country string) error {
	if n.conv != nil {
		row.Converted = make(map[string]decimal.Decimal, len(report.MoneyColumns))
		row.ConvertedCells = make(map[string]string, len(report.MoneyColumns))
	}
	for _, col := range report.MoneyColumns {
		raw := locale.ParseMoney(row.Cells[col])
		row.Shadow[col] = raw
		row.Cells[col] = locale.FormatEuro(raw)

		if n.conv == nil {
			continue
		}
		converted, err := n.conv.Convert(raw, country)
		if err != nil {
			return fmt.Errorf("convert %s for %s: %w", col, country, err)
		}
		row.Converted[col] = converted
		row.ConvertedCells[col] = locale.FormatEuro(converted)
	}
	return nil
}
