package storage

import (
	"database/sql"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/platformctl/paymerge/internal/domain/models"
	"github.com/platformctl/paymerge/internal/report"
)

// moneyDBColumns maps the monetary report columns to their table columns,
// in report.MoneyColumns order.
var moneyDBColumns = []string{
	"product_sales",
	"product_sales_tax",
	"postage_credits",
	"shipping_credits_tax",
	"gift_wrap_credits",
	"gift_wrap_credits_tax",
	"promotional_rebates",
	"promotional_rebates_tax",
	"marketplace_withheld_tax",
	"selling_fees",
	"fba_fees",
	"other_transactions_fees",
	"other",
	"total",
}

// ReportRepository defines the DB contract for persisted consolidated rows.
type ReportRepository interface {
	InsertRowsBatch(period string, rows []report.Row) error
	HasLoadForPeriod(period, country string) (bool, error)
	UpsertLoadLog(period, country, filename string, rowCount int) error
	DeleteRowsForPeriod(period, country string) error
	GetTotals(period string, country string) (*models.Totals, error)
}

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// InsertRowsBatch bulk-loads normalized rows for one period in a single
// transaction. Numeric values come from the converted shadow when the run
// converted currencies, from the native shadow otherwise, so sums across
// countries stay comparable.
func (r *reportRepository) InsertRowsBatch(period string, rows []report.Row) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Bulk-load friendliness, same trade-off as any reloadable batch table.
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	cols := append([]string{
		"period", "country", "txn_date", "settlement_id", "txn_type",
		"order_id", "sku", "description", "quantity", "marketplace",
		"fulfilment", "order_city", "order_state", "order_postal",
	}, moneyDBColumns...)

	stmt, err := tx.Prepare(pq.CopyIn("transactions", cols...))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, row := range rows {
		args := []interface{}{
			period,
			row.Cells["country"],
			row.Cells["date/time"],
			row.Cells["settlement id"],
			row.Cells["type"],
			row.Cells["order id"],
			row.Cells["sku"],
			row.Cells["description"],
			row.Cells["quantity"],
			row.Cells["marketplace"],
			row.Cells["fulfilment"],
			row.Cells["order city"],
			row.Cells["order state"],
			row.Cells["order postal"],
		}
		for _, mc := range report.MoneyColumns {
			v := row.Shadow[mc]
			if row.Converted != nil {
				v = row.Converted[mc]
			}
			args = append(args, v.String())
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasLoadForPeriod checks whether a marketplace load was already recorded
// for the given period.
func (r *reportRepository) HasLoadForPeriod(period, country string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM load_log WHERE period = $1 AND country = $2)`,
		period, country,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertLoadLog records (or refreshes) the load entry for one marketplace
// and period.
func (r *reportRepository) UpsertLoadLog(period, country, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO load_log (period, country, filename, row_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (period, country)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  loaded_at = NOW()
	`, period, country, filename, rowCount)
	return err
}

// DeleteRowsForPeriod removes previously loaded rows so a period can be
// reloaded idempotently.
func (r *reportRepository) DeleteRowsForPeriod(period, country string) error {
	_, err := r.db.Exec(`DELETE FROM transactions WHERE period = $1 AND country = $2`, period, country)
	return err
}

// GetTotals returns the headline sums for a period, optionally narrowed to
// one marketplace. A nil result with nil error means no data was loaded.
func (r *reportRepository) GetTotals(period string, country string) (*models.Totals, error) {
	conditions := "period = $1"
	args := []interface{}{period}
	if country != "" {
		conditions += fmt.Sprintf(" AND country = $%d", len(args)+1)
		args = append(args, country)
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(product_sales), 0),
			   COALESCE(SUM(selling_fees), 0),
			   COALESCE(SUM(fba_fees), 0),
			   COALESCE(SUM(total), 0),
			   COUNT(*)
		FROM transactions
		WHERE %s
	`, conditions)

	t := models.Totals{Period: period, Country: country}
	err := r.db.QueryRow(query, args...).
		Scan(&t.ProductSales, &t.SellingFees, &t.FbaFees, &t.Total, &t.RowCount)
	if err != nil {
		return nil, err
	}
	if t.RowCount == 0 {
		return nil, nil
	}
	return &t, nil
}
