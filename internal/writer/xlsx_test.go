package writer

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/platformctl/paymerge/internal/locale"
	"github.com/platformctl/paymerge/internal/report"
)

func sampleRow(country, total string) report.Row {
	r := report.NewRow()
	r.Cells["country"] = country
	r.Cells["type"] = "Order"
	v := decimal.RequireFromString(total)
	r.Shadow["total"] = v
	r.Cells["total"] = locale.FormatEuro(v)
	return r
}

func readSheet(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	return rows
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	ds := report.Dataset{Rows: []report.Row{
		sampleRow("DE", "100.00"),
		sampleRow("FR", "25.00"),
	}}

	if err := WriteWorkbook(path, ds); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	rows := readSheet(t, path)
	if len(rows) != 3 {
		t.Fatalf("want header + 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != len(report.FinalColumns) {
		t.Fatalf("header width: %d, want %d", len(rows[0]), len(report.FinalColumns))
	}
	if rows[0][0] != "country" || rows[0][len(rows[0])-1] != "total" {
		t.Fatalf("header order: first=%q last=%q", rows[0][0], rows[0][len(rows[0])-1])
	}
	if rows[1][0] != "DE" || rows[2][0] != "FR" {
		t.Fatalf("row order: %q then %q", rows[1][0], rows[2][0])
	}
	if rows[1][len(report.FinalColumns)-1] != "€ 100,00" {
		t.Fatalf("total cell: %q", rows[1][len(report.FinalColumns)-1])
	}
}

func TestWriteWorkbook_ConvertedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	row := sampleRow("PL", "100.00")
	row.Converted = map[string]decimal.Decimal{}
	row.ConvertedCells = map[string]string{}
	for _, c := range report.MoneyColumns {
		row.Converted[c] = decimal.Zero
		row.ConvertedCells[c] = locale.FormatEuro(decimal.Zero)
	}
	half := decimal.RequireFromString("50")
	row.Converted["total"] = half
	row.ConvertedCells["total"] = locale.FormatEuro(half)

	ds := report.Dataset{Rows: []report.Row{row}, Converted: true}
	if err := WriteWorkbook(path, ds); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	rows := readSheet(t, path)
	wantWidth := len(report.FinalColumns) + len(report.MoneyColumns)
	if len(rows[0]) != wantWidth {
		t.Fatalf("header width with conversion: %d, want %d", len(rows[0]), wantWidth)
	}
	if rows[0][wantWidth-1] != "total"+report.ConvertedSuffix {
		t.Fatalf("last header: %q", rows[0][wantWidth-1])
	}
	if rows[1][wantWidth-1] != "€ 50,00" {
		t.Fatalf("converted total cell: %q", rows[1][wantWidth-1])
	}
}

func TestWriteWorkbook_BadPath(t *testing.T) {
	ds := report.Dataset{Rows: []report.Row{sampleRow("DE", "1.00")}}
	if err := WriteWorkbook(filepath.Join(t.TempDir(), "missing", "nested", "out.xlsx"), ds); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}
