package reconcile

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/platformctl/paymerge/internal/locale"
	"github.com/platformctl/paymerge/internal/report"
)

func rowWith(total string) report.Row {
	r := report.NewRow()
	v := decimal.RequireFromString(total)
	r.Shadow["total"] = v
	r.Cells["total"] = locale.FormatEuro(v)
	return r
}

func TestCheck_AllMatch(t *testing.T) {
	ds := report.Dataset{Rows: []report.Row{rowWith("100.00"), rowWith("25.00")}}

	rep := Check(ds)
	if !rep.AllMatch() {
		t.Fatalf("expected clean reconciliation: %+v", rep)
	}
	if len(rep.Native) != len(Metrics) {
		t.Fatalf("want %d native results, got %d", len(Metrics), len(rep.Native))
	}
	if len(rep.Converted) != 0 {
		t.Fatalf("no converted results expected without conversion")
	}

	var total Result
	for _, res := range rep.Native {
		if res.Metric == "total" {
			total = res
		}
	}
	if !total.SourceSum.Equal(decimal.RequireFromString("125")) || !total.Match {
		t.Fatalf("total metric: %+v", total)
	}
}

func TestCheck_DetectsCorruptedDisplay(t *testing.T) {
	good := rowWith("100.00")
	bad := rowWith("25.00")
	bad.Cells["total"] = "€ 52,00" // display no longer matches the shadow

	rep := Check(report.Dataset{Rows: []report.Row{good, bad}})
	if rep.AllMatch() {
		t.Fatalf("corrupted display cell must not reconcile")
	}
	if !strings.Contains(rep.String(), "FAIL") {
		t.Fatalf("report should flag the mismatch:\n%s", rep.String())
	}
}

func TestCheck_ConvertedSetIndependent(t *testing.T) {
	row := rowWith("100.00")
	row.Converted = map[string]decimal.Decimal{}
	row.ConvertedCells = map[string]string{}
	for _, c := range report.MoneyColumns {
		row.Converted[c] = decimal.Zero
		row.ConvertedCells[c] = locale.FormatEuro(decimal.Zero)
	}
	half := decimal.RequireFromString("50")
	row.Converted["total"] = half
	row.ConvertedCells["total"] = locale.FormatEuro(half)

	rep := Check(report.Dataset{Rows: []report.Row{row}, Converted: true})
	if len(rep.Converted) != len(Metrics) {
		t.Fatalf("want converted results, got %d", len(rep.Converted))
	}
	if !rep.AllMatch() {
		t.Fatalf("converted set should reconcile: %+v", rep.Converted)
	}

	// converted lines are labeled with the output column suffix
	if !strings.Contains(rep.String(), "total"+report.ConvertedSuffix) {
		t.Fatalf("converted label missing:\n%s", rep.String())
	}
}

func TestCheck_EpsilonBoundary(t *testing.T) {
	row := report.NewRow()
	row.Shadow["total"] = decimal.RequireFromString("0.000000001")
	row.Cells["total"] = "€ 0,00" // rounding loss far below epsilon

	rep := Check(report.Dataset{Rows: []report.Row{row}})
	for _, res := range rep.Native {
		if res.Metric == "total" && !res.Match {
			t.Fatalf("sub-epsilon difference must reconcile: %+v", res)
		}
	}
}
