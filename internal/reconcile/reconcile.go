// Package reconcile closes the loop on normalization: it re-parses the
// display-formatted monetary columns of the merged dataset and checks their
// sums against the raw shadow values captured at parse time. If formatting
// or a column mapping ever corrupts a number, the mismatch shows up here
// instead of silently shipping wrong totals.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/platformctl/paymerge/internal/locale"
	"github.com/platformctl/paymerge/internal/report"
)

// Metrics are the headline columns checked after every merge. Extending the
// check to another monetary column is a one-line change here.
var Metrics = []string{"product sales", "selling fees", "fba fees", "total"}

// epsilon bounds the acceptable difference between the two sums.
var epsilon = decimal.New(1, -6)

// Result is the outcome for one metric.
type Result struct {
	Metric    string
	SourceSum decimal.Decimal // sum of shadow values captured at parse time
	OutputSum decimal.Decimal // sum recovered by re-parsing the display cells
	Match     bool
}

// Report holds the per-metric outcomes for the native-currency columns
// and, when conversion ran, independently for the reference-currency set.
type Report struct {
	Native    []Result
	Converted []Result
}

// AllMatch reports whether every checked metric reconciled.
func (r Report) AllMatch() bool {
	for _, res := range r.Native {
		if !res.Match {
			return false
		}
	}
	for _, res := range r.Converted {
		if !res.Match {
			return false
		}
	}
	return true
}

// Check reconciles the merged dataset. It never blocks the pipeline: a
// mismatch is flagged for human triage while the output is still produced.
func Check(ds report.Dataset) Report {
	var rep Report
	for _, metric := range Metrics {
		rep.Native = append(rep.Native, checkMetric(ds, metric, false))
	}
	if ds.Converted {
		for _, metric := range Metrics {
			rep.Converted = append(rep.Converted, checkMetric(ds, metric, true))
		}
	}
	return rep
}

func checkMetric(ds report.Dataset, metric string, converted bool) Result {
	src := decimal.Zero
	out := decimal.Zero
	for _, row := range ds.Rows {
		if converted {
			src = src.Add(row.Converted[metric])
			out = out.Add(locale.ParseMoney(row.ConvertedCells[metric]))
		} else {
			src = src.Add(row.Shadow[metric])
			out = out.Add(locale.ParseMoney(row.Cells[metric]))
		}
	}
	return Result{
		Metric:    metric,
		SourceSum: src,
		OutputSum: out,
		Match:     src.Sub(out).Abs().LessThan(epsilon),
	}
}

// String renders the report as the fixed-width console table reviewed after
// each run.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-22s%18s%18s%8s\n", "Metric", "Source CSV", "Output XLSX", "Match?")
	for _, res := range r.Native {
		writeLine(&b, res.Metric, res)
	}
	for _, res := range r.Converted {
		writeLine(&b, res.Metric+report.ConvertedSuffix, res)
	}
	return b.String()
}

func writeLine(b *strings.Builder, label string, res Result) {
	mark := "OK"
	if !res.Match {
		mark = "FAIL"
	}
	fmt.Fprintf(b, "%-22s%18s%18s%8s\n",
		label, locale.FormatEuro(res.SourceSum), locale.FormatEuro(res.OutputSum), mark)
}
