package report

import "github.com/shopspring/decimal"

// Row is one normalized transaction line.
//
// Cells holds every canonical column as display text; monetary cells are
// EU-formatted. Shadow holds, for each monetary column, the exact numeric
// value parsed straight from the source text. The shadow never reaches the
// output artifact's primary columns; it exists so the reconciliation step
// can prove the display strings still add up to what was parsed.
//
// When currency conversion is enabled, Converted/ConvertedCells mirror
// Shadow/the monetary Cells in the reference currency; both are nil
// otherwise.
type Row struct {
	Cells  map[string]string
	Shadow map[string]decimal.Decimal

	Converted      map[string]decimal.Decimal
	ConvertedCells map[string]string
}

// NewRow returns a Row with every canonical column present and empty, and a
// zero shadow for every monetary column. Normalization fills cells in; a
// column absent from the source file simply stays empty.
func NewRow() Row {
	r := Row{
		Cells:  make(map[string]string, len(FinalColumns)),
		Shadow: make(map[string]decimal.Decimal, len(MoneyColumns)),
	}
	for _, c := range FinalColumns {
		r.Cells[c] = ""
	}
	for _, c := range MoneyColumns {
		r.Shadow[c] = decimal.Zero
	}
	return r
}

// Batch is the normalized output of one marketplace source file. It is
// owned by the normalization step that produced it until handed to Merge.
type Batch struct {
	Country    string
	SourceFile string
	Rows       []Row
}

// Dataset is the consolidated result of a run. Sources records, per
// marketplace code, the base name of the report file the rows came from.
type Dataset struct {
	Rows      []Row
	Sources   map[string]string
	Converted bool
}

// Merge concatenates batches into one dataset, preserving the order in
// which batches are given and the original row order within each batch.
// Callers process marketplaces in sorted code order, which makes the merged
// row order reproducible across runs for identical inputs.
func Merge(batches []Batch, converted bool) Dataset {
	n := 0
	for _, b := range batches {
		n += len(b.Rows)
	}
	rows := make([]Row, 0, n)
	sources := make(map[string]string, len(batches))
	for _, b := range batches {
		rows = append(rows, b.Rows...)
		if b.SourceFile != "" {
			sources[b.Country] = b.SourceFile
		}
	}
	return Dataset{Rows: rows, Sources: sources, Converted: converted}
}
