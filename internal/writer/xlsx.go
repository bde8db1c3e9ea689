// Package writer persists the consolidated dataset as a single-sheet xlsx
// workbook: one header row, the canonical column order, one row per
// retained transaction, plus the reference-currency columns when
// conversion ran.
package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/platformctl/paymerge/internal/report"
)

const sheetName = "Sheet1"

// WriteWorkbook writes ds to path, overwriting any previous artifact.
func WriteWorkbook(path string, ds report.Dataset) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headers := append([]string(nil), report.FinalColumns...)
	if ds.Converted {
		for _, c := range report.MoneyColumns {
			headers = append(headers, c+report.ConvertedSuffix)
		}
	}

	if err := setRow(f, 1, toAny(headers)); err != nil {
		return err
	}

	for i, row := range ds.Rows {
		values := make([]interface{}, 0, len(headers))
		for _, c := range report.FinalColumns {
			values = append(values, row.Cells[c])
		}
		if ds.Converted {
			for _, c := range report.MoneyColumns {
				values = append(values, row.ConvertedCells[c])
			}
		}
		if err := setRow(f, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell ref row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheetName, ref, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

func toAny(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
