// Package translate builds the local-language → canonical-English lookup
// tables from the reference translation workbook. The workbook has two
// sheets: one for column headers, one for payment-type labels. Both are
// open-ended: any number of local-language rows can be appended without a
// code change, scanning stops at the first fully blank row.
package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/platformctl/paymerge/internal/logger"
)

// ErrMissingSheet is returned when the workbook does not carry both
// required sheets. Every later normalization step depends on a complete
// table, so callers must treat this as fatal.
var ErrMissingSheet = errors.New("translation workbook needs a header sheet and a payment-type sheet")

const (
	// Row 2 (index 1) holds the canonical English labels on both sheets.
	anchorRowIdx = 1
	// Local-language rows start at row 3 (index 2).
	firstLocalRowIdx = 2
	// Header sheet: English names span columns B..AB.
	headerSpanStart = 1
	headerSpanWidth = 27
	// Payment-type sheet: column A is a locale tag, labels start at B.
	typeSpanStart = 1
)

// Table holds the two immutable translation maps. Built once at startup and
// shared read-only across every file processed in a run.
type Table struct {
	headers map[string]string
	types   map[string]string
}

// NewTable builds a Table from ready-made mappings. Keys are lower-cased
// and trimmed. Build is the normal entry point; this exists for fixtures.
func NewTable(headers, types map[string]string) *Table {
	t := &Table{
		headers: make(map[string]string, len(headers)),
		types:   make(map[string]string, len(types)),
	}
	for k, v := range headers {
		t.headers[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for k, v := range types {
		t.types[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return t
}

// Header resolves a local-language column header to its canonical English
// name. Lookup is case-insensitive and ignores surrounding whitespace.
func (t *Table) Header(local string) (string, bool) {
	v, ok := t.headers[strings.ToLower(strings.TrimSpace(local))]
	return v, ok
}

// PaymentType resolves a local-language transaction-type label.
func (t *Table) PaymentType(local string) (string, bool) {
	v, ok := t.types[strings.ToLower(strings.TrimSpace(local))]
	return v, ok
}

// HeaderCount and TypeCount report map sizes, for startup logging.
func (t *Table) HeaderCount() int { return len(t.headers) }
func (t *Table) TypeCount() int   { return len(t.types) }

// Build reads the translation workbook at path. The first sheet maps
// column headers, the second maps payment-type labels.
func Build(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open translation workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) < 2 {
		return nil, fmt.Errorf("%w: found %d sheet(s)", ErrMissingSheet, len(sheets))
	}

	headerRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	typeRows, err := f.GetRows(sheets[1])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[1], err)
	}

	t := &Table{
		headers: buildHeaderMap(headerRows),
		types:   buildTypeMap(typeRows),
	}
	return t, nil
}

// cell returns the trimmed value at (row, col) treating anything outside
// the sheet's populated area as blank. GetRows trims trailing empty cells
// and rows, so out-of-range access is normal, not an error.
func cell(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}

// blankAcross reports whether every cell of the given row inside
// [start, start+width) is empty, which terminates the table scan.
func blankAcross(rows [][]string, row, start, width int) bool {
	for c := start; c < start+width; c++ {
		if cell(rows, row, c) != "" {
			return false
		}
	}
	return true
}

// buildHeaderMap scans the header sheet: the anchor row carries English
// column names across the fixed span; every following row is one local
// language, scanned until the first fully blank row. Blank cells inside a
// non-blank row are legal (a partially translated language).
func buildHeaderMap(rows [][]string) map[string]string {
	english := make([]string, headerSpanWidth)
	for i := range english {
		english[i] = cell(rows, anchorRowIdx, headerSpanStart+i)
	}

	m := make(map[string]string)
	for row := firstLocalRowIdx; !blankAcross(rows, row, headerSpanStart, headerSpanWidth); row++ {
		for i, eng := range english {
			local := cell(rows, row, headerSpanStart+i)
			if local == "" || eng == "" {
				continue
			}
			put(m, local, eng, "header")
		}
	}
	return m
}

// buildTypeMap scans the payment-type sheet. The label span is discovered
// by walking the anchor row rightward while non-empty; column A (locale
// tag) is ignored for mapping but still counts toward the blank-row test.
func buildTypeMap(rows [][]string) map[string]string {
	var english []string
	for c := typeSpanStart; cell(rows, anchorRowIdx, c) != ""; c++ {
		english = append(english, cell(rows, anchorRowIdx, c))
	}

	m := make(map[string]string)
	span := len(english) + 1 // include the locale-tag column
	for row := firstLocalRowIdx; !blankAcross(rows, row, 0, span); row++ {
		for i, eng := range english {
			local := cell(rows, row, typeSpanStart+i)
			if local == "" {
				continue
			}
			put(m, local, eng, "payment type")
		}
	}
	return m
}

// put inserts local→eng keyed case-insensitively. When two languages spell
// different labels the same way the later-scanned row wins; that ambiguity
// is logged so it can be fixed in the workbook rather than guessed at here.
func put(m map[string]string, local, eng, kind string) {
	key := strings.ToLower(local)
	if prev, ok := m[key]; ok && prev != eng {
		logger.L().Warn().
			Str("kind", kind).
			Str("local", local).
			Str("kept", eng).
			Str("overwritten", prev).
			Msg("conflicting translation, later row wins")
	}
	m[key] = eng
}
