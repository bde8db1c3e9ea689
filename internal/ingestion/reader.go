package ingestion

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Payment report exports open with a free-text preamble (report title,
// seller account, date range) before the actual header row.
const preambleLines = 7

// readReportCSV opens a payment report and returns its header row plus all
// data records. Records shorter than the header are padded with empty
// cells; longer ones keep their extra cells (the normalizer ignores them).
func readReportCSV(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	for i := 0; i < preambleLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, nil, fmt.Errorf("file ends inside preamble (line %d)", i+1)
			}
			return nil, nil, fmt.Errorf("skip preamble: %w", err)
		}
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err = r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, fmt.Errorf("read record %d: %w", len(records)+2, err)
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		records = append(records, rec)
	}

	return header, records, nil
}
