// Package ingestion turns per-marketplace payment report files into
// normalized batches and runs the consolidation pipeline: discover the
// right file for each marketplace, read past the preamble, normalize every
// row into the canonical schema, and merge the batches in deterministic
// order.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoReport means no candidate file matched the naming convention for a
// marketplace/period. Recoverable: the marketplace is skipped with a
// warning, the run continues.
var ErrNoReport = errors.New("no payment report found")

// FindReportFile returns the report for one marketplace and period:
// candidates are named "<year>_<month>_..._<client>_<CC>.csv" in dir, and
// the most recently modified one wins (sellers re-download corrected
// exports under the same convention).
func FindReportFile(dir string, year, month int, client, country string) (string, error) {
	pattern := filepath.Join(dir, fmt.Sprintf("%d_%d_*_%s_%s.csv", year, month, client, country))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", pattern, err)
	}

	var (
		newest    string
		newestMod time.Time
	)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = m
			newestMod = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("%w: %s %d-%02d in %s", ErrNoReport, country, year, month, dir)
	}
	return newest, nil
}
