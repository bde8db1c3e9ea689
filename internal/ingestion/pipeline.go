package ingestion

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/platformctl/paymerge/internal/currency"
	"github.com/platformctl/paymerge/internal/locale"
	"github.com/platformctl/paymerge/internal/logger"
	"github.com/platformctl/paymerge/internal/report"
	"github.com/platformctl/paymerge/internal/translate"
)

// Options configure one consolidation run.
type Options struct {
	InputDir string
	Year     int
	Month    int
	Client   string
	Markets  []string
	Convert  bool
}

// Run consolidates every configured marketplace for the period into one
// dataset.
//
// Marketplaces are processed strictly sequentially in sorted code order so
// the merged row order is reproducible across runs. A missing or unreadable
// report skips that marketplace with a warning (a consolidated report with
// N-1 marketplaces is still useful); a currency-rate gap aborts before any
// file is touched, because it would corrupt values instead of omitting them.
func Run(ctx context.Context, opts Options, table *translate.Table, months locale.MonthIndex, conv *currency.Converter) (report.Dataset, error) {
	markets := append([]string(nil), opts.Markets...)
	sort.Strings(markets)

	var cv *currency.Converter
	if opts.Convert {
		cv = conv
		if err := cv.Validate(markets); err != nil {
			return report.Dataset{}, err
		}
	}

	norm := NewNormalizer(table, months, cv)

	var batches []report.Batch
	for _, cc := range markets {
		select {
		case <-ctx.Done():
			return report.Dataset{}, ctx.Err()
		default:
		}

		start := time.Now()
		path, err := FindReportFile(opts.InputDir, opts.Year, opts.Month, opts.Client, cc)
		if err != nil {
			logger.L().Warn().Str("marketplace", cc).Err(err).Msg("marketplace skipped")
			continue
		}

		header, records, err := readReportCSV(path)
		if err != nil {
			logger.L().Warn().
				Str("marketplace", cc).
				Str("file", filepath.Base(path)).
				Err(err).
				Msg("unreadable report, marketplace skipped")
			continue
		}

		batch, err := norm.NormalizeBatch(cc, header, records)
		if err != nil {
			return report.Dataset{}, fmt.Errorf("normalize %s: %w", cc, err)
		}
		batch.SourceFile = filepath.Base(path)

		logger.L().Info().
			Str("marketplace", cc).
			Str("file", filepath.Base(path)).
			Int("rows", len(batch.Rows)).
			Dur("elapsed", time.Since(start)).
			Msg("report normalized")
		batches = append(batches, batch)
	}

	if len(batches) == 0 {
		return report.Dataset{}, fmt.Errorf("%w: no marketplace produced rows", ErrNoReport)
	}

	return report.Merge(batches, opts.Convert), nil
}
