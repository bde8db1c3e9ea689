package storage

import (
	"fmt"
	"sort"

	"github.com/platformctl/paymerge/internal/logger"
	"github.com/platformctl/paymerge/internal/report"
)

// LoadDataset persists a consolidated dataset, one marketplace at a time.
//
// Loads are idempotent per (period, country): a marketplace already recorded
// in the load log is skipped unless force is set, in which case its rows are
// deleted and reloaded. Marketplaces are loaded in sorted code order.
func LoadDataset(repo ReportRepository, period string, ds report.Dataset, force bool) error {
	byCountry := make(map[string][]report.Row)
	for _, row := range ds.Rows {
		cc := row.Cells["country"]
		byCountry[cc] = append(byCountry[cc], row)
	}

	countries := make([]string, 0, len(byCountry))
	for cc := range byCountry {
		countries = append(countries, cc)
	}
	sort.Strings(countries)

	for _, cc := range countries {
		rows := byCountry[cc]

		loaded, err := repo.HasLoadForPeriod(period, cc)
		if err != nil {
			return fmt.Errorf("load log check %s: %w", cc, err)
		}
		if loaded && !force {
			logger.L().Warn().
				Str("period", period).
				Str("country", cc).
				Msg("already loaded, skipping (use -force to reload)")
			continue
		}
		if loaded {
			if err := repo.DeleteRowsForPeriod(period, cc); err != nil {
				return fmt.Errorf("delete %s: %w", cc, err)
			}
		}

		if err := repo.InsertRowsBatch(period, rows); err != nil {
			return fmt.Errorf("insert %s: %w", cc, err)
		}
		if err := repo.UpsertLoadLog(period, cc, ds.Sources[cc], len(rows)); err != nil {
			return fmt.Errorf("load log %s: %w", cc, err)
		}

		logger.L().Info().
			Str("period", period).
			Str("country", cc).
			Int("rows", len(rows)).
			Msg("marketplace persisted")
	}

	return nil
}
