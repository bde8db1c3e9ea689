package storage

import (
	"errors"
	"testing"

	"github.com/platformctl/paymerge/internal/domain/models"
	"github.com/platformctl/paymerge/internal/report"
)

// fakeRepo records calls so loader behavior can be asserted without a DB.
type fakeRepo struct {
	loaded    map[string]bool
	insertErr error

	inserted []string // countries in insert order
	deleted  []string
	logged   map[string]int // country -> row count
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{loaded: map[string]bool{}, logged: map[string]int{}}
}

func (f *fakeRepo) InsertRowsBatch(period string, rows []report.Row) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, rows[0].Cells["country"])
	return nil
}

func (f *fakeRepo) HasLoadForPeriod(period, country string) (bool, error) {
	return f.loaded[country], nil
}

func (f *fakeRepo) UpsertLoadLog(period, country, filename string, rowCount int) error {
	f.logged[country] = rowCount
	return nil
}

func (f *fakeRepo) DeleteRowsForPeriod(period, country string) error {
	f.deleted = append(f.deleted, country)
	return nil
}

func (f *fakeRepo) GetTotals(period, country string) (*models.Totals, error) {
	return nil, nil
}

var _ ReportRepository = (*fakeRepo)(nil)

func rowFor(country string) report.Row {
	r := report.NewRow()
	r.Cells["country"] = country
	return r
}

func datasetFor(countries ...string) report.Dataset {
	ds := report.Dataset{Sources: map[string]string{}}
	for _, cc := range countries {
		ds.Rows = append(ds.Rows, rowFor(cc))
		ds.Sources[cc] = "2025_9_custom_acme_" + cc + ".csv"
	}
	return ds
}

func TestLoadDataset_SortedOrder(t *testing.T) {
	repo := newFakeRepo()
	ds := datasetFor("PL", "DE", "FR")

	if err := LoadDataset(repo, "2025-09", ds, false); err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	want := []string{"DE", "FR", "PL"}
	if len(repo.inserted) != 3 {
		t.Fatalf("inserted %v", repo.inserted)
	}
	for i, cc := range want {
		if repo.inserted[i] != cc {
			t.Fatalf("insert order %v, want %v", repo.inserted, want)
		}
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("nothing should be deleted on a fresh load: %v", repo.deleted)
	}
	if repo.logged["DE"] != 1 {
		t.Fatalf("load log row count: %v", repo.logged)
	}
}

func TestLoadDataset_SkipsLoadedWithoutForce(t *testing.T) {
	repo := newFakeRepo()
	repo.loaded["DE"] = true
	ds := datasetFor("DE", "FR")

	if err := LoadDataset(repo, "2025-09", ds, false); err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	if len(repo.inserted) != 1 || repo.inserted[0] != "FR" {
		t.Fatalf("expected only FR inserted, got %v", repo.inserted)
	}
}

func TestLoadDataset_ForceReloads(t *testing.T) {
	repo := newFakeRepo()
	repo.loaded["DE"] = true
	ds := datasetFor("DE")

	if err := LoadDataset(repo, "2025-09", ds, true); err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	if len(repo.deleted) != 1 || repo.deleted[0] != "DE" {
		t.Fatalf("expected DE deleted before reload, got %v", repo.deleted)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected DE reinserted, got %v", repo.inserted)
	}
}

func TestLoadDataset_InsertError(t *testing.T) {
	repo := newFakeRepo()
	repo.insertErr = errors.New("copy failed")
	ds := datasetFor("DE")

	if err := LoadDataset(repo, "2025-09", ds, false); err == nil {
		t.Fatalf("expected insert error to propagate")
	}
}
