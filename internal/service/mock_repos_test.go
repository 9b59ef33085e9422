package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/AlexandreJustinRepia/dtr-denr/internal/model"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/repository"
)

// ── Mock BatchRepository ──

type mockBatchRepo struct {
	batches map[string]*model.DTRBatch
	seq     int
}

func newMockBatchRepo() *mockBatchRepo {
	return &mockBatchRepo{batches: make(map[string]*model.DTRBatch)}
}

func (m *mockBatchRepo) CreateIfAbsent(_ context.Context, batch *model.DTRBatch) (bool, error) {
	for _, b := range m.batches {
		if b.ContentHash == batch.ContentHash {
			return false, nil
		}
	}
	if batch.BatchID == "" {
		m.seq++
		batch.BatchID = fmt.Sprintf("batch-%d", m.seq)
	}
	m.batches[batch.BatchID] = batch
	return true, nil
}

func (m *mockBatchRepo) GetByHash(_ context.Context, contentHash string) (*model.DTRBatch, error) {
	for _, b := range m.batches {
		if b.ContentHash == contentHash {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBatchRepo) GetByID(_ context.Context, id string) (*model.DTRBatch, error) {
	if b, ok := m.batches[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBatchRepo) List(_ context.Context, offset, limit int) ([]model.DTRBatch, int64, error) {
	var all []model.DTRBatch
	for _, b := range m.batches {
		all = append(all, *b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].BatchID > all[j].BatchID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── Mock RecordRepository ──

type mockRecordRepo struct {
	records map[string]*model.DTRRecord // (name|date|time) → record
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: make(map[string]*model.DTRRecord)}
}

func punchKey(rec *model.DTRRecord) string {
	return rec.EmployeeName + "|" + rec.LogDate.Format("2006-01-02") + "|" + rec.LogTime
}

func (m *mockRecordRepo) InsertIfAbsent(_ context.Context, rec *model.DTRRecord) (bool, error) {
	key := punchKey(rec)
	if _, exists := m.records[key]; exists {
		return false, nil
	}
	m.records[key] = rec
	return true, nil
}

func (m *mockRecordRepo) ListByEmployeeMonth(_ context.Context, name string, year, month int, status string) ([]model.DTRRecord, error) {
	var result []model.DTRRecord
	for _, rec := range m.records {
		if rec.EmployeeName != name {
			continue
		}
		if rec.LogDate.Year() != year || int(rec.LogDate.Month()) != month {
			continue
		}
		if status != "" && rec.EmploymentStatus != status {
			continue
		}
		result = append(result, *rec)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].LogDate.Equal(result[j].LogDate) {
			return result[i].LogDate.Before(result[j].LogDate)
		}
		return result[i].LogTime < result[j].LogTime
	})
	return result, nil
}

func (m *mockRecordRepo) DistinctMonths(_ context.Context, name string, status string) ([]repository.MonthRef, error) {
	seen := make(map[repository.MonthRef]bool)
	for _, rec := range m.records {
		if rec.EmployeeName != name {
			continue
		}
		if status != "" && rec.EmploymentStatus != status {
			continue
		}
		seen[repository.MonthRef{Year: rec.LogDate.Year(), Month: int(rec.LogDate.Month())}] = true
	}
	var refs []repository.MonthRef
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Year != refs[j].Year {
			return refs[i].Year < refs[j].Year
		}
		return refs[i].Month < refs[j].Month
	})
	return refs, nil
}

func (m *mockRecordRepo) DistinctEmployees(_ context.Context, search, status string, offset, limit int) ([]repository.EmployeeRow, int64, error) {
	byName := make(map[string]string)
	for _, rec := range m.records {
		if search != "" && !strings.Contains(strings.ToUpper(rec.EmployeeName), strings.ToUpper(search)) {
			continue
		}
		if status != "" && rec.EmploymentStatus != status {
			continue
		}
		if _, ok := byName[rec.EmployeeName]; !ok {
			byName[rec.EmployeeName] = rec.EmploymentStatus
		}
	}
	var rows []repository.EmployeeRow
	for name, st := range byName {
		rows = append(rows, repository.EmployeeRow{EmployeeName: name, EmploymentStatus: st})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].EmployeeName < rows[j].EmployeeName })
	total := int64(len(rows))
	if offset >= len(rows) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], total, nil
}

func (m *mockRecordRepo) GetEmployeeStatus(_ context.Context, name string) (string, error) {
	for _, rec := range m.records {
		if rec.EmployeeName == name {
			return rec.EmploymentStatus, nil
		}
	}
	return "", nil
}

// newTestRepository bundles fresh mocks into a repository aggregate.
func newTestRepository() (*repository.Repository, *mockBatchRepo, *mockRecordRepo) {
	batches := newMockBatchRepo()
	records := newMockRecordRepo()
	return &repository.Repository{Batch: batches, Record: records}, batches, records
}
