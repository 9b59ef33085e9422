package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/dto"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/model"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/repository"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/checksum"
)

// ── DTR module business errors ──

var (
	ErrEmptyLogText   = errors.New("no log text provided")
	ErrEmptyBatchName = errors.New("no batch name provided")
	ErrBatchNotFound  = errors.New("batch not found")
)

// DTRService is the attendance-log business interface: ingestion of raw
// dumps, batch history, and calendar reconstruction.
type DTRService interface {
	// Generate parses a raw dump and persists its punches. Identical text
	// resolves to the existing batch: the stored text is re-parsed fresh
	// (so current normalization rules apply) and nothing is written.
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	// ListBatches pages through upload history, newest first.
	ListBatches(ctx context.Context, page, pageSize int) ([]dto.BatchSummary, int64, error)
	// GetBatchRaw returns a batch's original text unmodified, so it can be
	// resubmitted through Generate after rule changes.
	GetBatchRaw(ctx context.Context, id string) (*dto.BatchRawResponse, error)
	// GetEmployeeCalendar builds the dense month view for one employee.
	// month/year of 0 means every year-month on file. An employee with no
	// punches yields an all-empty calendar, never an error.
	GetEmployeeCalendar(ctx context.Context, name string, month, year int, status string) (*dto.EmployeeCalendar, error)
	// ListEmployees pages through distinct employees alphabetically, each
	// with their dense calendar for the requested month attached.
	ListEmployees(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeEntry, int64, error)
}

type dtrService struct {
	repo   *repository.Repository
	parser *LogParser
	roster map[string]bool // canonical names of permanent employees
	logger *zap.Logger
}

// NewDTRService creates a DTRService with the parser tables injected from
// configuration.
func NewDTRService(cfg *config.ParserConfig, repo *repository.Repository, logger *zap.Logger) DTRService {
	roster := make(map[string]bool, len(cfg.PermanentEmployees))
	for _, name := range cfg.PermanentEmployees {
		roster[strings.ToUpper(name)] = true
	}

	return &dtrService{
		repo:   repo,
		parser: NewLogParser(NewNameNormalizer(cfg)),
		roster: roster,
		logger: logger,
	}
}

// ────────────────────── Generate ──────────────────────

func (s *dtrService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if strings.TrimSpace(req.LogText) == "" {
		return nil, ErrEmptyLogText
	}
	if strings.TrimSpace(req.BatchName) == "" {
		return nil, ErrEmptyBatchName
	}

	hash := checksum.Text(req.LogText)

	existing, err := s.repo.Batch.GetByHash(ctx, hash)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("batch lookup failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		// Seen before: re-parse the stored text instead of persisting.
		parsed := s.parser.Parse(existing.RawLog)
		return &dto.GenerateResponse{
			Records:      toRecordsDTO(GroupPunches(parsed.Punches)),
			AlreadySaved: true,
			BatchID:      existing.BatchID,
			RecordCount:  existing.RecordCount,
			SkippedLines: parsed.Skipped,
		}, nil
	}

	parsed := s.parser.Parse(req.LogText)

	batch := &model.DTRBatch{
		BatchName:   req.BatchName,
		RawLog:      req.LogText,
		ContentHash: hash,
		RecordCount: parsed.Matched,
	}
	created, err := s.repo.Batch.CreateIfAbsent(ctx, batch)
	if err != nil {
		s.logger.Error("batch create failed", zap.Error(err))
		return nil, err
	}
	if !created {
		// Lost a race against an identical concurrent submission; the
		// winner owns the batch and its punches.
		winner, err := s.repo.Batch.GetByHash(ctx, hash)
		if err != nil {
			s.logger.Error("batch lookup after conflict failed", zap.Error(err))
			return nil, err
		}
		return &dto.GenerateResponse{
			Records:      toRecordsDTO(GroupPunches(parsed.Punches)),
			AlreadySaved: true,
			BatchID:      winner.BatchID,
			RecordCount:  winner.RecordCount,
			SkippedLines: parsed.Skipped,
		}, nil
	}

	inserted, duplicates := 0, 0
	for i := range parsed.Punches {
		punch := &parsed.Punches[i]
		logDate, err := time.Parse("2006-01-02", punch.DateKey)
		if err != nil {
			continue
		}

		rec := &model.DTRRecord{
			EmployeeName:     punch.EmployeeName,
			LogDate:          logDate,
			LogTime:          punch.Time24,
			EmploymentStatus: s.classifyStatus(punch.EmployeeName),
		}
		ok, err := s.repo.Record.InsertIfAbsent(ctx, rec)
		if err != nil {
			s.logger.Error("punch insert failed",
				zap.String("employee", punch.EmployeeName),
				zap.String("date", punch.DateKey),
				zap.Error(err))
			return nil, err
		}
		if ok {
			inserted++
		} else {
			duplicates++
		}
	}

	s.logger.Info("batch ingested",
		zap.String("batch_id", batch.BatchID),
		zap.String("batch_name", batch.BatchName),
		zap.Int("matched", parsed.Matched),
		zap.Int("skipped", parsed.Skipped),
		zap.Int("inserted", inserted),
		zap.Int("duplicates", duplicates),
	)

	return &dto.GenerateResponse{
		Records:      toRecordsDTO(GroupPunches(parsed.Punches)),
		AlreadySaved: false,
		BatchID:      batch.BatchID,
		RecordCount:  parsed.Matched,
		SkippedLines: parsed.Skipped,
		Inserted:     inserted,
		Duplicates:   duplicates,
	}, nil
}

// classifyStatus snapshots the employment status at first insert. The
// roster is static configuration; later edits never reclassify stored rows.
func (s *dtrService) classifyStatus(name string) string {
	if s.roster[name] {
		return model.StatusPermanent
	}
	return model.StatusJobOrder
}

// ────────────────────── Batches ──────────────────────

func (s *dtrService) ListBatches(ctx context.Context, page, pageSize int) ([]dto.BatchSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 15
	}

	batches, total, err := s.repo.Batch.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("batch list failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.BatchSummary, 0, len(batches))
	for i := range batches {
		result = append(result, dto.BatchSummary{
			BatchID:     batches[i].BatchID,
			BatchName:   batches[i].BatchName,
			RecordCount: batches[i].RecordCount,
			CreatedAt:   batches[i].CreatedAt.Format(time.RFC3339),
		})
	}
	return result, total, nil
}

func (s *dtrService) GetBatchRaw(ctx context.Context, id string) (*dto.BatchRawResponse, error) {
	batch, err := s.repo.Batch.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		s.logger.Error("batch lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.BatchRawResponse{
		BatchID:   batch.BatchID,
		BatchName: batch.BatchName,
		RawLog:    batch.RawLog,
	}, nil
}

// ────────────────────── Calendar reconstruction ──────────────────────

func (s *dtrService) GetEmployeeCalendar(ctx context.Context, name string, month, year int, status string) (*dto.EmployeeCalendar, error) {
	var refs []repository.MonthRef
	if month == 0 || year == 0 {
		var err error
		refs, err = s.repo.Record.DistinctMonths(ctx, name, status)
		if err != nil {
			s.logger.Error("month listing failed", zap.String("employee", name), zap.Error(err))
			return nil, err
		}
	} else {
		refs = []repository.MonthRef{{Year: year, Month: month}}
	}

	months := make([]dto.MonthGroup, 0, len(refs))
	for _, ref := range refs {
		recs, err := s.repo.Record.ListByEmployeeMonth(ctx, name, ref.Year, ref.Month, status)
		if err != nil {
			s.logger.Error("punch query failed", zap.String("employee", name), zap.Error(err))
			return nil, err
		}
		months = append(months, buildMonthGroup(ref.Year, ref.Month, recs))
	}

	empStatus, err := s.repo.Record.GetEmployeeStatus(ctx, name)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeCalendar{
		EmployeeName:     name,
		EmploymentStatus: empStatus,
		Months:           months,
	}, nil
}

func (s *dtrService) ListEmployees(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeEntry, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 15
	}

	month, year := req.Month, req.Year
	if month == 0 || year == 0 {
		now := time.Now()
		month, year = int(now.Month()), now.Year()
	}

	rows, total, err := s.repo.Record.DistinctEmployees(ctx, req.Search, req.Status, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("employee list failed", zap.Error(err))
		return nil, 0, err
	}

	// One pre-grouped punch query per employee for the current page; the
	// dense month view is assembled in memory, never one query per day.
	entries := make([]dto.EmployeeEntry, 0, len(rows))
	for _, row := range rows {
		recs, err := s.repo.Record.ListByEmployeeMonth(ctx, row.EmployeeName, year, month, req.Status)
		if err != nil {
			s.logger.Error("punch query failed", zap.String("employee", row.EmployeeName), zap.Error(err))
			return nil, 0, err
		}
		entries = append(entries, dto.EmployeeEntry{
			EmployeeName:     row.EmployeeName,
			EmploymentStatus: row.EmploymentStatus,
			Calendar:         buildMonthGroup(year, month, recs),
		})
	}

	return entries, total, nil
}

// buildMonthGroup assembles the dense day-by-day view of one month: every
// calendar day appears exactly once (leap years included), carrying that
// day's sorted punches and classified duty slots, or empty values when the
// day has no punches.
func buildMonthGroup(year, month int, recs []model.DTRRecord) dto.MonthGroup {
	byDate := make(map[string][]Punch)
	for i := range recs {
		// Stored times are HH:MM, but parse rather than slice so an
		// unpadded or truncated value cannot panic the reconstruction.
		t, err := time.Parse("15:04", strings.TrimSpace(recs[i].LogTime))
		if err != nil {
			continue
		}
		key := recs[i].LogDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], Punch{Time24: t.Format("15:04"), Hour24: t.Hour()})
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]dto.DayRecord, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		key := date.Format("2006-01-02")
		logs := byDate[key]
		slots := ClassifySlots(logs)

		punchLogs := make([]dto.PunchLog, 0, len(logs))
		for _, log := range logs {
			punchLogs = append(punchLogs, dto.PunchLog{Time24: log.Time24, Hour24: log.Hour24})
		}

		days = append(days, dto.DayRecord{
			Date:     key,
			Weekday:  date.Format("Mon"),
			Logs:     punchLogs,
			CheckIn:  slots.CheckIn,
			BreakOut: slots.BreakOut,
			BreakIn:  slots.BreakIn,
			CheckOut: slots.CheckOut,
		})
	}

	return dto.MonthGroup{
		Label: first.Format("January 2006"),
		Year:  year,
		Month: month,
		Days:  days,
	}
}

// toRecordsDTO converts grouped punches into the nested review structure.
func toRecordsDTO(grouped map[string]map[string]map[string][]Punch) map[string]map[string]map[string]dto.DayLogs {
	out := make(map[string]map[string]map[string]dto.DayLogs, len(grouped))
	for name, months := range grouped {
		outMonths := make(map[string]map[string]dto.DayLogs, len(months))
		for monthKey, days := range months {
			outDays := make(map[string]dto.DayLogs, len(days))
			for dateKey, logs := range days {
				punchLogs := make([]dto.PunchLog, 0, len(logs))
				for _, log := range logs {
					punchLogs = append(punchLogs, dto.PunchLog{Time24: log.Time24, Hour24: log.Hour24})
				}
				outDays[dateKey] = dto.DayLogs{Logs: punchLogs}
			}
			outMonths[monthKey] = outDays
		}
		out[name] = outMonths
	}
	return out
}
