package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/dto"
)

// ── Export module business errors ──

var (
	ErrExportGenerateFail = errors.New("document rendering failed")
	ErrExportTimeout      = errors.New("document rendering timed out")
)

// ExportService renders one employee month as a downloadable document.
//
// All three formats are fed by the same dense, zero-filled calendar the
// reconstructor produces: a month with no punches still renders a complete
// form with empty duty columns. The renderers are blocking; every render
// runs under the configured timeout.
type ExportService interface {
	// ExportExcel renders the month as an .xlsx sheet, one row per day.
	ExportExcel(ctx context.Context, employee string, month, year int) (*bytes.Buffer, string, error)
	// ExportPDF renders the civil-service DTR form, two copies per page.
	ExportPDF(ctx context.Context, employee string, month, year int) (*bytes.Buffer, string, error)
	// ExportICS renders the month as an iCalendar feed, one event per
	// day that has both a check-in and a check-out.
	ExportICS(ctx context.Context, employee string, month, year int) (*bytes.Buffer, string, error)
}

type exportService struct {
	dtrSvc        DTRService
	renderTimeout time.Duration
	logger        *zap.Logger
}

// NewExportService creates an ExportService over the calendar reconstructor.
func NewExportService(cfg *config.ExportConfig, dtrSvc DTRService, logger *zap.Logger) ExportService {
	timeout := cfg.RenderTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &exportService{dtrSvc: dtrSvc, renderTimeout: timeout, logger: logger}
}

// render runs a blocking renderer under the caller-side timeout.
func (s *exportService) render(ctx context.Context, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ErrExportTimeout
	}
}

// monthCalendar loads the dense single-month view used by all renderers.
func (s *exportService) monthCalendar(ctx context.Context, employee string, month, year int) (*dto.MonthGroup, error) {
	cal, err := s.dtrSvc.GetEmployeeCalendar(ctx, employee, month, year, "")
	if err != nil {
		return nil, err
	}
	// A specific month/year always yields exactly one group.
	return &cal.Months[0], nil
}

// twelveHour converts a canonical HH:MM to the 12-hour display form used on
// the printed form (no AM/PM suffix, matching the official template).
func twelveHour(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04")
}

// ────────────────────── Excel ──────────────────────

func (s *exportService) ExportExcel(ctx context.Context, employee string, month, year int) (*bytes.Buffer, string, error) {
	group, err := s.monthCalendar(ctx, employee, month, year)
	if err != nil {
		return nil, "", err
	}

	var buf *bytes.Buffer
	renderErr := s.render(ctx, func() error {
		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)

		f.SetCellValue(sheet, "A1", "DAILY TIME RECORD")
		f.SetCellValue(sheet, "A2", employee)
		f.SetCellValue(sheet, "A3", group.Label)

		headers := []string{"Day", "Weekday", "Check In", "Break Out", "Break In", "Check Out"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 5)
			f.SetCellValue(sheet, cell, h)
		}

		for i, day := range group.Days {
			row := 6 + i
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), day.Weekday)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), twelveHour(day.CheckIn))
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), twelveHour(day.BreakOut))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), twelveHour(day.BreakIn))
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), twelveHour(day.CheckOut))
		}

		f.SetColWidth(sheet, "A", "F", 12)

		out, err := f.WriteToBuffer()
		if err != nil {
			return err
		}
		buf = out
		return nil
	})
	if renderErr != nil {
		if errors.Is(renderErr, ErrExportTimeout) {
			return nil, "", renderErr
		}
		s.logger.Error("excel render failed", zap.Error(renderErr))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("DTR_%s_%04d-%02d.xlsx", sanitizeFilename(employee), year, month)
	return buf, filename, nil
}

// ────────────────────── PDF ──────────────────────

func (s *exportService) ExportPDF(ctx context.Context, employee string, month, year int) (*bytes.Buffer, string, error) {
	group, err := s.monthCalendar(ctx, employee, month, year)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	renderErr := s.render(ctx, func() error {
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.SetAutoPageBreak(false, 0)
		pdf.AddPage()

		// The official form carries two identical copies per sheet: one
		// for the employee, one for the office file.
		writeDTRTable(pdf, employee, group, 10)
		writeDTRTable(pdf, employee, group, 155)

		return pdf.Output(buf)
	})
	if renderErr != nil {
		if errors.Is(renderErr, ErrExportTimeout) {
			return nil, "", renderErr
		}
		s.logger.Error("pdf render failed", zap.Error(renderErr))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("DTR_%s_%04d-%02d.pdf", sanitizeFilename(employee), year, month)
	return buf, filename, nil
}

// writeDTRTable draws one copy of the DTR form starting at the given
// vertical offset.
func writeDTRTable(pdf *gofpdf.Fpdf, employee string, group *dto.MonthGroup, top float64) {
	const rowH = 3.6

	pdf.SetXY(10, top)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(190, 4.5, "DAILY TIME RECORD", "", 1, "C", false, 0, "")
	pdf.SetX(10)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(190, 4, employee, "", 1, "C", false, 0, "")
	pdf.SetX(10)
	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(190, 4, "For the month of "+group.Label, "", 1, "C", false, 0, "")

	pdf.SetX(10)
	pdf.SetFont("Arial", "B", 6.5)
	widths := []float64{10, 14, 18, 18, 18, 18}
	headers := []string{"Day", "", "Arrival", "Departure", "Arrival", "Departure"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], rowH, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 6.5)
	for i, day := range group.Days {
		pdf.SetX(10)
		pdf.CellFormat(widths[0], rowH, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], rowH, day.Weekday, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], rowH, twelveHour(day.CheckIn), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], rowH, twelveHour(day.BreakOut), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], rowH, twelveHour(day.BreakIn), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], rowH, twelveHour(day.CheckOut), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
}

// ────────────────────── iCalendar ──────────────────────

func (s *exportService) ExportICS(ctx context.Context, employee string, month, year int) (*bytes.Buffer, string, error) {
	group, err := s.monthCalendar(ctx, employee, month, year)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	renderErr := s.render(ctx, func() error {
		cal := ics.NewCalendar()
		cal.SetMethod(ics.MethodPublish)
		cal.SetProductId("-//dtr-denr//DTR Export//EN")

		now := time.Now()
		for _, day := range group.Days {
			if day.CheckIn == "" || day.CheckOut == "" {
				continue
			}

			start, err := time.Parse("2006-01-02 15:04", day.Date+" "+day.CheckIn)
			if err != nil {
				continue
			}
			end, err := time.Parse("2006-01-02 15:04", day.Date+" "+day.CheckOut)
			if err != nil {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%s@dtr-denr", sanitizeFilename(employee), day.Date))
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary("Duty: " + employee)
		}

		buf.WriteString(cal.Serialize())
		return nil
	})
	if renderErr != nil {
		if errors.Is(renderErr, ErrExportTimeout) {
			return nil, "", renderErr
		}
		s.logger.Error("ics render failed", zap.Error(renderErr))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("DTR_%s_%04d-%02d.ics", sanitizeFilename(employee), year, month)
	return buf, filename, nil
}

// sanitizeFilename makes an employee name safe for a download filename.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
}
