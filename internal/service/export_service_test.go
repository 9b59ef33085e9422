package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/dto"
)

func newTestExportService(t *testing.T) (ExportService, DTRService) {
	t.Helper()

	dtrSvc, _, _, _ := newTestDTRService()
	_, err := dtrSvc.Generate(context.Background(), &dto.GenerateRequest{
		LogText: "juandelacruz 3/5/2025 08:00 AM\n" +
			"juandelacruz 3/5/2025 12:01 PM\n" +
			"juandelacruz 3/5/2025 12:40 PM\n" +
			"juandelacruz 3/5/2025 05:00 PM",
		BatchName: "export fixture",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	return NewExportService(&config.ExportConfig{}, dtrSvc, zap.NewNop()), dtrSvc
}

func TestExportExcel(t *testing.T) {
	svc, _ := newTestExportService(t)

	buf, filename, err := svc.ExportExcel(context.Background(), "JUAN DELA CRUZ", 3, 2025)
	if err != nil {
		t.Fatalf("ExportExcel: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty workbook")
	}
	if filename != "DTR_JUAN_DELA_CRUZ_2025-03.xlsx" {
		t.Errorf("filename = %q", filename)
	}
	// xlsx files are zip archives.
	if got := buf.Bytes()[:2]; got[0] != 'P' || got[1] != 'K' {
		t.Errorf("workbook does not start with zip magic: %v", got)
	}
}

func TestExportPDF(t *testing.T) {
	svc, _ := newTestExportService(t)

	buf, filename, err := svc.ExportPDF(context.Background(), "JUAN DELA CRUZ", 3, 2025)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if filename != "DTR_JUAN_DELA_CRUZ_2025-03.pdf" {
		t.Errorf("filename = %q", filename)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output does not start with PDF magic")
	}
}

func TestExportICS(t *testing.T) {
	svc, _ := newTestExportService(t)

	buf, filename, err := svc.ExportICS(context.Background(), "JUAN DELA CRUZ", 3, 2025)
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	if filename != "DTR_JUAN_DELA_CRUZ_2025-03.ics" {
		t.Errorf("filename = %q", filename)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("missing VCALENDAR envelope")
	}
	// Only 2025-03-05 has both a check-in and a check-out.
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("events = %d, want 1", got)
	}
	if !strings.Contains(out, "SUMMARY:Duty: JUAN DELA CRUZ") {
		t.Error("missing duty summary")
	}
}

func TestExportEmptyMonthStillRenders(t *testing.T) {
	svc, _ := newTestExportService(t)

	// No punches in April; the form renders with empty duty columns.
	buf, _, err := svc.ExportExcel(context.Background(), "JUAN DELA CRUZ", 4, 2025)
	if err != nil {
		t.Fatalf("ExportExcel empty month: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty workbook for empty month")
	}

	ics, _, err := svc.ExportICS(context.Background(), "JUAN DELA CRUZ", 4, 2025)
	if err != nil {
		t.Fatalf("ExportICS empty month: %v", err)
	}
	if strings.Contains(ics.String(), "BEGIN:VEVENT") {
		t.Error("empty month should produce no events")
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("JUAN DELA-CRUZ Q."); got != "JUAN_DELA-CRUZ_Q" {
		t.Errorf("sanitizeFilename = %q", got)
	}
}
