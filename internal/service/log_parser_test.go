package service

import (
	"reflect"
	"testing"
)

func newTestParser() *LogParser {
	return NewLogParser(newTestNormalizer())
}

func TestParseExtractsPunch(t *testing.T) {
	p := newTestParser()

	result := p.Parse("danielrabaradomingo 10/01/2025 12:26:22 PM")
	if result.Matched != 1 || result.Skipped != 0 {
		t.Fatalf("matched=%d skipped=%d, want 1/0", result.Matched, result.Skipped)
	}

	punch := result.Punches[0]
	if punch.EmployeeName != "DANIEL RABARA DOMINGO" {
		t.Errorf("EmployeeName = %q", punch.EmployeeName)
	}
	if punch.DateKey != "2025-10-01" || punch.MonthKey != "2025-10" {
		t.Errorf("DateKey=%q MonthKey=%q", punch.DateKey, punch.MonthKey)
	}
	if punch.Time24 != "12:26" || punch.Hour24 != 12 {
		t.Errorf("Time24=%q Hour24=%d, want 12:26/12", punch.Time24, punch.Hour24)
	}
}

func TestParseAMPMConversion(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		line string
		want string
	}{
		{"juandelacruz 3/5/2025 12:30 AM", "00:30"}, // midnight hour
		{"juandelacruz 3/5/2025 12:30 PM", "12:30"}, // noon stays 12
		{"juandelacruz 3/5/2025 11:59 PM", "23:59"},
		{"juandelacruz 3/5/2025 1:05 PM", "13:05"},
		{"juandelacruz 3/5/2025 8:00 AM", "08:00"},
		{"juandelacruz 3/5/2025 13:45", "13:45"}, // no marker passes through
	}
	for _, tt := range tests {
		result := p.Parse(tt.line)
		if result.Matched != 1 {
			t.Errorf("Parse(%q): matched=%d, want 1", tt.line, result.Matched)
			continue
		}
		if got := result.Punches[0].Time24; got != tt.want {
			t.Errorf("Parse(%q): Time24=%q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	p := newTestParser()

	raw := "juandelacruz 10/01/2025 08:15 AM\n" +
		"this line has no timestamp\n" +
		"\n" +
		"mariacruzjuan 10/01/2025 05:10 PM\n" +
		"13/45/2025 08:00 AM orphan"
	result := p.Parse(raw)

	if result.Matched != 2 {
		t.Errorf("Matched = %d, want 2", result.Matched)
	}
	// Blank lines vanish; the two bad lines are reported as skipped.
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
	if len(result.Outcomes) != 4 {
		t.Errorf("Outcomes = %d, want 4", len(result.Outcomes))
	}
}

func TestParseRejectsImpossibleDates(t *testing.T) {
	p := newTestParser()

	for _, line := range []string{
		"juandelacruz 02/30/2025 08:00 AM",
		"juandelacruz 04/31/2025 08:00 AM",
		"juandelacruz 02/29/2025 08:00 AM", // 2025 is not a leap year
	} {
		if result := p.Parse(line); result.Matched != 0 {
			t.Errorf("Parse(%q) matched, want skipped", line)
		}
	}

	// 2024 is a leap year.
	if result := p.Parse("juandelacruz 02/29/2024 08:00 AM"); result.Matched != 1 {
		t.Errorf("Parse(02/29/2024) skipped, want matched")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	p := newTestParser()

	raw := "juandelacruz 10/01/2025 08:15 AM\nmariacruzjuan 10/01/2025 05:10 PM"
	first := p.Parse(raw)
	second := p.Parse(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not deterministic for identical input")
	}
}

func TestGroupPunchesSortsWithinDay(t *testing.T) {
	p := newTestParser()

	raw := "juandelacruz 10/01/2025 05:10 PM\njuandelacruz 10/01/2025 08:15 AM"
	result := p.Parse(raw)

	grouped := GroupPunches(result.Punches)
	logs := grouped["JUAN DELA CRUZ"]["2025-10"]["2025-10-01"]
	if len(logs) != 2 {
		t.Fatalf("day logs = %d, want 2", len(logs))
	}
	if logs[0].Time24 != "08:15" || logs[1].Time24 != "17:10" {
		t.Errorf("day logs out of order: %q, %q", logs[0].Time24, logs[1].Time24)
	}
}
