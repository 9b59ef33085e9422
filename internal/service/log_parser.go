package service

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ── Raw log parsing ─────────────────────────────────────────
//
// A dump is a blob of lines shaped like
//
//	danielrabaradomingo 10/01/2025 12:26:22 PM
//
// Each line splits at the first date+time token: everything before it is the
// raw name, the token itself is the punch timestamp. Lines that do not match
// are skipped individually and reported in the summary; a single bad line
// never fails the batch. Lines from different employees may interleave
// freely.
// ─────────────────────────────────────────────────────────────

// lineBoundaryRe locates the first date+time token in a line. The name is
// whatever precedes it.
var lineBoundaryRe = regexp.MustCompile(`(?i)^(.*?)\s+(\d{1,2}/\d{1,2}/\d{4}\s+\d{1,2}:\d{2}(?::\d{2})?\s*(?:AM|PM)?)`)

// dateTimeRe breaks the date+time token into fixed numeric groups.
var dateTimeRe = regexp.MustCompile(`(?i)(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})(?::(\d{2}))?\s*(AM|PM)?`)

// Punch is one parsed attendance event in canonical form.
type Punch struct {
	EmployeeName string // canonical, from the normalizer
	DateKey      string // YYYY-MM-DD
	MonthKey     string // YYYY-MM
	Time24       string // HH:MM
	Hour24       int
}

// LineOutcome records what happened to one input line.
type LineOutcome struct {
	LineNo  int
	Raw     string
	Matched bool
	Punch   *Punch
}

// ParseResult is the structured output of one dump.
type ParseResult struct {
	Punches  []Punch
	Outcomes []LineOutcome
	Matched  int
	Skipped  int
}

// LogParser extracts punches from raw dump text.
type LogParser struct {
	normalizer *NameNormalizer
}

// NewLogParser creates a parser over the given normalizer.
func NewLogParser(normalizer *NameNormalizer) *LogParser {
	return &LogParser{normalizer: normalizer}
}

// Parse runs the full extraction over a dump. Identical text always yields
// identical output; blank lines are ignored entirely and do not count as
// skipped.
func (p *LogParser) Parse(rawText string) *ParseResult {
	result := &ParseResult{}

	for i, line := range strings.Split(strings.TrimSpace(rawText), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		punch, ok := p.parseLine(line)
		outcome := LineOutcome{LineNo: i + 1, Raw: line, Matched: ok, Punch: punch}
		result.Outcomes = append(result.Outcomes, outcome)

		if !ok {
			result.Skipped++
			continue
		}
		result.Matched++
		result.Punches = append(result.Punches, *punch)
	}

	return result
}

// parseLine splits one line at the date+time boundary and converts the
// timestamp to 24h form.
func (p *LogParser) parseLine(line string) (*Punch, bool) {
	mLine := lineBoundaryRe.FindStringSubmatch(line)
	if mLine == nil {
		return nil, false
	}

	name := p.normalizer.Normalize(strings.TrimSpace(mLine[1]))
	if name == "" {
		return nil, false
	}

	m := dateTimeRe.FindStringSubmatch(strings.TrimSpace(mLine[2]))
	if m == nil {
		return nil, false
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	ampm := strings.ToUpper(strings.TrimSpace(m[7]))

	hour = to24Hour(hour, ampm)
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return nil, false
	}
	// Reject impossible calendar dates (e.g. 02/30) rather than letting
	// time.Date silently normalize them downstream.
	if t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC); t.Day() != day || int(t.Month()) != month {
		return nil, false
	}

	return &Punch{
		EmployeeName: name,
		DateKey:      fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		MonthKey:     fmt.Sprintf("%04d-%02d", year, month),
		Time24:       fmt.Sprintf("%02d:%02d", hour, minute),
		Hour24:       hour,
	}, true
}

// to24Hour converts an hour with optional AM/PM marker to 24h form.
// PM adds 12 unless the hour is already >= 12; AM forces 12 to 0. Hours
// without a marker pass through unchanged.
func to24Hour(hour int, ampm string) int {
	if ampm == "PM" && hour < 12 {
		return hour + 12
	}
	if ampm == "AM" && hour == 12 {
		return 0
	}
	return hour
}

// GroupPunches arranges punches as employee → month → date with each day's
// punch list sorted ascending by time. This is the shape the review UI and
// the slot classifier both consume.
func GroupPunches(punches []Punch) map[string]map[string]map[string][]Punch {
	grouped := make(map[string]map[string]map[string][]Punch)
	for _, punch := range punches {
		months, ok := grouped[punch.EmployeeName]
		if !ok {
			months = make(map[string]map[string][]Punch)
			grouped[punch.EmployeeName] = months
		}
		days, ok := months[punch.MonthKey]
		if !ok {
			days = make(map[string][]Punch)
			months[punch.MonthKey] = days
		}
		days[punch.DateKey] = append(days[punch.DateKey], punch)
	}

	for _, months := range grouped {
		for _, days := range months {
			for _, logs := range days {
				sort.Slice(logs, func(i, j int) bool { return logs[i].Time24 < logs[j].Time24 })
			}
		}
	}

	return grouped
}
