package dto

// GenerateRequest is one raw attendance dump submission.
type GenerateRequest struct {
	LogText   string `json:"log_text"`
	BatchName string `json:"batch_name"`
}

// PunchLog is one parsed punch in canonical 24h form.
type PunchLog struct {
	Time24 string `json:"time24"` // HH:MM
	Hour24 int    `json:"hour24"`
}

// DayLogs groups the punches of one (employee, date).
type DayLogs struct {
	Logs []PunchLog `json:"logs"`
}

// GenerateResponse reports the outcome of an ingestion.
// Records is keyed employee → YYYY-MM → YYYY-MM-DD, matching the review UI.
type GenerateResponse struct {
	Records      map[string]map[string]map[string]DayLogs `json:"records"`
	AlreadySaved bool                                     `json:"already_saved"`
	BatchID      string                                   `json:"batch_id"`
	RecordCount  int                                      `json:"record_count"`
	SkippedLines int                                      `json:"skipped_lines"`
	Inserted     int                                      `json:"inserted"`
	Duplicates   int                                      `json:"duplicates"`
}

// BatchSummary is one row of the upload history listing.
type BatchSummary struct {
	BatchID     string `json:"batch_id"`
	BatchName   string `json:"batch_name"`
	RecordCount int    `json:"record_count"`
	CreatedAt   string `json:"created_at"`
}

// BatchRawResponse returns a batch's original text for reprocessing.
type BatchRawResponse struct {
	BatchID   string `json:"batch_id"`
	BatchName string `json:"batch_name"`
	RawLog    string `json:"raw_log"`
}

// DayRecord is the derived duty record of one calendar day. Days with no
// punches appear with empty slots; the calendar is always dense.
type DayRecord struct {
	Date     string     `json:"date"`    // YYYY-MM-DD
	Weekday  string     `json:"weekday"` // Mon..Sun
	Logs     []PunchLog `json:"logs"`
	CheckIn  string     `json:"check_in"`
	BreakOut string     `json:"break_out"`
	BreakIn  string     `json:"break_in"`
	CheckOut string     `json:"check_out"`
}

// MonthGroup is the dense day-by-day view of one employee month.
type MonthGroup struct {
	Label string      `json:"label"` // e.g. "March 2025"
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Days  []DayRecord `json:"days"`
}

// EmployeeCalendar is the calendar view of one employee. When no specific
// month is requested, Months covers every year-month on file.
type EmployeeCalendar struct {
	EmployeeName     string       `json:"employee_name"`
	EmploymentStatus string       `json:"employment_status"`
	Months           []MonthGroup `json:"months"`
}

// EmployeeListRequest filters for the employee browsing view.
type EmployeeListRequest struct {
	Search   string `form:"search"`
	Month    int    `form:"month"`
	Year     int    `form:"year"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=15"`
}

// EmployeeEntry is one employee on the browsing page, with the dense
// calendar for the requested month attached.
type EmployeeEntry struct {
	EmployeeName     string     `json:"employee_name"`
	EmploymentStatus string     `json:"employment_status"`
	Calendar         MonthGroup `json:"calendar"`
}
