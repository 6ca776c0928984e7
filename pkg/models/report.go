package models

// ReportType selects the default date window for a generated report.
type ReportType string

const (
	ReportTypeDaily   ReportType = "daily"
	ReportTypeWeekly  ReportType = "weekly"
	ReportTypeMonthly ReportType = "monthly"
	ReportTypeAnnual  ReportType = "annual"
)

// ReportSummary counts records by status within the report window. Total is
// every record in the window regardless of status, so the per-status counts
// do not have to sum to it.
type ReportSummary struct {
	Total      int `json:"total" db:"total"`
	Unresolved int `json:"unresolved" db:"unresolved"`
	InProgress int `json:"inProgress" db:"in_progress"`
	Resolved   int `json:"resolved" db:"resolved"`
	Archived   int `json:"archived" db:"archived"`
}

// ChartPoint is one calendar day of per-status counts.
type ChartPoint struct {
	Date       string `json:"date" db:"date"`
	Unresolved int    `json:"unresolved" db:"unresolved"`
	InProgress int    `json:"inProgress" db:"in_progress"`
	Resolved   int    `json:"resolved" db:"resolved"`
	Archived   int    `json:"archived" db:"archived"`
}

// TopIssue is a recurring report title and how often it appears.
type TopIssue struct {
	Title string `json:"title" db:"title"`
	Count int    `json:"count" db:"count"`
}

// ReportData is the full analytics payload for the reports dashboard.
type ReportData struct {
	Summary   ReportSummary `json:"summary"`
	ChartData []ChartPoint  `json:"chartData"`
	TopIssues []TopIssue    `json:"topIssues"`
}

// ExportResponse carries a rendered CSV document back to the caller.
type ExportResponse struct {
	Data        string `json:"data"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}
