package report

// Rating is the qualitative label derived from the four employee metrics.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingBad       Rating = "bad"
	RatingVeryBad   Rating = "very_bad"
)

// Metrics are the inputs to report generation.
type Metrics struct {
	PerformanceScore int
	WorkedHours      float64
	TotalLeaveTaken  int
	OvertimeApproved float64
}

type UpdateReportResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Report string `json:"report"`
}

type UpdateAllReportsResponse struct {
	Count int `json:"count"`
}

type ReportAnalysisResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	WorkedHours      float64 `json:"workedHours"`
	PerformanceScore int     `json:"performanceScore"`
	TotalLeaveTaken  int     `json:"totalLeaveTaken"`
	OvertimeApproved float64 `json:"overtimeApproved"`
	CurrentReport    string  `json:"currentReport"`
	GeneratedRating  string  `json:"generatedRating"`
	GeneratedReport  string  `json:"generatedReport"`
}
