package dashboard

// SummaryResponse is the admin "today" widget: headcount split by attendance
// outcome plus pending request queues.
type SummaryResponse struct {
	Date               string `json:"date"`
	ActiveEmployees    int64  `json:"active_employees"`
	Present            int64  `json:"present"`
	Late               int64  `json:"late"`
	NotYetIn           int64  `json:"not_yet_in"`
	Absent             int64  `json:"absent"`
	PendingCorrections int64  `json:"pending_corrections"`
	PendingOvertimes   int64  `json:"pending_overtimes"`
}
