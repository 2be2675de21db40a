package models

// MetricsBucket is one hour-truncated point in the access trend series
type MetricsBucket struct {
	Bucket     string `db:"BUCKET" json:"bucket"`
	Authorized int    `db:"AUTHORIZED" json:"authorized"`
	Breaches   int    `db:"BREACHES" json:"breaches"`
}

// MetricsOverview aggregates access and alert activity over a time window
type MetricsOverview struct {
	SinceMinutes       int             `json:"since_minutes"`
	TotalAccesses      int             `json:"total_accesses"`
	AuthorizedAccesses int             `json:"authorized_accesses"`
	Breaches           int             `json:"breaches"`
	OpenAlerts         int             `json:"open_alerts"`
	CompliancePct      float64         `json:"compliance_pct"`
	Series             []MetricsBucket `json:"series"`
}

// ConsentMatrixEntry is one cell of the user-by-patient permission grid
type ConsentMatrixEntry struct {
	UserID      int64  `json:"user_id"`
	UserName    string `json:"user_name"`
	Role        string `json:"role"`
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
	CanView     bool   `json:"can_view"`
	CanEdit     bool   `json:"can_edit"`
}

// AuditReport is the JSON audit summary consumed by the reporting dashboard
type AuditReport struct {
	GeneratedOn  string           `json:"generated_on"`
	TimeWindow   string           `json:"time_window"`
	Metrics      *MetricsOverview `json:"metrics"`
	RecentAlerts []Alert          `json:"recent_alerts"`
}
