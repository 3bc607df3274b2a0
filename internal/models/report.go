package models

// ReportType enumerates the exportable report kinds
type ReportType string

const (
	ReportUserStats         ReportType = "UserStats"
	ReportAppointmentStats  ReportType = "AppointmentStats"
	ReportAssessmentSummary ReportType = "AssessmentSummary"
)

// Report records metadata about a generated export
type Report struct {
	BaseModel
	ReportType  ReportType `gorm:"size:30" json:"reportType"`
	GeneratedBy string     `gorm:"size:36;index" json:"generatedBy"`
	FileURL     string     `gorm:"size:255" json:"fileUrl,omitempty"`
}
