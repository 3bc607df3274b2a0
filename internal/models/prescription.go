package models

// Prescription is a document a psychiatrist attaches to one of their appointments
type Prescription struct {
	BaseModel
	AppointmentID string `gorm:"size:36;index" json:"appointmentId"`
	UploadedBy    string `gorm:"size:36;index" json:"uploadedBy"`
	DocumentURL   string `gorm:"size:255" json:"documentUrl,omitempty"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}

// Recommendation is free-text advice a psychiatrist leaves for a patient
type Recommendation struct {
	BaseModel
	PsychiatristID string `gorm:"size:36;index" json:"psychiatristId"`
	PatientID      string `gorm:"size:36;index" json:"patientId"`
	Content        string `gorm:"type:text" json:"content"`

	Psychiatrist User `gorm:"foreignKey:PsychiatristID" json:"-"`
	Patient      User `gorm:"foreignKey:PatientID" json:"-"`
}
