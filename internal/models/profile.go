package models

// PatientProfile holds the intake details kept alongside a patient's user record
type PatientProfile struct {
	BaseModel
	UserID            string `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	PreviousDiagnosis bool   `gorm:"default:false" json:"previousDiagnosis"`
	Symptoms          string `gorm:"type:text" json:"symptoms,omitempty"`
	ShortDescription  string `gorm:"size:255" json:"shortDescription,omitempty"`
}

// PsychiatristProfile holds the professional details of a psychiatrist
type PsychiatristProfile struct {
	BaseModel
	UserID            string `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	LicenseNumber     string `gorm:"size:50;uniqueIndex" json:"licenseNumber"`
	Qualifications    string `gorm:"type:text" json:"qualifications,omitempty"`
	Specialization    string `gorm:"size:100" json:"specialization,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Bio               string `gorm:"type:text" json:"bio,omitempty"`
	Available         bool   `gorm:"default:true" json:"available"`
}
