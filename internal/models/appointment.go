package models

import (
	"time"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Terminal reports whether no further status transitions are allowed.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a scheduled session between a patient and a psychiatrist
type Appointment struct {
	BaseModel
	PatientID      string            `gorm:"size:36;index" json:"patientId"`
	PsychiatristID string            `gorm:"size:36;index" json:"psychiatristId"`
	ScheduledTime  time.Time         `gorm:"index" json:"scheduledTime"`
	Status         AppointmentStatus `gorm:"size:20;default:'Scheduled'" json:"status"`
	MeetingLink    string            `gorm:"size:255" json:"meetingLink,omitempty"`

	// Intake fields captured at booking time
	PreviousDiagnosis bool   `gorm:"default:false" json:"previousDiagnosis"`
	Symptoms          string `gorm:"type:text" json:"symptoms,omitempty"`
	ShortDescription  string `gorm:"size:255" json:"shortDescription,omitempty"`

	// Relations
	Patient      User `gorm:"foreignKey:PatientID" json:"-"`
	Psychiatrist User `gorm:"foreignKey:PsychiatristID" json:"-"`
}
