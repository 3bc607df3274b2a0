package models

import (
	"time"
)

// PaymentStatus enumerates the states of a patient payment
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentFailed  PaymentStatus = "Failed"
)

// PatientPayment records a payment made by a patient for an appointment
type PatientPayment struct {
	BaseModel
	PatientID     string        `gorm:"size:36;index" json:"patientId"`
	AppointmentID string        `gorm:"size:36;index" json:"appointmentId"`
	Amount        float64       `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentDate   time.Time     `json:"paymentDate"`
	PaymentStatus PaymentStatus `gorm:"size:10;default:'Pending'" json:"paymentStatus"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}

// SalaryStatus enumerates the states of a psychiatrist salary record
type SalaryStatus string

const (
	SalaryPaid    SalaryStatus = "Paid"
	SalaryPending SalaryStatus = "Pending"
)

// PsychiatristSalary records one month of salary for a psychiatrist
type PsychiatristSalary struct {
	BaseModel
	PsychiatristID string       `gorm:"size:36;index" json:"psychiatristId"`
	Month          string       `gorm:"size:10" json:"month"`
	Year           int          `json:"year"`
	Amount         float64      `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentStatus  SalaryStatus `gorm:"size:10;default:'Pending'" json:"paymentStatus"`
	ProcessedAt    time.Time    `json:"processedAt"`

	Psychiatrist User `gorm:"foreignKey:PsychiatristID" json:"-"`
}
