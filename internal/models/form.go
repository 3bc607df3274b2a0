package models

import (
	"time"
)

// ScoreType enumerates how a form question is scored
type ScoreType string

const (
	ScoreTypeLikert ScoreType = "Likert"
	ScoreTypeBinary ScoreType = "Binary"
	ScoreTypeScale  ScoreType = "Scale"
)

// FormQuestion is one question of the depression self-assessment questionnaire
type FormQuestion struct {
	BaseModel
	QuestionText string    `gorm:"type:text;not null" json:"questionText"`
	ScoreType    ScoreType `gorm:"size:10;not null" json:"scoreType"`
}

// DepressionForm is a single submitted self-assessment
type DepressionForm struct {
	BaseModel
	PatientID  string    `gorm:"size:36;index" json:"patientId"`
	FilledAt   time.Time `json:"filledAt"`
	TotalScore int       `json:"totalScore"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient   User           `gorm:"foreignKey:PatientID" json:"-"`
	Responses []FormResponse `gorm:"foreignKey:FormID" json:"responses,omitempty"`
}

// FormResponse is one answer within a submitted assessment
type FormResponse struct {
	BaseModel
	FormID        string `gorm:"size:36;index" json:"formId"`
	QuestionID    string `gorm:"size:36;index" json:"questionId"`
	ResponseValue int    `json:"responseValue"`

	Question FormQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
