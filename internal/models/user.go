package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin        Role = "admin"
	RolePsychiatrist Role = "psychiatrist"
	RolePatient      Role = "patient"
	RoleInternal     Role = "internal_management"
)

// User represents a user in the system
type User struct {
	BaseModel
	FullName       string     `gorm:"size:100" json:"fullName"`
	Email          string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string     `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Phone          string     `gorm:"size:20" json:"phone,omitempty"`
	Address        string     `gorm:"size:255" json:"address,omitempty"`
	Gender         string     `gorm:"size:10" json:"gender,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Role           Role       `gorm:"size:30;default:'patient'" json:"role"`
	ProfilePicture string     `gorm:"size:255" json:"profilePicture,omitempty"`

	// Relations (not always preloaded)
	PatientProfile          *PatientProfile      `gorm:"foreignKey:UserID" json:"patientProfile,omitempty"`
	PsychiatristProfile     *PsychiatristProfile `gorm:"foreignKey:UserID" json:"psychiatristProfile,omitempty"`
	PatientAppointments     []Appointment        `gorm:"foreignKey:PatientID" json:"-"`
	PsychiatristAppointments []Appointment       `gorm:"foreignKey:PsychiatristID" json:"-"`
	DepressionForms         []DepressionForm     `gorm:"foreignKey:PatientID" json:"-"`
	Sessions                []UserSession        `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	Gender         string     `json:"gender,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Role           Role       `json:"role"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		Address:        u.Address,
		Gender:         u.Gender,
		DateOfBirth:    u.DateOfBirth,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// UserSession records a login/logout pair for auditing
type UserSession struct {
	BaseModel
	UserID     string     `gorm:"size:36;index" json:"userId"`
	LoginTime  time.Time  `json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime,omitempty"`
	IPAddress  string     `gorm:"size:45" json:"ipAddress,omitempty"`
}
