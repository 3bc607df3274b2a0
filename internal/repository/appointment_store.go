package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"depresscare-server/internal/models"
	"depresscare-server/internal/services/appointment"
)

// AppointmentStore is the gorm-backed appointment collaborator. InTx wraps a
// database transaction so the booking conflict check and insert cannot race
// against a concurrent booking for the same psychiatrist.
type AppointmentStore struct {
	DB *gorm.DB
}

// NewAppointmentStore creates an AppointmentStore.
func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{DB: db}
}

// ByID fetches an appointment by primary key, (nil, nil) when absent.
func (s *AppointmentStore) ByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.DB.WithContext(ctx).First(&appt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// CountOverlapping counts appointments for the psychiatrist whose scheduled
// time falls inside [from, to] and whose status is not in excluding.
func (s *AppointmentStore) CountOverlapping(ctx context.Context, psychiatristID string, from, to time.Time, excluding []models.AppointmentStatus) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("psychiatrist_id = ?", psychiatristID).
		Where("scheduled_time BETWEEN ? AND ?", from, to).
		Where("status NOT IN ?", excluding).
		Count(&count).Error
	return count, err
}

// Create inserts a new appointment.
func (s *AppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	return s.DB.WithContext(ctx).Create(appt).Error
}

// Save persists changes to an existing appointment.
func (s *AppointmentStore) Save(ctx context.Context, appt *models.Appointment) error {
	return s.DB.WithContext(ctx).Save(appt).Error
}

// InTx runs fn against a store bound to one database transaction.
func (s *AppointmentStore) InTx(ctx context.Context, fn func(appointment.AppointmentStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentStore{DB: tx})
	})
}
