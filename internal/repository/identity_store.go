package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"depresscare-server/internal/models"
)

// IdentityStore is the gorm-backed identity collaborator for the appointment
// service. Missing rows are reported as (nil, nil).
type IdentityStore struct {
	DB *gorm.DB
}

// NewIdentityStore creates an IdentityStore.
func NewIdentityStore(db *gorm.DB) *IdentityStore {
	return &IdentityStore{DB: db}
}

// UserByID fetches a user by primary key.
func (s *IdentityStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PsychiatristProfileByUserID fetches the psychiatrist profile attached to a user.
func (s *IdentityStore) PsychiatristProfileByUserID(ctx context.Context, userID string) (*models.PsychiatristProfile, error) {
	var profile models.PsychiatristProfile
	err := s.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
