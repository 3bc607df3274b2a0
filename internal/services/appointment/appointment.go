// Package appointment owns the appointment lifecycle: booking with conflict
// detection, cancellation, and psychiatrist-driven status updates. Persistence,
// identity lookup, meeting links and notifications are collaborators injected
// as interfaces.
package appointment

import (
	"context"
	"fmt"
	"time"

	"depresscare-server/internal/models"
)

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

// IdentityStore resolves users and psychiatrist profiles. Lookups return
// (nil, nil) when the row is absent; a non-nil error always means a storage
// failure.
type IdentityStore interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
	PsychiatristProfileByUserID(ctx context.Context, userID string) (*models.PsychiatristProfile, error)
}

// AppointmentStore persists appointments. ByID returns (nil, nil) when the
// row is absent. InTx runs fn against a transactional view of the store; the
// conflict check and insert during booking always share one transaction.
type AppointmentStore interface {
	ByID(ctx context.Context, id string) (*models.Appointment, error)
	CountOverlapping(ctx context.Context, psychiatristID string, from, to time.Time, excluding []models.AppointmentStatus) (int64, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Save(ctx context.Context, appt *models.Appointment) error
	InTx(ctx context.Context, fn func(AppointmentStore) error) error
}

// LinkGenerator produces opaque meeting links.
type LinkGenerator interface {
	Generate() string
}

// Notifier delivers best-effort notifications. Implementations must not
// block and must swallow their own failures.
type Notifier interface {
	BookingConfirmed(appt *models.Appointment, patient, psychiatrist *models.User)
	AppointmentCancelled(appt *models.Appointment, patient, psychiatrist *models.User)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// BookRequest carries a validated booking request into the service.
type BookRequest struct {
	PatientID         string
	PsychiatristID    string
	ScheduledTime     time.Time
	PreviousDiagnosis bool
	Symptoms          string
	ShortDescription  string
}

// Service coordinates the appointment lifecycle.
type Service struct {
	identities   IdentityStore
	appointments AppointmentStore
	links        LinkGenerator
	notifier     Notifier

	windowBefore time.Duration
	windowAfter  time.Duration
	now          func() time.Time
}

// New creates a Service. windowBefore/windowAfter define the conflict window
// around a candidate slot: an existing active appointment anywhere inside
// [t-windowBefore, t+windowAfter] blocks the booking.
func New(identities IdentityStore, appointments AppointmentStore, links LinkGenerator, notifier Notifier, windowBefore, windowAfter time.Duration) *Service {
	return &Service{
		identities:   identities,
		appointments: appointments,
		links:        links,
		notifier:     notifier,
		windowBefore: windowBefore,
		windowAfter:  windowAfter,
		now:          time.Now,
	}
}

// activeStatuses are the statuses that block a slot. Cancelled and Completed
// appointments never conflict.
var activeStatuses = []models.AppointmentStatus{models.StatusCancelled, models.StatusCompleted}

// Book validates the request, runs the conflict check and insert inside one
// transaction, and dispatches a best-effort confirmation. Precondition checks
// run in a fixed order: psychiatrist, patient, time, slot. New appointments
// start in Scheduled status.
func (s *Service) Book(ctx context.Context, req BookRequest) (*models.Appointment, error) {
	profile, err := s.identities.PsychiatristProfileByUserID(ctx, req.PsychiatristID)
	if err != nil {
		return nil, fmt.Errorf("look up psychiatrist: %w", err)
	}
	if profile == nil {
		return nil, ErrPsychiatristNotFound
	}
	psychiatrist, err := s.identities.UserByID(ctx, req.PsychiatristID)
	if err != nil {
		return nil, fmt.Errorf("look up psychiatrist user: %w", err)
	}
	if psychiatrist == nil {
		return nil, ErrPsychiatristNotFound
	}

	patient, err := s.identities.UserByID(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("look up patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !req.ScheduledTime.After(s.now()) {
		return nil, ErrPastTime
	}

	appt := &models.Appointment{
		PatientID:         req.PatientID,
		PsychiatristID:    req.PsychiatristID,
		ScheduledTime:     req.ScheduledTime,
		Status:            models.StatusScheduled,
		MeetingLink:       s.links.Generate(),
		PreviousDiagnosis: req.PreviousDiagnosis,
		Symptoms:          req.Symptoms,
		ShortDescription:  req.ShortDescription,
	}

	from := req.ScheduledTime.Add(-s.windowBefore)
	to := req.ScheduledTime.Add(s.windowAfter)

	err = s.appointments.InTx(ctx, func(tx AppointmentStore) error {
		count, err := tx.CountOverlapping(ctx, req.PsychiatristID, from, to, activeStatuses)
		if err != nil {
			return fmt.Errorf("check slot availability: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return tx.Create(ctx, appt)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingConfirmed(appt, patient, psychiatrist)
	return appt, nil
}

// Cancel transitions a patient's own appointment to Cancelled. Only Pending
// and Scheduled appointments can be cancelled; anything else reports
// ErrInvalidState. An appointment owned by someone else reports ErrNotFound.
func (s *Service) Cancel(ctx context.Context, appointmentID, patientID string) error {
	appt, err := s.appointments.ByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("look up appointment: %w", err)
	}
	if appt == nil || appt.PatientID != patientID {
		return ErrNotFound
	}
	if appt.Status.Terminal() {
		return ErrInvalidState
	}

	appt.Status = models.StatusCancelled
	if err := s.appointments.Save(ctx, appt); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.notifyCancelled(ctx, appt)
	return nil
}

// UpdateStatus lets the owning psychiatrist move an appointment to Scheduled,
// Completed or Cancelled. Transitions out of a terminal status report
// ErrInvalidState; an appointment owned by another psychiatrist reports
// ErrNotFound.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID, psychiatristID string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	switch newStatus {
	case models.StatusScheduled, models.StatusCompleted, models.StatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointments.ByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("look up appointment: %w", err)
	}
	if appt == nil || appt.PsychiatristID != psychiatristID {
		return nil, ErrNotFound
	}
	if appt.Status.Terminal() {
		return nil, ErrInvalidState
	}

	previous := appt.Status
	appt.Status = newStatus
	if err := s.appointments.Save(ctx, appt); err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}

	if newStatus == models.StatusCancelled && previous != models.StatusCancelled {
		s.notifyCancelled(ctx, appt)
	}
	return appt, nil
}

// notifyCancelled resolves both parties and hands off the cancellation
// notice. Lookup failures only suppress the notice; the state change has
// already been persisted.
func (s *Service) notifyCancelled(ctx context.Context, appt *models.Appointment) {
	patient, err := s.identities.UserByID(ctx, appt.PatientID)
	if err != nil || patient == nil {
		return
	}
	psychiatrist, err := s.identities.UserByID(ctx, appt.PsychiatristID)
	if err != nil || psychiatrist == nil {
		return
	}
	s.notifier.AppointmentCancelled(appt, patient, psychiatrist)
}
