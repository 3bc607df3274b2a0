package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depresscare-server/internal/models"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeIdentityStore struct {
	users    map[string]*models.User
	profiles map[string]*models.PsychiatristProfile
}

func (s *fakeIdentityStore) UserByID(_ context.Context, id string) (*models.User, error) {
	return s.users[id], nil
}

func (s *fakeIdentityStore) PsychiatristProfileByUserID(_ context.Context, userID string) (*models.PsychiatristProfile, error) {
	return s.profiles[userID], nil
}

type fakeAppointmentStore struct {
	appointments map[string]*models.Appointment
	nextID       int
	saveErr      error
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{appointments: map[string]*models.Appointment{}}
}

func (s *fakeAppointmentStore) ByID(_ context.Context, id string) (*models.Appointment, error) {
	appt, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appt
	return &copied, nil
}

func (s *fakeAppointmentStore) CountOverlapping(_ context.Context, psychiatristID string, from, to time.Time, excluding []models.AppointmentStatus) (int64, error) {
	var count int64
	for _, appt := range s.appointments {
		if appt.PsychiatristID != psychiatristID {
			continue
		}
		if appt.ScheduledTime.Before(from) || appt.ScheduledTime.After(to) {
			continue
		}
		skip := false
		for _, status := range excluding {
			if appt.Status == status {
				skip = true
				break
			}
		}
		if !skip {
			count++
		}
	}
	return count, nil
}

func (s *fakeAppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	s.nextID++
	appt.ID = fmt.Sprintf("appt-%d", s.nextID)
	copied := *appt
	s.appointments[appt.ID] = &copied
	return nil
}

func (s *fakeAppointmentStore) Save(_ context.Context, appt *models.Appointment) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *appt
	s.appointments[appt.ID] = &copied
	return nil
}

func (s *fakeAppointmentStore) InTx(_ context.Context, fn func(AppointmentStore) error) error {
	return fn(s)
}

type staticLinks struct {
	link string
}

func (l staticLinks) Generate() string { return l.link }

type recordingNotifier struct {
	confirmed []*models.Appointment
	cancelled []*models.Appointment
}

func (n *recordingNotifier) BookingConfirmed(appt *models.Appointment, _, _ *models.User) {
	n.confirmed = append(n.confirmed, appt)
}

func (n *recordingNotifier) AppointmentCancelled(appt *models.Appointment, _, _ *models.User) {
	n.cancelled = append(n.cancelled, appt)
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

const (
	patientID      = "patient-1"
	otherPatientID = "patient-2"
	psychiatristID = "psych-1"
	otherPsychID   = "psych-2"
)

type fixture struct {
	svc      *Service
	store    *fakeAppointmentStore
	notifier *recordingNotifier
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	identities := &fakeIdentityStore{
		users: map[string]*models.User{
			patientID:      {FullName: "Ada Patient", Email: "ada@example.com", Role: models.RolePatient},
			otherPatientID: {FullName: "Ben Patient", Email: "ben@example.com", Role: models.RolePatient},
			psychiatristID: {FullName: "Dr. Carol", Email: "carol@example.com", Role: models.RolePsychiatrist},
			otherPsychID:   {FullName: "Dr. Dan", Email: "dan@example.com", Role: models.RolePsychiatrist},
		},
		profiles: map[string]*models.PsychiatristProfile{
			psychiatristID: {UserID: psychiatristID, LicenseNumber: "LIC-1"},
			otherPsychID:   {UserID: otherPsychID, LicenseNumber: "LIC-2"},
		},
	}
	identities.users[patientID].ID = patientID
	identities.users[otherPatientID].ID = otherPatientID
	identities.users[psychiatristID].ID = psychiatristID
	identities.users[otherPsychID].ID = otherPsychID

	store := newFakeAppointmentStore()
	notifier := &recordingNotifier{}

	svc := New(identities, store, staticLinks{link: "https://meet.example.com/abc"}, notifier, 30*time.Minute, 90*time.Minute)
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &fixture{svc: svc, store: store, notifier: notifier, now: now}
}

func (f *fixture) book(t *testing.T, at time.Time) *models.Appointment {
	t.Helper()
	appt, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      patientID,
		PsychiatristID: psychiatristID,
		ScheduledTime:  at,
	})
	require.NoError(t, err)
	return appt
}

// ---------------------------------------------------------------------------
// Booking
// ---------------------------------------------------------------------------

func TestBookCreatesScheduledAppointment(t *testing.T) {
	f := newFixture(t)

	at := f.now.Add(24 * time.Hour)
	appt, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:         patientID,
		PsychiatristID:    psychiatristID,
		ScheduledTime:     at,
		PreviousDiagnosis: true,
		Symptoms:          "trouble sleeping",
		ShortDescription:  "first visit",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, "https://meet.example.com/abc", appt.MeetingLink)
	assert.Equal(t, at, appt.ScheduledTime)
	assert.True(t, appt.PreviousDiagnosis)
	assert.NotEmpty(t, appt.ID)

	require.Len(t, f.notifier.confirmed, 1)
	assert.Equal(t, appt.ID, f.notifier.confirmed[0].ID)
}

func TestBookRejectsUnknownPsychiatrist(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      patientID,
		PsychiatristID: "nobody",
		ScheduledTime:  f.now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrPsychiatristNotFound)
	assert.Empty(t, f.notifier.confirmed)
}

func TestBookRejectsPatientAsPsychiatrist(t *testing.T) {
	f := newFixture(t)

	// A plain patient has a user row but no psychiatrist profile.
	_, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      patientID,
		PsychiatristID: otherPatientID,
		ScheduledTime:  f.now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrPsychiatristNotFound)
}

func TestBookRejectsUnknownPatient(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      "nobody",
		PsychiatristID: psychiatristID,
		ScheduledTime:  f.now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestBookRejectsPastAndPresentTimes(t *testing.T) {
	f := newFixture(t)

	for _, at := range []time.Time{f.now.Add(-time.Hour), f.now} {
		_, err := f.svc.Book(context.Background(), BookRequest{
			PatientID:      patientID,
			PsychiatristID: psychiatristID,
			ScheduledTime:  at,
		})
		assert.ErrorIs(t, err, ErrPastTime, "scheduled at %s", at)
	}
	assert.Empty(t, f.store.appointments)
}

func TestBookConflictWindow(t *testing.T) {
	// An existing appointment at 10:00 blocks any candidate slot whose
	// window [t-30m, t+90m] contains 10:00, so candidates from 8:30
	// through 10:30 inclusive conflict.
	existing := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		conflict bool
	}{
		{"twenty minutes after", existing.Add(20 * time.Minute), true},
		{"two hours after", existing.Add(2 * time.Hour), false},
		{"thirty minutes after, boundary", existing.Add(30 * time.Minute), true},
		{"just past the trailing boundary", existing.Add(31 * time.Minute), false},
		{"ninety minutes before, boundary", existing.Add(-90 * time.Minute), true},
		{"just before the leading boundary", existing.Add(-91 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.book(t, existing)

			_, err := f.svc.Book(context.Background(), BookRequest{
				PatientID:      otherPatientID,
				PsychiatristID: psychiatristID,
				ScheduledTime:  tt.at,
			})
			if tt.conflict {
				assert.ErrorIs(t, err, ErrSlotTaken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookIgnoresInactiveAppointments(t *testing.T) {
	for _, status := range []models.AppointmentStatus{models.StatusCancelled, models.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			at := f.now.Add(time.Hour)

			existing := f.book(t, at)
			existing.Status = status
			require.NoError(t, f.store.Save(context.Background(), existing))

			_, err := f.svc.Book(context.Background(), BookRequest{
				PatientID:      otherPatientID,
				PsychiatristID: psychiatristID,
				ScheduledTime:  at,
			})
			assert.NoError(t, err)
		})
	}
}

func TestBookOtherPsychiatristUnaffected(t *testing.T) {
	f := newFixture(t)
	at := f.now.Add(time.Hour)
	f.book(t, at)

	_, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      otherPatientID,
		PsychiatristID: otherPsychID,
		ScheduledTime:  at,
	})
	assert.NoError(t, err)
}

func TestBookConflictSendsNoConfirmation(t *testing.T) {
	f := newFixture(t)
	at := f.now.Add(time.Hour)
	f.book(t, at)

	_, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      otherPatientID,
		PsychiatristID: psychiatristID,
		ScheduledTime:  at,
	})
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, f.notifier.confirmed, 1)
}

// ---------------------------------------------------------------------------
// Cancellation
// ---------------------------------------------------------------------------

func TestCancelOwnScheduledAppointment(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	require.NoError(t, f.svc.Cancel(context.Background(), appt.ID, patientID))

	stored := f.store.appointments[appt.ID]
	assert.Equal(t, models.StatusCancelled, stored.Status)
	require.Len(t, f.notifier.cancelled, 1)
	assert.Equal(t, appt.ID, f.notifier.cancelled[0].ID)
}

func TestCancelUnknownAppointment(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Cancel(context.Background(), "missing", patientID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelSomeoneElsesAppointment(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	err := f.svc.Cancel(context.Background(), appt.ID, otherPatientID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, models.StatusScheduled, f.store.appointments[appt.ID].Status)
}

func TestCancelTwice(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	require.NoError(t, f.svc.Cancel(context.Background(), appt.ID, patientID))
	err := f.svc.Cancel(context.Background(), appt.ID, patientID)
	assert.ErrorIs(t, err, ErrInvalidState)

	// Only the first cancellation produces a notice.
	assert.Len(t, f.notifier.cancelled, 1)
}

func TestCancelCompletedAppointment(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))
	appt.Status = models.StatusCompleted
	require.NoError(t, f.store.Save(context.Background(), appt))

	err := f.svc.Cancel(context.Background(), appt.ID, patientID)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, f.notifier.cancelled)
}

func TestCancelSaveFailure(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	f.store.saveErr = errors.New("connection reset")
	err := f.svc.Cancel(context.Background(), appt.ID, patientID)
	require.Error(t, err)
	assert.Empty(t, f.notifier.cancelled)
}

// ---------------------------------------------------------------------------
// Status updates
// ---------------------------------------------------------------------------

func TestUpdateStatusCompletes(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	updated, err := f.svc.UpdateStatus(context.Background(), appt.ID, psychiatristID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, models.StatusCompleted, f.store.appointments[appt.ID].Status)
	assert.Empty(t, f.notifier.cancelled)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	for _, status := range []models.AppointmentStatus{models.StatusPending, "Rescheduled", ""} {
		_, err := f.svc.UpdateStatus(context.Background(), appt.ID, psychiatristID, status)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
}

func TestUpdateStatusByNonOwner(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	_, err := f.svc.UpdateStatus(context.Background(), appt.ID, otherPsychID, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, models.StatusScheduled, f.store.appointments[appt.ID].Status)
}

func TestUpdateStatusTwiceToCompleted(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	_, err := f.svc.UpdateStatus(context.Background(), appt.ID, psychiatristID, models.StatusCompleted)
	require.NoError(t, err)

	// The appointment is terminal now, so repeating the call fails the
	// same way every time.
	for i := 0; i < 2; i++ {
		_, err = f.svc.UpdateStatus(context.Background(), appt.ID, psychiatristID, models.StatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidState)
	}
}

func TestUpdateStatusCancelSendsNotice(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.now.Add(time.Hour))

	updated, err := f.svc.UpdateStatus(context.Background(), appt.ID, psychiatristID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	require.Len(t, f.notifier.cancelled, 1)

	_, err = f.svc.UpdateStatus(context.Background(), appt.ID, psychiatristID, models.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, f.notifier.cancelled, 1)
}

// Two patients and one psychiatrist on the same morning: the first booking
// takes the 10:00 slot, 10:20 falls inside its window, noon is free again.
func TestBookingScenario(t *testing.T) {
	f := newFixture(t)

	first := f.book(t, time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, models.StatusScheduled, first.Status)

	_, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      otherPatientID,
		PsychiatristID: psychiatristID,
		ScheduledTime:  time.Date(2025, 1, 10, 10, 20, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	second, err := f.svc.Book(context.Background(), BookRequest{
		PatientID:      otherPatientID,
		PsychiatristID: psychiatristID,
		ScheduledTime:  time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, second.Status)
	assert.Len(t, f.notifier.confirmed, 2)
}
