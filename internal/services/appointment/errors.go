package appointment

import "errors"

var (
	// ErrPsychiatristNotFound means the referenced user does not exist or does
	// not hold a psychiatrist profile.
	ErrPsychiatristNotFound = errors.New("psychiatrist not found")
	// ErrPatientNotFound means the referenced patient user does not exist.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrNotFound means the appointment does not exist or does not belong to
	// the requesting user.
	ErrNotFound = errors.New("appointment not found")
	// ErrPastTime means the requested scheduled time is not in the future.
	ErrPastTime = errors.New("scheduled time must be in the future")
	// ErrSlotTaken means another active appointment falls inside the conflict
	// window for the same psychiatrist.
	ErrSlotTaken = errors.New("time slot not available")
	// ErrInvalidStatus means the requested status is not one a psychiatrist
	// may set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidState means the appointment's current status does not permit
	// the requested transition.
	ErrInvalidState = errors.New("appointment is already completed or cancelled")
)
