package notify

import (
	"depresscare-server/internal/mailer"
	"depresscare-server/internal/models"
)

const appointmentTimeLayout = "Jan 2, 2006 15:04"

// AppointmentNotifier adapts the Dispatcher to the notification collaborator
// the appointment service expects.
type AppointmentNotifier struct {
	d *Dispatcher
}

// NewAppointmentNotifier creates an AppointmentNotifier.
func NewAppointmentNotifier(d *Dispatcher) *AppointmentNotifier {
	return &AppointmentNotifier{d: d}
}

// BookingConfirmed dispatches the booking confirmation to the patient.
func (n *AppointmentNotifier) BookingConfirmed(appt *models.Appointment, patient, psychiatrist *models.User) {
	n.d.BookingConfirmed(mailer.BookingDetails{
		UserEmail:        patient.Email,
		UserName:         patient.FullName,
		PsychiatristName: psychiatrist.FullName,
		AppointmentTime:  appt.ScheduledTime.Format(appointmentTimeLayout),
		MeetingLink:      appt.MeetingLink,
	})
}

// AppointmentCancelled dispatches the cancellation notice to the patient.
func (n *AppointmentNotifier) AppointmentCancelled(appt *models.Appointment, patient, psychiatrist *models.User) {
	n.d.AppointmentCancelled(mailer.BookingDetails{
		UserEmail:        patient.Email,
		UserName:         patient.FullName,
		PsychiatristName: psychiatrist.FullName,
		AppointmentTime:  appt.ScheduledTime.Format(appointmentTimeLayout),
	})
}
