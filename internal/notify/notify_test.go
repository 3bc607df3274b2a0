package notify

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"depresscare-server/internal/config"
	"depresscare-server/internal/mailer"
	"depresscare-server/internal/models"
)

func testDispatcher() *Dispatcher {
	// Mail is disabled, so every dispatch resolves without touching SMTP.
	return New(mailer.New(config.MailerConfig{Enabled: false}), slog.Default())
}

func TestDispatchCompletes(t *testing.T) {
	d := testDispatcher()

	d.BookingConfirmed(mailer.BookingDetails{UserEmail: "ada@example.com"})
	d.AppointmentCancelled(mailer.BookingDetails{UserEmail: "ada@example.com"})
	d.PaymentRecorded(mailer.PaymentDetails{UserEmail: "ada@example.com"})
	d.SalaryProcessed(mailer.SalaryDetails{UserEmail: "carol@example.com"})
	d.SalaryPaid(mailer.SalaryDetails{UserEmail: "carol@example.com"})

	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not drain")
	}
}

func TestAppointmentNotifierFormatsTime(t *testing.T) {
	d := testDispatcher()
	n := NewAppointmentNotifier(d)

	appt := &models.Appointment{
		ScheduledTime: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		MeetingLink:   "https://meet.depresscare.com/abc",
	}
	patient := &models.User{FullName: "Ada", Email: "ada@example.com"}
	psychiatrist := &models.User{FullName: "Dr. Carol", Email: "carol@example.com"}

	// Exercises both paths end to end; delivery is a no-op with mail disabled.
	n.BookingConfirmed(appt, patient, psychiatrist)
	n.AppointmentCancelled(appt, patient, psychiatrist)
	d.Wait()

	assert.Equal(t, "Jan 10, 2025 10:00", appt.ScheduledTime.Format(appointmentTimeLayout))
}
