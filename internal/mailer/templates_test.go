package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"depresscare-server/internal/config"
)

func TestBookingConfirmationBody(t *testing.T) {
	subject, text, html := bookingConfirmationBody(BookingDetails{
		UserName:         "Ada",
		PsychiatristName: "Dr. Carol",
		AppointmentTime:  "Jan 10, 2025 10:00",
		MeetingLink:      "https://meet.depresscare.com/abc123",
	})

	assert.Equal(t, "Your Appointment Has Been Booked", subject)
	assert.Contains(t, text, "Dr. Carol")
	assert.Contains(t, text, "Jan 10, 2025 10:00")
	assert.Contains(t, text, "https://meet.depresscare.com/abc123")
	assert.Contains(t, html, `<a href="https://meet.depresscare.com/abc123">`)
}

func TestCancellationNoticeBody(t *testing.T) {
	subject, text, html := cancellationNoticeBody(BookingDetails{
		UserName:         "Ada",
		PsychiatristName: "Dr. Carol",
		AppointmentTime:  "Jan 10, 2025 10:00",
	})

	assert.Equal(t, "Your Appointment Has Been Cancelled", subject)
	assert.Contains(t, text, "has been cancelled")
	assert.Contains(t, text, "Dr. Carol")
	assert.Contains(t, html, "Appointment Cancellation")
}

func TestPaymentConfirmationBody(t *testing.T) {
	subject, text, _ := paymentConfirmationBody(PaymentDetails{
		UserName:        "Ada",
		Amount:          150.5,
		AppointmentTime: "Jan 10, 2025 10:00",
		PaymentDate:     "Jan 11, 2025",
	})

	assert.Equal(t, "Payment Confirmation", subject)
	assert.Contains(t, text, "$150.50")
	assert.Contains(t, text, "Jan 11, 2025")
}

func TestSalaryBodies(t *testing.T) {
	d := SalaryDetails{
		UserName: "Dr. Carol",
		Amount:   5000,
		Month:    "January",
		Year:     2025,
		Status:   "Pending",
	}

	subject, text, _ := salaryProcessedBody(d)
	assert.Equal(t, "Your Salary Has Been Processed", subject)
	assert.Contains(t, text, "$5000.00")
	assert.Contains(t, text, "January 2025")
	assert.Contains(t, text, "Pending")

	subject, text, _ = salaryPaidBody(d)
	assert.Equal(t, "Salary Payment Completed", subject)
	assert.Contains(t, text, "successfully paid")
}

func TestSendIsNoOpWhenDisabled(t *testing.T) {
	m := New(config.MailerConfig{Enabled: false})

	assert.NoError(t, m.SendBookingConfirmation(BookingDetails{UserEmail: "ada@example.com"}))
	assert.NoError(t, m.SendSalaryPaid(SalaryDetails{UserEmail: "carol@example.com"}))
}
