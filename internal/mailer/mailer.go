package mailer

import (
	"gopkg.in/gomail.v2"

	"depresscare-server/internal/config"
)

// Mailer sends notification email over SMTP.
type Mailer struct {
	cfg    config.MailerConfig
	dialer *gomail.Dialer
}

// New creates a Mailer from config.
func New(cfg config.MailerConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *Mailer) send(to, subject, text, html string) error {
	if !m.cfg.Enabled {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	return m.dialer.DialAndSend(msg)
}

// BookingDetails carries the fields rendered into booking-related mail.
type BookingDetails struct {
	UserEmail        string
	UserName         string
	PsychiatristName string
	AppointmentTime  string
	MeetingLink      string
}

// SendBookingConfirmation notifies a patient that their appointment is booked.
func (m *Mailer) SendBookingConfirmation(d BookingDetails) error {
	subject, text, html := bookingConfirmationBody(d)
	return m.send(d.UserEmail, subject, text, html)
}

// SendCancellationNotice notifies a patient that their appointment was cancelled.
func (m *Mailer) SendCancellationNotice(d BookingDetails) error {
	subject, text, html := cancellationNoticeBody(d)
	return m.send(d.UserEmail, subject, text, html)
}

// PaymentDetails carries the fields rendered into payment mail.
type PaymentDetails struct {
	UserEmail       string
	UserName        string
	Amount          float64
	AppointmentTime string
	PaymentDate     string
}

// SendPaymentConfirmation notifies a patient that their payment was recorded.
func (m *Mailer) SendPaymentConfirmation(d PaymentDetails) error {
	subject, text, html := paymentConfirmationBody(d)
	return m.send(d.UserEmail, subject, text, html)
}

// SalaryDetails carries the fields rendered into salary mail.
type SalaryDetails struct {
	UserEmail string
	UserName  string
	Amount    float64
	Month     string
	Year      int
	Status    string
}

// SendSalaryProcessed notifies a psychiatrist that their salary was processed.
func (m *Mailer) SendSalaryProcessed(d SalaryDetails) error {
	subject, text, html := salaryProcessedBody(d)
	return m.send(d.UserEmail, subject, text, html)
}

// SendSalaryPaid notifies a psychiatrist that their salary payment completed.
func (m *Mailer) SendSalaryPaid(d SalaryDetails) error {
	subject, text, html := salaryPaidBody(d)
	return m.send(d.UserEmail, subject, text, html)
}
