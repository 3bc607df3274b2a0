// Package notify dispatches best-effort notifications. Every send runs on its
// own goroutine after the triggering operation has committed; failures are
// logged and swallowed, never surfaced to the caller.
package notify

import (
	"log/slog"
	"sync"

	"depresscare-server/internal/mailer"
)

// Dispatcher hands mail off to background goroutines.
type Dispatcher struct {
	mail *mailer.Mailer
	log  *slog.Logger
	wg   sync.WaitGroup
}

// New creates a Dispatcher.
func New(mail *mailer.Mailer, log *slog.Logger) *Dispatcher {
	return &Dispatcher{mail: mail, log: log}
}

// Wait blocks until all in-flight notifications have finished. Used on
// shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(kind string, fn func() error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := fn(); err != nil {
			d.log.Error("notification dispatch failed",
				slog.String("kind", kind),
				slog.String("error", err.Error()))
		}
	}()
}

// BookingConfirmed sends the booking confirmation mail to the patient.
func (d *Dispatcher) BookingConfirmed(details mailer.BookingDetails) {
	d.dispatch("booking_confirmation", func() error {
		return d.mail.SendBookingConfirmation(details)
	})
}

// AppointmentCancelled sends the cancellation notice to the patient.
func (d *Dispatcher) AppointmentCancelled(details mailer.BookingDetails) {
	d.dispatch("cancellation_notice", func() error {
		return d.mail.SendCancellationNotice(details)
	})
}

// PaymentRecorded sends the payment confirmation to the patient.
func (d *Dispatcher) PaymentRecorded(details mailer.PaymentDetails) {
	d.dispatch("payment_confirmation", func() error {
		return d.mail.SendPaymentConfirmation(details)
	})
}

// SalaryProcessed sends the salary processed notice to the psychiatrist.
func (d *Dispatcher) SalaryProcessed(details mailer.SalaryDetails) {
	d.dispatch("salary_processed", func() error {
		return d.mail.SendSalaryProcessed(details)
	})
}

// SalaryPaid sends the salary paid notice to the psychiatrist.
func (d *Dispatcher) SalaryPaid(details mailer.SalaryDetails) {
	d.dispatch("salary_paid", func() error {
		return d.mail.SendSalaryPaid(details)
	})
}
