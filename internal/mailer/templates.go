package mailer

import "fmt"

func bookingConfirmationBody(d BookingDetails) (subject, text, html string) {
	subject = "Your Appointment Has Been Booked"
	text = fmt.Sprintf(
		"Hello %s,\n\nYour appointment with %s has been successfully booked for %s.\n\nMeeting Link: %s\n\nThank you!",
		d.UserName, d.PsychiatristName, d.AppointmentTime, d.MeetingLink)
	html = fmt.Sprintf(`<div>
  <h2>Appointment Confirmation</h2>
  <p>Hello %s,</p>
  <p>Your appointment with <strong>%s</strong> has been successfully booked for <strong>%s</strong>.</p>
  <p><strong>Meeting Link:</strong> <a href="%s">Join Meeting</a></p>
  <p>Thank you!</p>
</div>`, d.UserName, d.PsychiatristName, d.AppointmentTime, d.MeetingLink)
	return subject, text, html
}

func cancellationNoticeBody(d BookingDetails) (subject, text, html string) {
	subject = "Your Appointment Has Been Cancelled"
	text = fmt.Sprintf(
		"Hello %s,\n\nYour appointment with %s scheduled for %s has been cancelled.\n\nThank you!",
		d.UserName, d.PsychiatristName, d.AppointmentTime)
	html = fmt.Sprintf(`<div>
  <h2>Appointment Cancellation</h2>
  <p>Hello %s,</p>
  <p>Your appointment with <strong>%s</strong> scheduled for <strong>%s</strong> has been cancelled.</p>
  <p>Thank you!</p>
</div>`, d.UserName, d.PsychiatristName, d.AppointmentTime)
	return subject, text, html
}

func paymentConfirmationBody(d PaymentDetails) (subject, text, html string) {
	subject = "Payment Confirmation"
	text = fmt.Sprintf(
		"Hello %s,\n\nYour payment of $%.2f for the appointment on %s has been successfully processed on %s.\n\nThank you for choosing our services!",
		d.UserName, d.Amount, d.AppointmentTime, d.PaymentDate)
	html = fmt.Sprintf(`<div>
  <h2>Payment Confirmation</h2>
  <p>Hello %s,</p>
  <p>Your payment of <strong>$%.2f</strong> for the appointment on <strong>%s</strong> has been successfully processed on <strong>%s</strong>.</p>
  <p>Thank you for choosing our services!</p>
</div>`, d.UserName, d.Amount, d.AppointmentTime, d.PaymentDate)
	return subject, text, html
}

func salaryProcessedBody(d SalaryDetails) (subject, text, html string) {
	subject = "Your Salary Has Been Processed"
	text = fmt.Sprintf(
		"Hello %s,\n\nYour salary of $%.2f for %s %d has been processed with status: %s.\n\nYou will receive another notification when the payment is completed.\n\nThank you!",
		d.UserName, d.Amount, d.Month, d.Year, d.Status)
	html = fmt.Sprintf(`<div>
  <h2>Salary Processed</h2>
  <p>Hello %s,</p>
  <p>Your salary of <strong>$%.2f</strong> for <strong>%s %d</strong> has been processed with status: <strong>%s</strong>.</p>
  <p>You will receive another notification when the payment is completed.</p>
  <p>Thank you!</p>
</div>`, d.UserName, d.Amount, d.Month, d.Year, d.Status)
	return subject, text, html
}

func salaryPaidBody(d SalaryDetails) (subject, text, html string) {
	subject = "Salary Payment Completed"
	text = fmt.Sprintf(
		"Hello %s,\n\nYour salary of $%.2f for %s %d has been successfully paid.\n\nThank you for your service!",
		d.UserName, d.Amount, d.Month, d.Year)
	html = fmt.Sprintf(`<div>
  <h2>Salary Payment Completed</h2>
  <p>Hello %s,</p>
  <p>Your salary of <strong>$%.2f</strong> for <strong>%s %d</strong> has been successfully paid.</p>
  <p>Thank you for your service!</p>
</div>`, d.UserName, d.Amount, d.Month, d.Year)
	return subject, text, html
}
