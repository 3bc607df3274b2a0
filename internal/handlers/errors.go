package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"depresscare-server/internal/services/appointment"
	"depresscare-server/internal/utils"
)

// respondAppointmentError maps appointment service errors onto HTTP responses.
// Ownership failures and wrong-state cancellations both surface as 404, which
// matches the externally visible behavior callers already depend on. Slot
// conflicts are 409.
func respondAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrPsychiatristNotFound):
		utils.NotFound(c, "Psychiatrist not found")
	case errors.Is(err, appointment.ErrPatientNotFound):
		utils.NotFound(c, "Patient not found")
	case errors.Is(err, appointment.ErrNotFound):
		utils.NotFound(c, "Appointment not found")
	case errors.Is(err, appointment.ErrInvalidState):
		utils.NotFound(c, "Appointment not found or already cancelled/completed")
	case errors.Is(err, appointment.ErrPastTime):
		utils.BadRequest(c, "Scheduled time must be in the future")
	case errors.Is(err, appointment.ErrInvalidStatus):
		utils.BadRequest(c, "Invalid status. Allowed values: Scheduled, Completed, Cancelled")
	case errors.Is(err, appointment.ErrSlotTaken):
		utils.Conflict(c, "Time slot not available")
	default:
		utils.InternalServerError(c, "Database error: "+err.Error())
	}
}
