package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/service"
	"clinic-app-server/internal/utils"
)

// DoctorHandler handles the doctor-facing appointment requests.
type DoctorHandler struct {
	Service *service.AppointmentService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(svc *service.AppointmentService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// GetDoctorAppointments lists the calling doctor's appointments.
func (h *DoctorHandler) GetDoctorAppointments(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	appointments, err := h.Service.ListForDoctor(userID)
	if err != nil {
		if errors.Is(err, service.ErrDoctorProfileNotFound) {
			utils.NotFound(c, "Doctor profile not found")
			return
		}
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// UpdateAppointmentStatus is the doctor-side transition: any of the four
// statuses, restricted to the doctor's own appointments.
func (h *DoctorHandler) UpdateAppointmentStatus(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	status, ok := models.ParseAppointmentStatus(req.Status)
	if !ok {
		utils.BadRequest(c, "Invalid appointment status")
		return
	}

	apt, err := h.Service.UpdateStatusByDoctor(userID, id, service.StatusUpdateInput{
		Status: status,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDoctorProfileNotFound):
			utils.Forbidden(c, "Access denied: you don't have permission to access this")
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, service.ErrInvalidStatus):
			utils.BadRequest(c, "Invalid appointment status")
		default:
			utils.InternalServerError(c, "Failed to update appointment")
		}
		return
	}

	utils.Success(c, "Appointment updated successfully", apt)
}
