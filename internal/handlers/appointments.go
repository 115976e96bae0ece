package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/service"
	"clinic-app-server/internal/utils"
)

// AppointmentHandler handles the patient-facing appointment requests.
type AppointmentHandler struct {
	Service *service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentRequest represents the request body for booking an
// appointment.
type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctor_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,futuredate"`
	Time            string `json:"time" validate:"required,hhmm"`
	Type            string `json:"type" validate:"required,max=50"`
	Note            string `json:"note" validate:"omitempty,max=500"`
}

// UpdateAppointmentStatusRequest represents the request body for a status
// change. The validator is the only place untrusted status strings are
// accepted; past it the status is the closed enum.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING SCHEDULED COMPLETED CANCELLED"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// CreateAppointment books a new appointment for the calling patient.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	date, err := time.ParseInLocation(utils.DateLayout, req.AppointmentDate, time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid appointment date format")
		return
	}

	apt, err := h.Service.Create(userID, service.CreateAppointmentInput{
		DoctorID: req.DoctorID,
		Date:     date,
		Time:     req.Time,
		Type:     req.Type,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPatientProfileNotFound):
			utils.NotFound(c, "Patient profile not found")
		case errors.Is(err, service.ErrDoctorNotFound):
			utils.NotFound(c, "Doctor not found")
		case errors.Is(err, service.ErrSlotTaken):
			utils.Conflict(c, "This time slot is already booked for the selected doctor")
		default:
			utils.InternalServerError(c, "Failed to create appointment")
		}
		return
	}

	utils.Created(c, "Appointment created successfully", apt)
}

// GetPatientAppointments lists the calling patient's appointments, most
// recent date first.
func (h *AppointmentHandler) GetPatientAppointments(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	appointments, err := h.Service.ListForPatient(userID)
	if err != nil {
		if errors.Is(err, service.ErrPatientProfileNotFound) {
			utils.NotFound(c, "Patient profile not found")
			return
		}
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID fetches one of the calling patient's appointments.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	apt, err := h.Service.GetForPatient(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPatientProfileNotFound):
			utils.NotFound(c, "Patient profile not found")
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.NotFound(c, "Appointment not found")
		default:
			utils.InternalServerError(c, "Failed to fetch appointment")
		}
		return
	}

	utils.Success(c, "Appointment fetched successfully", apt)
}

// GetAppointmentCount returns how many appointments the patient has booked.
func (h *AppointmentHandler) GetAppointmentCount(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	count, err := h.Service.CountForPatient(userID)
	if err != nil {
		if errors.Is(err, service.ErrPatientProfileNotFound) {
			utils.NotFound(c, "Patient profile not found")
			return
		}
		utils.InternalServerError(c, "Failed to count appointments")
		return
	}

	utils.Success(c, "Appointment count fetched successfully", gin.H{"count": count})
}

// GetUpcomingAppointment returns the patient's next scheduled appointment,
// or null when none is coming up.
func (h *AppointmentHandler) GetUpcomingAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	apt, err := h.Service.NextUpcomingForPatient(userID)
	if err != nil {
		if errors.Is(err, service.ErrPatientProfileNotFound) {
			utils.NotFound(c, "Patient profile not found")
			return
		}
		utils.InternalServerError(c, "Failed to fetch upcoming appointment")
		return
	}

	utils.Success(c, "Upcoming appointment fetched successfully", apt)
}

// UpdateAppointmentStatus is the patient-side transition: cancellation only.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
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

	apt, err := h.Service.UpdateStatusByPatient(userID, id, service.StatusUpdateInput{
		Status: status,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPatientProfileNotFound):
			utils.NotFound(c, "Patient profile not found")
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, service.ErrInvalidTransition):
			utils.BadRequest(c, "Only pending appointments can be cancelled")
		default:
			utils.InternalServerError(c, "Failed to update appointment")
		}
		return
	}

	utils.Success(c, "Appointment updated successfully", apt)
}

// GetDoctors returns the patient-facing doctor directory.
func (h *AppointmentHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Service.ListDoctors()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}
	utils.Success(c, "Doctors fetched successfully", doctors)
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid appointment ID")
		return 0, false
	}
	return uint(id), true
}
