package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "slotwise/database/repository/appointment"
	businessRepo "slotwise/database/repository/business"
	"slotwise/models"
	"slotwise/services/scheduling"
	"slotwise/utils"
)

// AppointmentHandler exposes the public booking endpoint and the tenant's
// appointment management.
type AppointmentHandler struct {
	Engine       scheduling.Engine
	Businesses   businessRepo.BusinessRepository
	Appointments appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(
	engine scheduling.Engine,
	businesses businessRepo.BusinessRepository,
	appointments appointmentRepo.AppointmentRepository,
) *AppointmentHandler {
	return &AppointmentHandler{Engine: engine, Businesses: businesses, Appointments: appointments}
}

// schedulingStatus maps a scheduling error code to its HTTP status.
func schedulingStatus(err error) int {
	switch scheduling.ErrCode(err) {
	case scheduling.CodeNotFound, scheduling.CodeServiceNotFound:
		return http.StatusNotFound
	case scheduling.CodeSuspended, scheduling.CodeSubscriptionExpired:
		return http.StatusForbidden
	case scheduling.CodeSlotConflict:
		return http.StatusConflict
	case scheduling.CodeInvalidFormat, scheduling.CodeInvalidTransition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// BookAppointmentHandler creates a booking on a public page. Customers book
// without authenticating.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	biz, err := h.Businesses.GetBySlug(c.Param("slug"))
	if err != nil {
		logger.Error("Failed to resolve booking page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed, please try again"})
		return
	}
	if biz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	var req models.AppointmentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Engine.CreateAppointment(biz.ID, req)
	if err != nil {
		if code := scheduling.ErrCode(err); code != "" {
			utils.JSONError(c, schedulingStatus(err), code, err.Error())
			return
		}
		logger.Error("Booking failed", zap.String("businessId", biz.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed, please try again"})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler returns the tenant's appointments, newest first.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := businessID(c)
	if !ok {
		return
	}

	appointments, err := h.Appointments.ListByBusiness(id)
	if err != nil {
		logger.Error("Failed to list appointments", zap.String("businessId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatusHandler applies a status transition to one of the
// tenant's appointments.
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := businessID(c)
	if !ok {
		return
	}

	var req struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appointmentID := c.Param("id")
	appt, err := h.Appointments.GetByID(appointmentID)
	if err != nil {
		logger.Error("Failed to fetch appointment", zap.String("appointmentId", appointmentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}
	if appt == nil || appt.BusinessID != id {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if err := h.Engine.SetAppointmentStatus(appointmentID, req.Status); err != nil {
		if code := scheduling.ErrCode(err); code != "" {
			utils.JSONError(c, schedulingStatus(err), code, err.Error())
			return
		}
		logger.Error("Status update failed", zap.String("appointmentId", appointmentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated"})
}
