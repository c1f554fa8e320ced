package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/utils"
)

// CreateAppointment runs the full booking flow: eligibility gate, service
// lookup, conflict resolution, then assembly and persistence of the
// appointment with its denormalized snapshot. Any failure before the insert
// leaves no partial write. The notification dispatch afterwards is
// best-effort and cannot fail the booking.
func (e *DefaultEngine) CreateAppointment(businessID string, req models.AppointmentCreate) (*models.Appointment, error) {
	logger := utils.GetLogger()

	business, err := e.Businesses.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("booking lookup failed for business %s: %w", businessID, err)
	}
	if err := eligibilityGate(business, time.Now().UTC()); err != nil {
		return nil, err
	}

	service, err := e.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("service lookup failed: %w", err)
	}
	if service == nil {
		return nil, newError(CodeServiceNotFound, "service not found")
	}

	start, err := ParseTimeToMinutes(req.TimeSlot)
	if err != nil {
		return nil, err
	}
	end := start + service.Duration

	// Bookings without an assigned staff member have unconstrained capacity:
	// they never block, and are never blocked by, other appointments.
	staffName := ""
	if req.StaffID != "" {
		m := e.locks.lock(slotKey(businessID, req.StaffID, req.AppointmentDate))
		defer m.Unlock()

		if err := e.checkSlotConflict(businessID, req.StaffID, req.AppointmentDate, start, end); err != nil {
			return nil, err
		}

		// A staff id that resolves to nothing is non-fatal: the booking
		// proceeds with an empty staff name.
		staff, err := e.Staff.GetByID(req.StaffID)
		if err != nil {
			return nil, fmt.Errorf("staff lookup failed: %w", err)
		}
		if staff != nil {
			staffName = staff.Name
		}
	}

	appointment := &models.Appointment{
		ID:              uuid.New().String(),
		BusinessID:      businessID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		StaffID:         req.StaffID,
		StaffName:       staffName,
		AppointmentDate: req.AppointmentDate,
		TimeSlot:        req.TimeSlot,
		Duration:        service.Duration,
		Price:           service.Price,
		Status:          models.StatusConfirmed,
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	if err := e.Appointments.Insert(appointment); err != nil {
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}

	// The counter moves via $inc and is not tied to the insert; drift on
	// failure is acceptable.
	if err := e.Businesses.IncrementCounter(businessID, "total_appointments", 1); err != nil {
		logger.Warn("failed to increment appointment counter",
			zap.String("businessId", businessID), zap.Error(err))
	}

	if e.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		notice := models.AppointmentNotice{
			AppointmentID: appointment.ID,
			CustomerName:  appointment.CustomerName,
			CustomerPhone: appointment.CustomerPhone,
			BusinessName:  business.Name,
			ServiceName:   appointment.ServiceName,
			Date:          appointment.AppointmentDate,
			TimeSlot:      appointment.TimeSlot,
			StaffName:     staffName,
		}
		if err := e.Notifier.AppointmentConfirmed(ctx, notice); err != nil {
			logger.Warn("appointment notification dispatch failed",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}

	return appointment, nil
}
