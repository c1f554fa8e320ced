package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appointmentRepo "slotwise/database/repository/appointment"
	businessRepo "slotwise/database/repository/business"
	"slotwise/models"
	"slotwise/services/scheduling"
)

type stubEngine struct {
	appt *models.Appointment
	err  error

	gotBusinessID string
	gotRequest    models.AppointmentCreate
}

func (e *stubEngine) CheckEligibility(string, time.Time) error { return e.err }

func (e *stubEngine) CreateAppointment(businessID string, req models.AppointmentCreate) (*models.Appointment, error) {
	e.gotBusinessID = businessID
	e.gotRequest = req
	return e.appt, e.err
}

func (e *stubEngine) SetAppointmentStatus(string, models.AppointmentStatus) error { return e.err }

type stubBusinessRepo struct {
	businessRepo.BusinessRepository
	bySlug map[string]*models.Business
}

func (r *stubBusinessRepo) GetBySlug(slug string) (*models.Business, error) {
	return r.bySlug[slug], nil
}

type stubAppointmentRepo struct {
	appointmentRepo.AppointmentRepository
}

func newBookingRouter(engine scheduling.Engine, businesses businessRepo.BusinessRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(engine, businesses, &stubAppointmentRepo{})
	r := gin.New()
	r.POST("/api/public/businesses/:slug/appointments", h.BookAppointmentHandler)
	return r
}

const bookingBody = `{
	"customer_name": "Grace",
	"customer_phone": "+15550100",
	"service_id": "svc-cut",
	"appointment_date": "2026-09-01",
	"time_slot": "10:00"
}`

func TestBookAppointmentHandler(t *testing.T) {
	engine := &stubEngine{appt: &models.Appointment{ID: "appt-1", Status: models.StatusConfirmed}}
	businesses := &stubBusinessRepo{bySlug: map[string]*models.Business{
		"shear-genius": {ID: "biz-1", Slug: "shear-genius"},
	}}
	router := newBookingRouter(engine, businesses)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/businesses/shear-genius/appointments",
		strings.NewReader(bookingBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if engine.gotBusinessID != "biz-1" {
		t.Fatalf("engine called with business %q, want biz-1", engine.gotBusinessID)
	}
	if engine.gotRequest.TimeSlot != "10:00" || engine.gotRequest.CustomerName != "Grace" {
		t.Fatalf("unexpected request passed to engine: %+v", engine.gotRequest)
	}
}

func TestBookAppointmentHandlerUnknownSlug(t *testing.T) {
	router := newBookingRouter(&stubEngine{}, &stubBusinessRepo{bySlug: map[string]*models.Business{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/businesses/nope/appointments",
		strings.NewReader(bookingBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestBookAppointmentHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{scheduling.CodeSlotConflict, http.StatusConflict},
		{scheduling.CodeSuspended, http.StatusForbidden},
		{scheduling.CodeSubscriptionExpired, http.StatusForbidden},
		{scheduling.CodeServiceNotFound, http.StatusNotFound},
		{scheduling.CodeInvalidFormat, http.StatusBadRequest},
	}

	businesses := &stubBusinessRepo{bySlug: map[string]*models.Business{
		"shear-genius": {ID: "biz-1", Slug: "shear-genius"},
	}}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			engine := &stubEngine{err: &scheduling.SchedulingError{Code: tc.code, Message: "nope"}}
			router := newBookingRouter(engine, businesses)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/public/businesses/shear-genius/appointments",
				strings.NewReader(bookingBody))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("code %s: status = %d, want %d", tc.code, w.Code, tc.want)
			}
			if !strings.Contains(w.Body.String(), tc.code) {
				t.Fatalf("response body should carry the error code %s: %s", tc.code, w.Body.String())
			}
		})
	}
}

func TestBookAppointmentHandlerInvalidPayload(t *testing.T) {
	businesses := &stubBusinessRepo{bySlug: map[string]*models.Business{
		"shear-genius": {ID: "biz-1", Slug: "shear-genius"},
	}}
	router := newBookingRouter(&stubEngine{}, businesses)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/businesses/shear-genius/appointments",
		strings.NewReader(`{"customer_name": "Grace"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
