package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	"slotwise/models"
)

var errTest = errors.New("boom")

type stubBusinessStore struct {
	mu         sync.Mutex
	businesses map[string]models.Business
	counters   map[string]int
}

func newStubBusinessStore(businesses ...models.Business) *stubBusinessStore {
	s := &stubBusinessStore{
		businesses: make(map[string]models.Business),
		counters:   make(map[string]int),
	}
	for _, b := range businesses {
		s.businesses[b.ID] = b
	}
	return s
}

func (s *stubBusinessStore) GetByID(id string) (*models.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[id]
	if !ok {
		return nil, nil
	}
	copied := b
	return &copied, nil
}

func (s *stubBusinessStore) IncrementCounter(id, field string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[id+"/"+field] += delta
	return nil
}

func (s *stubBusinessStore) counter(id, field string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[id+"/"+field]
}

type stubServiceStore struct {
	mu       sync.Mutex
	services map[string]models.Service
}

func newStubServiceStore(services ...models.Service) *stubServiceStore {
	s := &stubServiceStore{services: make(map[string]models.Service)}
	for _, svc := range services {
		s.services[svc.ID] = svc
	}
	return s
}

func (s *stubServiceStore) GetByID(id string) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, nil
	}
	copied := svc
	return &copied, nil
}

func (s *stubServiceStore) set(svc models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID] = svc
}

type stubStaffStore struct {
	staff map[string]models.Staff
}

func newStubStaffStore(staff ...models.Staff) *stubStaffStore {
	s := &stubStaffStore{staff: make(map[string]models.Staff)}
	for _, st := range staff {
		s.staff[st.ID] = st
	}
	return s
}

func (s *stubStaffStore) GetByID(id string) (*models.Staff, error) {
	st, ok := s.staff[id]
	if !ok {
		return nil, nil
	}
	copied := st
	return &copied, nil
}

type stubAppointmentStore struct {
	mu           sync.Mutex
	appointments map[string]models.Appointment
}

func newStubAppointmentStore() *stubAppointmentStore {
	return &stubAppointmentStore{appointments: make(map[string]models.Appointment)}
}

func (s *stubAppointmentStore) Insert(a *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = *a
	return nil
}

func (s *stubAppointmentStore) GetByID(id string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := a
	return &copied, nil
}

func (s *stubAppointmentStore) ListActiveForStaffDay(businessID, staffID, date string) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.BusinessID == businessID && a.StaffID == staffID &&
			a.AppointmentDate == date && a.Status != models.StatusCancelled {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAppointmentStore) SetStatus(id string, status models.AppointmentStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	s.appointments[id] = a
	return true, nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []models.AppointmentNotice
	err     error
}

func (n *recordingNotifier) AppointmentConfirmed(_ context.Context, notice models.AppointmentNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.notices = append(n.notices, notice)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notices)
}

type testFixture struct {
	engine       *DefaultEngine
	businesses   *stubBusinessStore
	services     *stubServiceStore
	appointments *stubAppointmentStore
	notifier     *recordingNotifier
}

func newTestFixture() *testFixture {
	businesses := newStubBusinessStore(models.Business{
		ID:                  "biz-1",
		Name:                "Shear Genius",
		Slug:                "shear-genius",
		IsActive:            true,
		SubscriptionExpires: time.Now().UTC().Add(30 * 24 * time.Hour),
	})
	services := newStubServiceStore(models.Service{
		ID:         "svc-cut",
		BusinessID: "biz-1",
		Name:       "Haircut",
		Duration:   30,
		Price:      25,
	})
	staff := newStubStaffStore(models.Staff{
		ID:         "staff-ada",
		BusinessID: "biz-1",
		Name:       "Ada",
	})
	appointments := newStubAppointmentStore()
	notifier := &recordingNotifier{}

	return &testFixture{
		engine:       NewDefaultEngine(businesses, services, staff, appointments, notifier),
		businesses:   businesses,
		services:     services,
		appointments: appointments,
		notifier:     notifier,
	}
}

func bookingRequest(staffID, timeSlot string) models.AppointmentCreate {
	return models.AppointmentCreate{
		CustomerName:    "Grace",
		CustomerPhone:   "+15550100",
		ServiceID:       "svc-cut",
		StaffID:         staffID,
		AppointmentDate: "2026-09-01",
		TimeSlot:        timeSlot,
	}
}
