package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	businessRepo "slotwise/database/repository/business"
	catalogRepo "slotwise/database/repository/catalog"
	"slotwise/models"
)

type stubServiceRepo struct {
	catalogRepo.ServiceRepository
	services map[string]models.Service
}

func (r *stubServiceRepo) Insert(s *models.Service) error {
	r.services[s.ID] = *s
	return nil
}

func (r *stubServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	copied := s
	return &copied, nil
}

func (r *stubServiceRepo) Update(id, businessID string, data models.ServiceCreate) (bool, error) {
	s, ok := r.services[id]
	if !ok || s.BusinessID != businessID {
		return false, nil
	}
	s.Name, s.Description, s.Duration, s.Price = data.Name, data.Description, data.Duration, data.Price
	r.services[id] = s
	return true, nil
}

func (r *stubServiceRepo) Delete(id, businessID string) (bool, error) {
	s, ok := r.services[id]
	if !ok || s.BusinessID != businessID {
		return false, nil
	}
	delete(r.services, id)
	return true, nil
}

type stubStaffRepo struct {
	catalogRepo.StaffRepository
	staff map[string]models.Staff
}

func (r *stubStaffRepo) Insert(s *models.Staff) error {
	r.staff[s.ID] = *s
	return nil
}

func (r *stubStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, nil
	}
	copied := s
	return &copied, nil
}

func (r *stubStaffRepo) Update(id, businessID string, data models.StaffCreate) (bool, error) {
	s, ok := r.staff[id]
	if !ok || s.BusinessID != businessID {
		return false, nil
	}
	s.Name, s.Phone, s.Email = data.Name, data.Phone, data.Email
	r.staff[id] = s
	return true, nil
}

func (r *stubStaffRepo) Delete(id, businessID string) (bool, error) {
	s, ok := r.staff[id]
	if !ok || s.BusinessID != businessID {
		return false, nil
	}
	delete(r.staff, id)
	return true, nil
}

type stubCounterRepo struct {
	businessRepo.BusinessRepository
	counters map[string]int
}

func (r *stubCounterRepo) IncrementCounter(id, field string, delta int) error {
	r.counters[id+"/"+field] += delta
	return nil
}

func newCatalogFixture() (*DefaultCatalogService, *stubCounterRepo) {
	counters := &stubCounterRepo{counters: make(map[string]int)}
	svc := &DefaultCatalogService{
		Services:   &stubServiceRepo{services: make(map[string]models.Service)},
		Staff:      &stubStaffRepo{staff: make(map[string]models.Staff)},
		Businesses: counters,
	}
	return svc, counters
}

func TestCreateStaffDefaults(t *testing.T) {
	svc, counters := newCatalogFixture()

	member, err := svc.CreateStaff("biz-1", models.StaffCreate{Name: "Ada"})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, member.WorkingDays, "empty working days default to Mon-Fri")
	assert.NotNil(t, member.Services)
	assert.Empty(t, member.Services)
	assert.Equal(t, "biz-1", member.BusinessID)
	assert.Equal(t, 1, counters.counters["biz-1/total_staff"])
}

func TestCreateStaffKeepsExplicitWorkingDays(t *testing.T) {
	svc, _ := newCatalogFixture()

	member, err := svc.CreateStaff("biz-1", models.StaffCreate{
		Name:        "Ada",
		WorkingDays: []int{6, 7},
		Services:    []string{"svc-cut"},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{6, 7}, member.WorkingDays)
	assert.Equal(t, []string{"svc-cut"}, member.Services)
}

func TestServiceCounterMovement(t *testing.T) {
	svc, counters := newCatalogFixture()

	first, err := svc.CreateService("biz-1", models.ServiceCreate{Name: "Haircut", Duration: 30, Price: 25})
	require.NoError(t, err)
	_, err = svc.CreateService("biz-1", models.ServiceCreate{Name: "Shave", Duration: 15, Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, counters.counters["biz-1/total_services"])

	require.NoError(t, svc.DeleteService("biz-1", first.ID))
	assert.Equal(t, 1, counters.counters["biz-1/total_services"])

	// A failed delete must not move the counter.
	require.Error(t, svc.DeleteService("biz-1", "svc-missing"))
	assert.Equal(t, 1, counters.counters["biz-1/total_services"])
}

func TestStaffCounterMovement(t *testing.T) {
	svc, counters := newCatalogFixture()

	member, err := svc.CreateStaff("biz-1", models.StaffCreate{Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, 1, counters.counters["biz-1/total_staff"])

	require.NoError(t, svc.DeleteStaff("biz-1", member.ID))
	assert.Equal(t, 0, counters.counters["biz-1/total_staff"])

	require.Error(t, svc.DeleteStaff("biz-1", member.ID))
	assert.Equal(t, 0, counters.counters["biz-1/total_staff"])
}

func TestUpdateServiceScopedToOwner(t *testing.T) {
	svc, _ := newCatalogFixture()

	created, err := svc.CreateService("biz-1", models.ServiceCreate{Name: "Haircut", Duration: 30, Price: 25})
	require.NoError(t, err)

	updated, err := svc.UpdateService("biz-1", created.ID, models.ServiceCreate{Name: "Deluxe Cut", Duration: 60, Price: 99})
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Cut", updated.Name)
	assert.Equal(t, 60, updated.Duration)

	// Another tenant cannot touch it.
	_, err = svc.UpdateService("biz-2", created.ID, models.ServiceCreate{Name: "Hijack", Duration: 1, Price: 0})
	assert.Error(t, err)
	require.Error(t, svc.DeleteService("biz-2", created.ID))
}

func TestUpdateStaffScopedToOwner(t *testing.T) {
	svc, _ := newCatalogFixture()

	member, err := svc.CreateStaff("biz-1", models.StaffCreate{Name: "Ada"})
	require.NoError(t, err)

	updated, err := svc.UpdateStaff("biz-1", member.ID, models.StaffCreate{Name: "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)

	_, err = svc.UpdateStaff("biz-2", member.ID, models.StaffCreate{Name: "Hijack"})
	assert.Error(t, err)
}
