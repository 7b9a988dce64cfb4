package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rsynek/optaweb-employee-rostering/internal/core/roster"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeEmployeeRepo struct {
	employees map[string]*Employee
	sequence  int
	order     []string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	clone := cloneEmployee(e)
	r.sequence++
	clone.ID = fmt.Sprintf("emp-%d", r.sequence)
	clone.Version = 1
	r.employees[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneEmployee(clone), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	stored, ok := r.employees[e.ID]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	if stored.Version != e.Version {
		return nil, ErrConcurrentModification
	}
	clone := cloneEmployee(e)
	clone.Version = stored.Version + 1
	r.employees[clone.ID] = clone
	return cloneEmployee(clone), nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(r.employees, id)
	for idx, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*Employee, error) {
	stored, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(stored), nil
}

func (r *fakeEmployeeRepo) FindByName(_ context.Context, tenantID int64, name string) (*Employee, error) {
	for _, id := range r.order {
		stored := r.employees[id]
		if stored.TenantID == tenantID && stored.Name == name {
			return cloneEmployee(stored), nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) FindAllByTenant(_ context.Context, tenantID int64) ([]*Employee, error) {
	var found []*Employee
	for _, id := range r.order {
		stored := r.employees[id]
		if stored.TenantID == tenantID {
			found = append(found, cloneEmployee(stored))
		}
	}
	return found, nil
}

func cloneEmployee(e *Employee) *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Skills = cloneSkills(e.Skills)
	clone.Contract = cloneContract(e.Contract)
	return &clone
}

type fakeAvailabilityRepo struct {
	availabilities map[string]*EmployeeAvailability
	sequence       int
	order          []string
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{availabilities: make(map[string]*EmployeeAvailability)}
}

func (r *fakeAvailabilityRepo) Create(_ context.Context, a *EmployeeAvailability) (*EmployeeAvailability, error) {
	clone := *a
	r.sequence++
	clone.ID = fmt.Sprintf("avail-%d", r.sequence)
	clone.Version = 1
	r.availabilities[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	result := clone
	return &result, nil
}

func (r *fakeAvailabilityRepo) Update(_ context.Context, a *EmployeeAvailability) (*EmployeeAvailability, error) {
	stored, ok := r.availabilities[a.ID]
	if !ok {
		return nil, ErrAvailabilityNotFound
	}
	if stored.Version != a.Version {
		return nil, ErrConcurrentModification
	}
	clone := *a
	clone.Version = stored.Version + 1
	r.availabilities[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakeAvailabilityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.availabilities[id]; !ok {
		return ErrAvailabilityNotFound
	}
	delete(r.availabilities, id)
	return nil
}

func (r *fakeAvailabilityRepo) FindByID(_ context.Context, id string) (*EmployeeAvailability, error) {
	stored, ok := r.availabilities[id]
	if !ok {
		return nil, ErrAvailabilityNotFound
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeAvailabilityRepo) FindAllByTenant(_ context.Context, tenantID int64) ([]*EmployeeAvailability, error) {
	var found []*EmployeeAvailability
	for _, id := range r.order {
		stored, ok := r.availabilities[id]
		if !ok || stored.TenantID != tenantID {
			continue
		}
		clone := *stored
		found = append(found, &clone)
	}
	return found, nil
}

type fakeRosterStateRepo struct {
	states map[int64]*roster.RosterState
}

func newFakeRosterStateRepo() *fakeRosterStateRepo {
	return &fakeRosterStateRepo{states: make(map[int64]*roster.RosterState)}
}

func (r *fakeRosterStateRepo) FindByTenantID(_ context.Context, tenantID int64) (*roster.RosterState, error) {
	state, ok := r.states[tenantID]
	if !ok {
		return nil, roster.ErrRosterStateNotFound
	}
	clone := *state
	return &clone, nil
}

type stubImportSource struct {
	views []EmployeeView
	err   error
}

func (s *stubImportSource) ReadEmployees(_ context.Context, _ int64, _ io.Reader) ([]EmployeeView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

type fixture struct {
	employees      *fakeEmployeeRepo
	availabilities *fakeAvailabilityRepo
	rosterStates   *fakeRosterStateRepo
	source         *stubImportSource
	clock          *stubClock
	svc            *Service
}

func newFixture() *fixture {
	f := &fixture{
		employees:      newFakeEmployeeRepo(),
		availabilities: newFakeAvailabilityRepo(),
		rosterStates:   newFakeRosterStateRepo(),
		source:         &stubImportSource{},
		clock:          &stubClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.svc = NewService(f.employees, f.availabilities, f.rosterStates, f.source, f.clock, nil)
	return f
}

func TestService_CreateEmployee_AssignsIDAndVersion(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{
		TenantID: 1,
		Name:     "Amy Cole",
		Skills:   []Skill{{ID: "skill-1", TenantID: 1, Name: "Nurse"}},
		Contract: &Contract{ID: "contract-1", TenantID: 1, Name: "Full time"},
		ShortID:  "AC",
		Color:    "#33ccff",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.Version != 1 {
		t.Fatalf("expected initial version 1, got %d", created.Version)
	}
	if !created.CreatedAt.Equal(f.clock.now) || !created.UpdatedAt.Equal(f.clock.now) {
		t.Fatalf("expected timestamps to use clock now")
	}
}

func TestService_CreateEmployee_BlankName(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{TenantID: 1, Name: "   "})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Violations) != 1 || verr.Violations[0].Field != "name" {
		t.Fatalf("expected name violation, got %+v", verr.Violations)
	}
}

func TestService_CreateEmployee_SkillTenantMismatch(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{
		TenantID: 1,
		Name:     "Amy Cole",
		Skills:   []Skill{{ID: "skill-9", TenantID: 2, Name: "Nurse"}},
	})
	if !errors.Is(err, ErrTenantMismatch) {
		t.Fatalf("expected ErrTenantMismatch, got %v", err)
	}
	if len(f.employees.employees) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestService_GetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.svc.GetEmployee(context.Background(), 1, "missing")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_GetEmployee_CrossTenant(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created, err := f.svc.CreateEmployee(context.Background(), 2, EmployeeView{TenantID: 2, Name: "Beth Fox"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	_, err = f.svc.GetEmployee(context.Background(), 1, created.ID)
	if !errors.Is(err, ErrTenantMismatch) {
		t.Fatalf("expected ErrTenantMismatch, got %v", err)
	}
}

func TestService_UpdateEmployee_CopiesMutableFields(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{TenantID: 1, Name: "Amy Cole", ShortID: "AC"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	updated, err := f.svc.UpdateEmployee(context.Background(), 1, EmployeeView{
		ID:       &created.ID,
		Version:  created.Version,
		TenantID: 1,
		Name:     "Amy Cole-Fox",
		Skills:   []Skill{{ID: "skill-1", TenantID: 1, Name: "Nurse"}},
		Contract: &Contract{ID: "contract-1", TenantID: 1, Name: "Part time"},
		ShortID:  "ACF",
		Color:    "#ff0000",
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if updated.Name != "Amy Cole-Fox" || updated.ShortID != "ACF" || updated.Color != "#ff0000" {
		t.Fatalf("expected mutable fields to be copied, got %+v", updated)
	}
	if updated.Contract == nil || updated.Contract.ID != "contract-1" {
		t.Fatalf("expected contract to be copied, got %+v", updated.Contract)
	}
	if updated.Version != created.Version+1 {
		t.Fatalf("expected advanced version, got %d", updated.Version)
	}
}

func TestService_UpdateEmployee_TenantChange(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{TenantID: 1, Name: "Amy Cole"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	_, err = f.svc.UpdateEmployee(context.Background(), 2, EmployeeView{
		ID:       &created.ID,
		Version:  created.Version,
		TenantID: 2,
		Name:     "Amy Cole",
	})
	if !errors.Is(err, ErrTenantImmutable) {
		t.Fatalf("expected ErrTenantImmutable, got %v", err)
	}

	stored, err := f.employees.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.TenantID != 1 || stored.Version != created.Version {
		t.Fatalf("expected stored record unchanged, got %+v", stored)
	}
}

func TestService_UpdateEmployee_StaleVersion(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{TenantID: 1, Name: "Amy Cole"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	first := EmployeeView{ID: &created.ID, Version: created.Version, TenantID: 1, Name: "First"}
	if _, err := f.svc.UpdateEmployee(context.Background(), 1, first); err != nil {
		t.Fatalf("first update returned error: %v", err)
	}

	second := EmployeeView{ID: &created.ID, Version: created.Version, TenantID: 1, Name: "Second"}
	_, err = f.svc.UpdateEmployee(context.Background(), 1, second)
	if !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestService_UpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture()
	id := "missing"
	_, err := f.svc.UpdateEmployee(context.Background(), 1, EmployeeView{ID: &id, TenantID: 1, Name: "Ghost"})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_DeleteEmployee_AbsentReturnsFalse(t *testing.T) {
	t.Parallel()

	f := newFixture()
	deleted, err := f.svc.DeleteEmployee(context.Background(), 1, "missing")
	if err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}
	if deleted {
		t.Fatalf("expected false for absent record")
	}
}

func TestService_DeleteEmployee_CrossTenant(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created, err := f.svc.CreateEmployee(context.Background(), 2, EmployeeView{TenantID: 2, Name: "Beth Fox"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	_, err = f.svc.DeleteEmployee(context.Background(), 1, created.ID)
	if !errors.Is(err, ErrTenantMismatch) {
		t.Fatalf("expected ErrTenantMismatch, got %v", err)
	}
	if _, err := f.employees.FindByID(context.Background(), created.ID); err != nil {
		t.Fatalf("expected record to survive, got %v", err)
	}
}

func TestService_DeleteEmployee_Success(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{TenantID: 1, Name: "Amy Cole"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	deleted, err := f.svc.DeleteEmployee(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}
	if !deleted {
		t.Fatalf("expected true for existing record")
	}
	if _, err := f.employees.FindByID(context.Background(), created.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected record to be gone, got %v", err)
	}
}

func TestService_ListEmployees_ScopedToTenant(t *testing.T) {
	t.Parallel()

	f := newFixture()
	for i, tenant := range []int64{1, 1, 2} {
		name := fmt.Sprintf("Employee %d", i)
		if _, err := f.svc.CreateEmployee(context.Background(), tenant, EmployeeView{TenantID: tenant, Name: name}); err != nil {
			t.Fatalf("seed create returned error: %v", err)
		}
	}

	employees, err := f.svc.ListEmployees(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees for tenant 1, got %d", len(employees))
	}
	for _, e := range employees {
		if e.TenantID != 1 {
			t.Fatalf("unexpected tenant in listing: %+v", e)
		}
	}
}

func TestService_EmployeeFromView_CarriesIdentity(t *testing.T) {
	t.Parallel()

	f := newFixture()
	id := "emp-42"
	e, err := f.svc.EmployeeFromView(1, EmployeeView{ID: &id, Version: 7, TenantID: 1, Name: "Amy Cole"})
	if err != nil {
		t.Fatalf("EmployeeFromView returned error: %v", err)
	}
	if e.ID != id || e.Version != 7 {
		t.Fatalf("expected identity carried over, got id=%s version=%d", e.ID, e.Version)
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Violations: []Violation{{Field: "name", Message: "must not be blank"}}}
	if !strings.Contains(err.Error(), "name: must not be blank") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
