package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rsynek/optaweb-employee-rostering/internal/core/roster"
)

func seedAvailabilityFixture(t *testing.T, timezone string) (*fixture, *Employee) {
	t.Helper()

	f := newFixture()
	f.rosterStates.states[1] = &roster.RosterState{TenantID: 1, Timezone: timezone}

	emp, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{TenantID: 1, Name: "Amy Cole"})
	if err != nil {
		t.Fatalf("seed employee returned error: %v", err)
	}
	return f, emp
}

func TestService_CreateAvailability_LocalTimeRoundTrip(t *testing.T) {
	t.Parallel()

	zones := []string{"America/New_York", "Europe/Berlin", "Asia/Tokyo", "UTC"}
	for _, zone := range zones {
		zone := zone
		t.Run(zone, func(t *testing.T) {
			t.Parallel()

			f, emp := seedAvailabilityFixture(t, zone)

			start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
			end := time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC)

			created, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
				TenantID:      1,
				EmployeeID:    emp.ID,
				StartDateTime: start,
				EndDateTime:   end,
				State:         StateDesired,
			})
			if err != nil {
				t.Fatalf("CreateAvailability returned error: %v", err)
			}
			if created.ID == nil || created.Version != 1 {
				t.Fatalf("expected assigned id and initial version, got %+v", created)
			}

			got, err := f.svc.GetAvailability(context.Background(), 1, *created.ID)
			if err != nil {
				t.Fatalf("GetAvailability returned error: %v", err)
			}

			if !got.StartDateTime.Equal(start) || !got.EndDateTime.Equal(end) {
				t.Fatalf("round trip lost local times in %s: got %v / %v", zone, got.StartDateTime, got.EndDateTime)
			}
			if got.State != StateDesired {
				t.Fatalf("expected state to survive, got %s", got.State)
			}
		})
	}
}

func TestService_CreateAvailability_StoresInstantInTenantZone(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "America/New_York")

	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC)

	created, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: start,
		EndDateTime:   end,
		State:         StateUnavailable,
	})
	if err != nil {
		t.Fatalf("CreateAvailability returned error: %v", err)
	}

	stored := f.availabilities.availabilities[*created.ID]
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation returned error: %v", err)
	}
	// 9:00 local in New York during winter is 14:00 UTC.
	want := time.Date(2025, 1, 15, 9, 0, 0, 0, loc)
	if !stored.StartDateTime.Equal(want) {
		t.Fatalf("expected stored instant %v, got %v", want, stored.StartDateTime)
	}
}

func TestService_CreateAvailability_EmployeeNotFound(t *testing.T) {
	t.Parallel()

	f, _ := seedAvailabilityFixture(t, "UTC")

	_, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    "missing",
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_CreateAvailability_MissingRosterState(t *testing.T) {
	t.Parallel()

	f := newFixture()
	emp, err := f.svc.CreateEmployee(context.Background(), 1, EmployeeView{TenantID: 1, Name: "Amy Cole"})
	if err != nil {
		t.Fatalf("seed employee returned error: %v", err)
	}

	_, err = f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if !errors.Is(err, roster.ErrRosterStateNotFound) {
		t.Fatalf("expected ErrRosterStateNotFound, got %v", err)
	}
}

func TestService_CreateAvailability_EndBeforeStart(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "UTC")

	_, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestService_ListAvailabilities(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "Asia/Tokyo")

	for hour := 9; hour < 12; hour++ {
		_, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
			TenantID:      1,
			EmployeeID:    emp.ID,
			StartDateTime: time.Date(2025, 6, 2, hour, 0, 0, 0, time.UTC),
			EndDateTime:   time.Date(2025, 6, 2, hour+1, 0, 0, 0, time.UTC),
			State:         StateDesired,
		})
		if err != nil {
			t.Fatalf("CreateAvailability returned error: %v", err)
		}
	}

	views, err := f.svc.ListAvailabilities(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListAvailabilities returned error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	for _, v := range views {
		if !v.StartDateTime.Equal(time.Date(2025, 6, 2, v.StartDateTime.Hour(), 0, 0, 0, time.UTC)) {
			t.Fatalf("expected local wall clock times, got %v", v.StartDateTime)
		}
	}
}

func TestService_GetAvailability_NotFound(t *testing.T) {
	t.Parallel()

	f, _ := seedAvailabilityFixture(t, "UTC")
	_, err := f.svc.GetAvailability(context.Background(), 1, "missing")
	if !errors.Is(err, ErrAvailabilityNotFound) {
		t.Fatalf("expected ErrAvailabilityNotFound, got %v", err)
	}
}

func TestService_GetAvailability_CrossTenant(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "UTC")
	created, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateUndesired,
	})
	if err != nil {
		t.Fatalf("CreateAvailability returned error: %v", err)
	}

	_, err = f.svc.GetAvailability(context.Background(), 2, *created.ID)
	if !errors.Is(err, ErrTenantMismatch) {
		t.Fatalf("expected ErrTenantMismatch, got %v", err)
	}
}

func TestService_UpdateAvailability_AdvancesVersionSynchronously(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "Europe/Berlin")
	created, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if err != nil {
		t.Fatalf("CreateAvailability returned error: %v", err)
	}

	updated, err := f.svc.UpdateAvailability(context.Background(), 1, AvailabilityView{
		ID:            created.ID,
		Version:       created.Version,
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		State:         StateUnavailable,
	})
	if err != nil {
		t.Fatalf("UpdateAvailability returned error: %v", err)
	}

	if updated.Version != created.Version+1 {
		t.Fatalf("expected advanced version in the response, got %d", updated.Version)
	}
	if updated.State != StateUnavailable {
		t.Fatalf("expected state to update, got %s", updated.State)
	}
	if !updated.StartDateTime.Equal(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected updated local start, got %v", updated.StartDateTime)
	}
}

func TestService_UpdateAvailability_StaleVersion(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "UTC")
	created, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if err != nil {
		t.Fatalf("CreateAvailability returned error: %v", err)
	}

	base := AvailabilityView{
		ID:            created.ID,
		Version:       created.Version,
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateUndesired,
	}
	if _, err := f.svc.UpdateAvailability(context.Background(), 1, base); err != nil {
		t.Fatalf("first update returned error: %v", err)
	}

	_, err = f.svc.UpdateAvailability(context.Background(), 1, base)
	if !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestService_UpdateAvailability_TenantChange(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "UTC")

	// Record owned by another tenant, reachable by id.
	stored, err := f.availabilities.Create(context.Background(), &EmployeeAvailability{
		TenantID:      2,
		EmployeeID:    "emp-other",
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if err != nil {
		t.Fatalf("seed availability returned error: %v", err)
	}

	_, err = f.svc.UpdateAvailability(context.Background(), 1, AvailabilityView{
		ID:            &stored.ID,
		Version:       stored.Version,
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if !errors.Is(err, ErrTenantImmutable) {
		t.Fatalf("expected ErrTenantImmutable, got %v", err)
	}
}

func TestService_DeleteAvailability_AbsentReturnsFalse(t *testing.T) {
	t.Parallel()

	f, _ := seedAvailabilityFixture(t, "UTC")
	deleted, err := f.svc.DeleteAvailability(context.Background(), 1, "missing")
	if err != nil {
		t.Fatalf("DeleteAvailability returned error: %v", err)
	}
	if deleted {
		t.Fatalf("expected false for absent record")
	}
}

func TestService_DeleteAvailability_Success(t *testing.T) {
	t.Parallel()

	f, emp := seedAvailabilityFixture(t, "UTC")
	created, err := f.svc.CreateAvailability(context.Background(), 1, AvailabilityView{
		TenantID:      1,
		EmployeeID:    emp.ID,
		StartDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
		State:         StateDesired,
	})
	if err != nil {
		t.Fatalf("CreateAvailability returned error: %v", err)
	}

	deleted, err := f.svc.DeleteAvailability(context.Background(), 1, *created.ID)
	if err != nil {
		t.Fatalf("DeleteAvailability returned error: %v", err)
	}
	if !deleted {
		t.Fatalf("expected true for existing record")
	}
}
