package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/roster"
)

func TestScanAvailability_Success(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 21, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 9 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "avail-1"
		*(dest[1].(*int64)) = 1
		*(dest[2].(*string)) = "emp-1"
		*(dest[3].(*time.Time)) = start
		*(dest[4].(*time.Time)) = end
		*(dest[5].(*string)) = string(employee.StateDesired)
		*(dest[6].(*int64)) = 2
		*(dest[7].(*time.Time)) = now
		*(dest[8].(*time.Time)) = now
		return nil
	}}

	a, err := scanAvailability(row)
	if err != nil {
		t.Fatalf("scanAvailability returned error: %v", err)
	}

	if a.ID != "avail-1" || a.EmployeeID != "emp-1" || a.Version != 2 {
		t.Fatalf("unexpected identity fields: %+v", a)
	}
	if a.State != employee.StateDesired {
		t.Fatalf("expected state desired, got %s", a.State)
	}
	if !a.StartDateTime.Equal(start) || !a.EndDateTime.Equal(end) {
		t.Fatalf("unexpected time range: %v / %v", a.StartDateTime, a.EndDateTime)
	}
}

func TestScanAvailability_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanAvailability(row)
	if !errors.Is(err, employee.ErrAvailabilityNotFound) {
		t.Fatalf("expected ErrAvailabilityNotFound, got %v", err)
	}
}

func TestTranslateAvailabilityPgError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "employee_availabilities_employee_id_fkey"}
	if !errors.Is(translateAvailabilityPgError(fkErr), employee.ErrEmployeeNotFound) {
		t.Fatalf("expected employee fk violation to map to ErrEmployeeNotFound")
	}

	rangeErr := &pgconn.PgError{Code: checkViolationCode, ConstraintName: "employee_availabilities_time_range_check"}
	if !errors.Is(translateAvailabilityPgError(rangeErr), employee.ErrInvalidTimeRange) {
		t.Fatalf("expected time range check to map to ErrInvalidTimeRange")
	}

	stateErr := &pgconn.PgError{Code: checkViolationCode, ConstraintName: "employee_availabilities_state_check"}
	if !errors.Is(translateAvailabilityPgError(stateErr), employee.ErrInvalidState) {
		t.Fatalf("expected state check to map to ErrInvalidState")
	}
}

func TestAvailabilityRepository_Update_VersionConflict(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAvailabilityRepository(mock)

	start := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 21, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE employee_availabilities").
		WithArgs("emp-1", start, end, string(employee.StateUnavailable), pgxmock.AnyArg(), "avail-1", int64(1)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT version FROM employee_availabilities").
		WithArgs("avail-1").
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(int64(4)))

	_, err = repo.Update(context.Background(), &employee.EmployeeAvailability{
		ID:            "avail-1",
		Version:       1,
		TenantID:      1,
		EmployeeID:    "emp-1",
		StartDateTime: start,
		EndDateTime:   end,
		State:         employee.StateUnavailable,
	})
	if !errors.Is(err, employee.ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAvailabilityRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAvailabilityRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employee_availabilities WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.Delete(context.Background(), "missing")
	if !errors.Is(err, employee.ErrAvailabilityNotFound) {
		t.Fatalf("expected ErrAvailabilityNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRosterStateRepository_FindByTenantID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRosterStateRepository(mock)

	mock.ExpectQuery("SELECT tenant_id, timezone").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"tenant_id", "timezone"}).AddRow(int64(1), "Europe/Berlin"))

	state, err := repo.FindByTenantID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByTenantID returned error: %v", err)
	}
	if state.Timezone != "Europe/Berlin" {
		t.Fatalf("unexpected timezone: %s", state.Timezone)
	}

	mock.ExpectQuery("SELECT tenant_id, timezone").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.FindByTenantID(context.Background(), 9); !errors.Is(err, roster.ErrRosterStateNotFound) {
		t.Fatalf("expected ErrRosterStateNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
