package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanEmployee_Success(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()
	updatedAt := createdAt.Add(time.Minute)

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 12 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "emp-1"
		*(dest[1].(*int64)) = 1
		*(dest[2].(*string)) = "Amy Cole"
		*(dest[3].(*string)) = "AC"
		*(dest[4].(*string)) = "#33ccff"
		*(dest[5].(*int64)) = 3
		*(dest[6].(*time.Time)) = createdAt
		*(dest[7].(*time.Time)) = updatedAt

		contractID := dest[8].(*sql.NullString)
		contractID.String = "contract-1"
		contractID.Valid = true

		contractTenant := dest[9].(*sql.NullInt64)
		contractTenant.Int64 = 1
		contractTenant.Valid = true

		contractName := dest[10].(*sql.NullString)
		contractName.String = "Full time"
		contractName.Valid = true

		*(dest[11].(*[]byte)) = []byte(`[{"id":"skill-1","tenant_id":1,"name":"Nurse"}]`)
		return nil
	}}

	e, err := scanEmployee(row)
	if err != nil {
		t.Fatalf("scanEmployee returned error: %v", err)
	}

	if e.ID != "emp-1" || e.TenantID != 1 || e.Version != 3 {
		t.Fatalf("unexpected identity fields: %+v", e)
	}
	if e.Contract == nil || e.Contract.ID != "contract-1" || e.Contract.TenantID != 1 {
		t.Fatalf("expected contract reference, got %+v", e.Contract)
	}
	if len(e.Skills) != 1 || e.Skills[0].Name != "Nurse" || e.Skills[0].TenantID != 1 {
		t.Fatalf("expected decoded skills, got %+v", e.Skills)
	}
}

func TestScanEmployee_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanEmployee(row)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	contractErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "employees_contract_id_fkey"}
	if !errors.Is(translateEmployeePgError(contractErr), employee.ErrContractNotFound) {
		t.Fatalf("expected contract fk violation to map to ErrContractNotFound")
	}

	skillErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "employee_skills_skill_id_fkey"}
	if !errors.Is(translateEmployeePgError(skillErr), employee.ErrSkillNotFound) {
		t.Fatalf("expected skill fk violation to map to ErrSkillNotFound")
	}

	if !errors.Is(translateEmployeePgError(pgx.ErrNoRows), employee.ErrEmployeeNotFound) {
		t.Fatalf("expected no rows to map to ErrEmployeeNotFound")
	}

	other := errors.New("other")
	if translateEmployeePgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestEmployeeRepository_FindAllByTenant(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	query := regexp.QuoteMeta(employeeSelect + `
         WHERE e.tenant_id = $1
         GROUP BY e.id, c.id
         ORDER BY e.name, e.id
    `)

	now := time.Now().UTC()
	columns := []string{
		"id", "tenant_id", "name", "short_id", "color", "version", "created_at", "updated_at",
		"contract_id", "contract_tenant_id", "contract_name", "skills",
	}
	rows := pgxmock.NewRows(columns).
		AddRow("emp-1", int64(1), "Amy Cole", "AC", "", int64(1), now, now, nil, nil, nil, []byte(`[]`)).
		AddRow("emp-2", int64(1), "Beth Fox", "BF", "", int64(2), now, now, nil, nil, nil, []byte(`[{"id":"skill-1","tenant_id":1,"name":"Nurse"}]`))

	mock.ExpectQuery(query).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	employees, err := repo.FindAllByTenant(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindAllByTenant returned error: %v", err)
	}

	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if len(employees[1].Skills) != 1 {
		t.Fatalf("expected skills on second employee, got %+v", employees[1].Skills)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Update_VersionConflict(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("UPDATE employees").
		WithArgs("Amy Cole", nil, "AC", "", pgxmock.AnyArg(), "emp-1", int64(1)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT version FROM employees").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(int64(2)))

	_, err = repo.Update(context.Background(), &employee.Employee{
		ID:       "emp-1",
		Version:  1,
		TenantID: 1,
		Name:     "Amy Cole",
		ShortID:  "AC",
	})
	if !errors.Is(err, employee.ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("UPDATE employees").
		WithArgs("Ghost", nil, "", "", pgxmock.AnyArg(), "missing", int64(0)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT version FROM employees").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.Update(context.Background(), &employee.Employee{ID: "missing", TenantID: 1, Name: "Ghost"})
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.Delete(context.Background(), "missing")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
