package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	pgdb "github.com/rsynek/optaweb-employee-rostering/internal/platform/db/postgres"
)

const availabilitySelect = `
        SELECT a.id,
               a.tenant_id,
               a.employee_id,
               a.start_at,
               a.end_at,
               a.state,
               a.version,
               a.created_at,
               a.updated_at
          FROM employee_availabilities a
`

// AvailabilityRepository は PostgreSQL を利用した稼働可否永続化の実装です。
type AvailabilityRepository struct {
	pool pgdb.Queryer
}

// NewAvailabilityRepository は AvailabilityRepository を生成します。
func NewAvailabilityRepository(pool pgdb.Queryer) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

// Create は稼働可否を新規作成し、識別子と初期バージョンを割り当てます。
func (r *AvailabilityRepository) Create(ctx context.Context, a *employee.EmployeeAvailability) (*employee.EmployeeAvailability, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	id := uuid.NewString()

	row := exec.QueryRow(ctx, `
        INSERT INTO employee_availabilities (id, tenant_id, employee_id, start_at, end_at, state, version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)
        RETURNING id, tenant_id, employee_id, start_at, end_at, state, version, created_at, updated_at
    `,
		id,
		a.TenantID,
		a.EmployeeID,
		a.StartDateTime,
		a.EndDateTime,
		string(a.State),
		a.CreatedAt,
		a.UpdatedAt,
	)

	created, err := scanAvailability(row)
	if err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	return created, nil
}

// Update は呼び出し側のバージョンと突き合わせる compare-and-swap で
// 稼働可否を同期更新し、進んだバージョンを応答に含めて返します。
func (r *AvailabilityRepository) Update(ctx context.Context, a *employee.EmployeeAvailability) (*employee.EmployeeAvailability, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	row := exec.QueryRow(ctx, `
        UPDATE employee_availabilities
           SET employee_id = $1,
               start_at = $2,
               end_at = $3,
               state = $4,
               updated_at = $5,
               version = version + 1
         WHERE id = $6 AND version = $7
        RETURNING id, tenant_id, employee_id, start_at, end_at, state, version, created_at, updated_at
    `,
		a.EmployeeID,
		a.StartDateTime,
		a.EndDateTime,
		string(a.State),
		a.UpdatedAt,
		a.ID,
		a.Version,
	)

	updated, err := scanAvailability(row)
	if errors.Is(err, employee.ErrAvailabilityNotFound) {
		return nil, r.classifyMissedUpdate(ctx, exec, a.ID)
	}
	if err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	return updated, nil
}

func (r *AvailabilityRepository) classifyMissedUpdate(ctx context.Context, exec pgdb.Queryer, id string) error {
	var current int64
	err := exec.QueryRow(ctx, `SELECT version FROM employee_availabilities WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrAvailabilityNotFound
	}
	if err != nil {
		return translateAvailabilityPgError(err)
	}
	return employee.ErrConcurrentModification
}

// Delete は稼働可否を削除します。
func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employee_availabilities WHERE id = $1`, id)
	if err != nil {
		return translateAvailabilityPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrAvailabilityNotFound
	}
	return nil
}

// FindByID は ID で稼働可否を取得します。
func (r *AvailabilityRepository) FindByID(ctx context.Context, id string) (*employee.EmployeeAvailability, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, availabilitySelect+`
         WHERE a.id = $1
         LIMIT 1
    `, id)

	found, err := scanAvailability(row)
	if err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	return found, nil
}

// FindAllByTenant はテナントの稼働可否をすべて取得します。
func (r *AvailabilityRepository) FindAllByTenant(ctx context.Context, tenantID int64) ([]*employee.EmployeeAvailability, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, availabilitySelect+`
         WHERE a.tenant_id = $1
         ORDER BY a.start_at, a.id
    `, tenantID)
	if err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	defer rows.Close()

	var availabilities []*employee.EmployeeAvailability
	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, translateAvailabilityPgError(err)
		}
		availabilities = append(availabilities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	return availabilities, nil
}

func scanAvailability(row pgx.Row) (*employee.EmployeeAvailability, error) {
	var (
		id         string
		tenantID   int64
		employeeID string
		startAt    time.Time
		endAt      time.Time
		state      string
		version    int64
		createdAt  time.Time
		updatedAt  time.Time
	)

	if err := row.Scan(
		&id,
		&tenantID,
		&employeeID,
		&startAt,
		&endAt,
		&state,
		&version,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrAvailabilityNotFound
		}
		return nil, err
	}

	return &employee.EmployeeAvailability{
		ID:            id,
		Version:       version,
		TenantID:      tenantID,
		EmployeeID:    employeeID,
		StartDateTime: startAt,
		EndDateTime:   endAt,
		State:         employee.AvailabilityState(state),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func translateAvailabilityPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrAvailabilityNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			if pgErr.ConstraintName == "employee_availabilities_employee_id_fkey" {
				return employee.ErrEmployeeNotFound
			}
		case checkViolationCode:
			switch pgErr.ConstraintName {
			case "employee_availabilities_time_range_check":
				return employee.ErrInvalidTimeRange
			case "employee_availabilities_state_check":
				return employee.ErrInvalidState
			}
		}
	}

	return err
}
