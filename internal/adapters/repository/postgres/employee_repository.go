package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	pgdb "github.com/rsynek/optaweb-employee-rostering/internal/platform/db/postgres"
)

const (
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

const employeeSelect = `
        SELECT e.id,
               e.tenant_id,
               e.name,
               e.short_id,
               e.color,
               e.version,
               e.created_at,
               e.updated_at,
               c.id,
               c.tenant_id,
               c.name,
               COALESCE(json_agg(json_build_object('id', s.id, 'tenant_id', s.tenant_id, 'name', s.name))
                        FILTER (WHERE s.id IS NOT NULL), '[]')
          FROM employees e
          LEFT JOIN contracts c ON c.id = e.contract_id
          LEFT JOIN employee_skills es ON es.employee_id = e.id
          LEFT JOIN skills s ON s.id = es.skill_id
`

// EmployeeRepository は PostgreSQL を利用した従業員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は従業員を新規作成し、識別子と初期バージョンを割り当てます。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	id := uuid.NewString()

	if _, err := exec.Exec(ctx, `
        INSERT INTO employees (id, tenant_id, name, contract_id, short_id, color, version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)
    `,
		id,
		e.TenantID,
		e.Name,
		nullableContractID(e.Contract),
		e.ShortID,
		e.Color,
		e.CreatedAt,
		e.UpdatedAt,
	); err != nil {
		return nil, translateEmployeePgError(err)
	}

	if err := r.replaceSkills(ctx, exec, id, e.Skills); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Update は呼び出し側のバージョンと突き合わせる compare-and-swap で
// 従業員を更新します。行が別バージョンで存在する場合は
// ErrConcurrentModification を返します。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	var version int64
	err := exec.QueryRow(ctx, `
        UPDATE employees
           SET name = $1,
               contract_id = $2,
               short_id = $3,
               color = $4,
               updated_at = $5,
               version = version + 1
         WHERE id = $6 AND version = $7
        RETURNING version
    `,
		e.Name,
		nullableContractID(e.Contract),
		e.ShortID,
		e.Color,
		e.UpdatedAt,
		e.ID,
		e.Version,
	).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMissedUpdate(ctx, exec, e.ID)
	}
	if err != nil {
		return nil, translateEmployeePgError(err)
	}

	if err := r.replaceSkills(ctx, exec, e.ID, e.Skills); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, e.ID)
}

func (r *EmployeeRepository) classifyMissedUpdate(ctx context.Context, exec pgdb.Queryer, id string) error {
	var current int64
	err := exec.QueryRow(ctx, `SELECT version FROM employees WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	if err != nil {
		return translateEmployeePgError(err)
	}
	return employee.ErrConcurrentModification
}

// Delete は従業員を削除します。
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// FindByID は ID で従業員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, employeeSelect+`
         WHERE e.id = $1
         GROUP BY e.id, c.id
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// FindByName はテナント内で名前が完全一致する従業員を返します。
// 複数存在する場合は作成が最も古いものを返します。
func (r *EmployeeRepository) FindByName(ctx context.Context, tenantID int64, name string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, employeeSelect+`
         WHERE e.tenant_id = $1 AND e.name = $2
         GROUP BY e.id, c.id
         ORDER BY e.created_at, e.id
         LIMIT 1
    `, tenantID, name)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// FindAllByTenant はテナントの従業員をすべて取得します。
func (r *EmployeeRepository) FindAllByTenant(ctx context.Context, tenantID int64) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, employeeSelect+`
         WHERE e.tenant_id = $1
         GROUP BY e.id, c.id
         ORDER BY e.name, e.id
    `, tenantID)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}
	return employees, nil
}

func (r *EmployeeRepository) replaceSkills(ctx context.Context, exec pgdb.Queryer, employeeID string, skills []employee.Skill) error {
	if _, err := exec.Exec(ctx, `DELETE FROM employee_skills WHERE employee_id = $1`, employeeID); err != nil {
		return translateEmployeePgError(err)
	}
	for _, skill := range skills {
		if _, err := exec.Exec(ctx, `INSERT INTO employee_skills (employee_id, skill_id) VALUES ($1, $2)`, employeeID, skill.ID); err != nil {
			return translateEmployeePgError(err)
		}
	}
	return nil
}

type skillRecord struct {
	ID       string `json:"id"`
	TenantID int64  `json:"tenant_id"`
	Name     string `json:"name"`
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id             string
		tenantID       int64
		name           string
		shortID        string
		color          string
		version        int64
		createdAt      time.Time
		updatedAt      time.Time
		contractID     sql.NullString
		contractTenant sql.NullInt64
		contractName   sql.NullString
		skillsJSON     []byte
	)

	if err := row.Scan(
		&id,
		&tenantID,
		&name,
		&shortID,
		&color,
		&version,
		&createdAt,
		&updatedAt,
		&contractID,
		&contractTenant,
		&contractName,
		&skillsJSON,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	var records []skillRecord
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &records); err != nil {
			return nil, err
		}
	}
	skills := make([]employee.Skill, 0, len(records))
	for _, rec := range records {
		skills = append(skills, employee.Skill{ID: rec.ID, TenantID: rec.TenantID, Name: rec.Name})
	}

	var contract *employee.Contract
	if contractID.Valid {
		contract = &employee.Contract{
			ID:       contractID.String,
			TenantID: contractTenant.Int64,
			Name:     contractName.String,
		}
	}

	return &employee.Employee{
		ID:        id,
		Version:   version,
		TenantID:  tenantID,
		Name:      name,
		Contract:  contract,
		Skills:    skills,
		ShortID:   shortID,
		Color:     color,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == foreignKeyViolationCode {
			switch pgErr.ConstraintName {
			case "employees_contract_id_fkey":
				return employee.ErrContractNotFound
			case "employee_skills_skill_id_fkey":
				return employee.ErrSkillNotFound
			case "employee_skills_employee_id_fkey":
				return employee.ErrEmployeeNotFound
			}
		}
	}

	return err
}

func nullableContractID(c *employee.Contract) any {
	if c == nil {
		return nil
	}
	return c.ID
}
