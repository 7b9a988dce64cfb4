package postgres

import (
	"context"

	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	pgdb "github.com/rsynek/optaweb-employee-rostering/internal/platform/db/postgres"
)

// SkillRepository はテナントのスキル参照データへの読み取り専用リポジトリです。
type SkillRepository struct {
	pool pgdb.Queryer
}

// NewSkillRepository は SkillRepository を生成します。
func NewSkillRepository(pool pgdb.Queryer) *SkillRepository {
	return &SkillRepository{pool: pool}
}

// FindAllByTenant はテナントのスキルをすべて取得します。
func (r *SkillRepository) FindAllByTenant(ctx context.Context, tenantID int64) ([]employee.Skill, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, tenant_id, name
          FROM skills
         WHERE tenant_id = $1
         ORDER BY name, id
    `, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []employee.Skill
	for rows.Next() {
		var skill employee.Skill
		if err := rows.Scan(&skill.ID, &skill.TenantID, &skill.Name); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return skills, nil
}
