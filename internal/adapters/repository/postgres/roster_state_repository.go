package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/roster"
	pgdb "github.com/rsynek/optaweb-employee-rostering/internal/platform/db/postgres"
)

// RosterStateRepository はロースター状態の読み取り専用リポジトリです。
type RosterStateRepository struct {
	pool pgdb.Queryer
}

// NewRosterStateRepository は RosterStateRepository を生成します。
func NewRosterStateRepository(pool pgdb.Queryer) *RosterStateRepository {
	return &RosterStateRepository{pool: pool}
}

// FindByTenantID はテナントのロースター状態を取得します。
func (r *RosterStateRepository) FindByTenantID(ctx context.Context, tenantID int64) (*roster.RosterState, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT tenant_id, timezone
          FROM roster_states
         WHERE tenant_id = $1
         LIMIT 1
    `, tenantID)

	var state roster.RosterState
	if err := row.Scan(&state.TenantID, &state.Timezone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, roster.ErrRosterStateNotFound
		}
		return nil, err
	}
	return &state, nil
}
