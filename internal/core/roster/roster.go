package roster

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRosterStateNotFound はテナントにロースター状態が存在しないことを示します。
var ErrRosterStateNotFound = errors.New("roster: state not found")

// RosterState はテナントごとに一つ存在するロースター設定です。
// このコアからは読み取り専用で、タイムゾーンの解決にのみ使われます。
type RosterState struct {
	TenantID int64
	Timezone string
}

// Location はテナントのタイムゾーンを解決します。
func (s *RosterState) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("roster: load timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Repository はロースター状態の読み取り抽象です。
type Repository interface {
	FindByTenantID(ctx context.Context, tenantID int64) (*RosterState, error)
}
