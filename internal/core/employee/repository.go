package employee

import "context"

// Repository は従業員永続化の抽象です。Update は呼び出し側が渡した
// Version と突き合わせる compare-and-swap で、競合時には
// ErrConcurrentModification を返します。
type Repository interface {
	Create(ctx context.Context, e *Employee) (*Employee, error)
	Update(ctx context.Context, e *Employee) (*Employee, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByName(ctx context.Context, tenantID int64, name string) (*Employee, error)
	FindAllByTenant(ctx context.Context, tenantID int64) ([]*Employee, error)
}

// AvailabilityRepository は稼働可否永続化の抽象です。
// Update は同期書き込みであり、進んだ Version を戻り値で返します。
type AvailabilityRepository interface {
	Create(ctx context.Context, a *EmployeeAvailability) (*EmployeeAvailability, error)
	Update(ctx context.Context, a *EmployeeAvailability) (*EmployeeAvailability, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*EmployeeAvailability, error)
	FindAllByTenant(ctx context.Context, tenantID int64) ([]*EmployeeAvailability, error)
}

// SkillRepository はテナントのスキル参照データへの読み取り専用アクセスです。
type SkillRepository interface {
	FindAllByTenant(ctx context.Context, tenantID int64) ([]Skill, error)
}
