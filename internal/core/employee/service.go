package employee

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rsynek/optaweb-employee-rostering/internal/core/roster"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。各公開操作は
// いずれかのクロージャ内で実行され、エラー時には操作全体が巻き戻されます。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// ImportSource は外部ソースの生バイト列から従業員ビューの列を読み取ります。
// 解釈できない入力に対しては ErrImportFormat を返します。
type ImportSource interface {
	ReadEmployees(ctx context.Context, tenantID int64, r io.Reader) ([]EmployeeView, error)
}

// Service は従業員と稼働可否に関するユースケースをまとめます。
type Service struct {
	employees      Repository
	availabilities AvailabilityRepository
	rosterStates   roster.Repository
	source         ImportSource
	clock          Clock
	tx             TransactionManager
}

// UseCase は従業員ユースケースの公開インターフェースです。
type UseCase interface {
	EmployeeFromView(tenantID int64, view EmployeeView) (*Employee, error)
	ListEmployees(ctx context.Context, tenantID int64) ([]*Employee, error)
	GetEmployee(ctx context.Context, tenantID int64, id string) (*Employee, error)
	CreateEmployee(ctx context.Context, tenantID int64, view EmployeeView) (*Employee, error)
	UpdateEmployee(ctx context.Context, tenantID int64, view EmployeeView) (*Employee, error)
	DeleteEmployee(ctx context.Context, tenantID int64, id string) (bool, error)
	ImportEmployees(ctx context.Context, tenantID int64, src io.Reader) ([]*Employee, error)
	ListAvailabilities(ctx context.Context, tenantID int64) ([]*AvailabilityView, error)
	GetAvailability(ctx context.Context, tenantID int64, id string) (*AvailabilityView, error)
	CreateAvailability(ctx context.Context, tenantID int64, view AvailabilityView) (*AvailabilityView, error)
	UpdateAvailability(ctx context.Context, tenantID int64, view AvailabilityView) (*AvailabilityView, error)
	DeleteAvailability(ctx context.Context, tenantID int64, id string) (bool, error)
}

// NewService は Service を生成します。
func NewService(employees Repository, availabilities AvailabilityRepository, rosterStates roster.Repository, source ImportSource, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{
		employees:      employees,
		availabilities: availabilities,
		rosterStates:   rosterStates,
		source:         source,
		clock:          clock,
		tx:             tx,
	}
}

// EmployeeFromView はビューから一時的な従業員を構築し検証します。
// ビューが識別子を持つ場合はそれを引き継ぎ、更新入力として振る舞います。
func (s *Service) EmployeeFromView(tenantID int64, view EmployeeView) (*Employee, error) {
	e := &Employee{
		TenantID: view.TenantID,
		Name:     view.Name,
		Contract: cloneContract(view.Contract),
		Skills:   cloneSkills(view.Skills),
		ShortID:  view.ShortID,
		Color:    view.Color,
	}
	if err := ValidateEmployee(tenantID, e); err != nil {
		return nil, err
	}
	if view.ID != nil {
		e.ID = *view.ID
	}
	e.Version = view.Version
	return e, nil
}

// ListEmployees はテナントの従業員をすべて返します。
func (s *Service) ListEmployees(ctx context.Context, tenantID int64) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.employees.FindAllByTenant(txCtx, tenantID)
		if err != nil {
			return err
		}
		employees = found
		return nil
	}); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployee は従業員を取得します。レコードが存在しない場合は
// ErrEmployeeNotFound、別テナントに属する場合は ErrTenantMismatch で失敗します。
func (s *Service) GetEmployee(ctx context.Context, tenantID int64, id string) (*Employee, error) {
	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.employees.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := ValidateEmployee(tenantID, found); err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateEmployee はビューを検証して永続化します。識別子と初期バージョンは
// ストアが割り当てます。
func (s *Service) CreateEmployee(ctx context.Context, tenantID int64, view EmployeeView) (*Employee, error) {
	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		e, err := s.EmployeeFromView(tenantID, view)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		e.CreatedAt = now
		e.UpdatedAt = now

		result, err := s.employees.Create(txCtx, e)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateEmployee は既存の従業員へビューの可変フィールドを適用します。
// テナントは作成後に変更できず、違反は ErrTenantImmutable で失敗します。
// 書き込みはビューが持つバージョンとの compare-and-swap で行われます。
func (s *Service) UpdateEmployee(ctx context.Context, tenantID int64, view EmployeeView) (*Employee, error) {
	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		incoming, err := s.EmployeeFromView(tenantID, view)
		if err != nil {
			return err
		}
		if incoming.ID == "" {
			return &ValidationError{Violations: []Violation{{Field: "id", Message: "must be set for update"}}}
		}

		existing, err := s.employees.FindByID(txCtx, incoming.ID)
		if err != nil {
			return err
		}
		if existing.TenantID != incoming.TenantID {
			return ErrTenantImmutable
		}

		existing.Name = incoming.Name
		existing.Skills = incoming.Skills
		existing.Contract = incoming.Contract
		existing.ShortID = incoming.ShortID
		existing.Color = incoming.Color
		existing.Version = incoming.Version
		existing.UpdatedAt = s.clock.Now()

		result, err := s.employees.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteEmployee は従業員を削除します。レコードが存在しない場合は
// エラーではなく false を返します。
func (s *Service) DeleteEmployee(ctx context.Context, tenantID int64, id string) (bool, error) {
	deleted := false
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.employees.FindByID(txCtx, id)
		if err != nil {
			if errors.Is(err, ErrEmployeeNotFound) {
				return nil
			}
			return err
		}
		if err := ValidateEmployee(tenantID, existing); err != nil {
			return err
		}
		if err := s.employees.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = true
		return nil
	}); err != nil {
		return false, err
	}
	return deleted, nil
}
