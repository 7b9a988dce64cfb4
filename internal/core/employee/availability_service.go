package employee

import (
	"context"
	"errors"
	"time"
)

// availabilityFromView はビューを検証し、参照先の従業員とテナントの
// ロースター状態を解決したうえで、ローカル時刻をテナントのタイムゾーンで
// 解釈した稼働可否エンティティを構築します。
func (s *Service) availabilityFromView(ctx context.Context, tenantID int64, view AvailabilityView) (*EmployeeAvailability, *time.Location, error) {
	if err := validateAvailabilityView(tenantID, view); err != nil {
		return nil, nil, err
	}

	emp, err := s.employees.FindByID(ctx, view.EmployeeID)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidateEmployee(tenantID, emp); err != nil {
		return nil, nil, err
	}

	loc, err := s.tenantLocation(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	a := &EmployeeAvailability{
		TenantID:      view.TenantID,
		EmployeeID:    emp.ID,
		StartDateTime: inZone(view.StartDateTime, loc),
		EndDateTime:   inZone(view.EndDateTime, loc),
		State:         view.State,
	}
	if view.ID != nil {
		a.ID = *view.ID
	}
	a.Version = view.Version
	return a, loc, nil
}

func (s *Service) tenantLocation(ctx context.Context, tenantID int64) (*time.Location, error) {
	state, err := s.rosterStates.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return state.Location()
}

func availabilityToView(a *EmployeeAvailability, loc *time.Location) *AvailabilityView {
	id := a.ID
	return &AvailabilityView{
		ID:            &id,
		Version:       a.Version,
		TenantID:      a.TenantID,
		EmployeeID:    a.EmployeeID,
		StartDateTime: toLocal(a.StartDateTime, loc),
		EndDateTime:   toLocal(a.EndDateTime, loc),
		State:         a.State,
	}
}

// ListAvailabilities はテナントの稼働可否をすべて、テナントのタイムゾーンの
// ローカル時刻で返します。
func (s *Service) ListAvailabilities(ctx context.Context, tenantID int64) ([]*AvailabilityView, error) {
	var views []*AvailabilityView
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		loc, err := s.tenantLocation(txCtx, tenantID)
		if err != nil {
			return err
		}

		found, err := s.availabilities.FindAllByTenant(txCtx, tenantID)
		if err != nil {
			return err
		}

		views = make([]*AvailabilityView, 0, len(found))
		for _, a := range found {
			views = append(views, availabilityToView(a, loc))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return views, nil
}

// GetAvailability は稼働可否を取得し、書き込み時と同じテナントの
// タイムゾーンでローカル時刻へ射影して返します。
func (s *Service) GetAvailability(ctx context.Context, tenantID int64, id string) (*AvailabilityView, error) {
	var view *AvailabilityView
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.availabilities.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := ValidateAvailability(tenantID, found); err != nil {
			return err
		}

		loc, err := s.tenantLocation(txCtx, tenantID)
		if err != nil {
			return err
		}
		view = availabilityToView(found, loc)
		return nil
	}); err != nil {
		return nil, err
	}
	return view, nil
}

// CreateAvailability はビューを変換して永続化し、割り当てられた識別子と
// 初期バージョンを含むビューを返します。
func (s *Service) CreateAvailability(ctx context.Context, tenantID int64, view AvailabilityView) (*AvailabilityView, error) {
	var created *AvailabilityView
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		a, loc, err := s.availabilityFromView(txCtx, tenantID, view)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		a.CreatedAt = now
		a.UpdatedAt = now

		result, err := s.availabilities.Create(txCtx, a)
		if err != nil {
			return err
		}
		created = availabilityToView(result, loc)
		return nil
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateAvailability は既存レコードへビューのフィールドを適用します。
// 書き込みは同期的で、進んだバージョンが同じ応答のビューに反映されます。
func (s *Service) UpdateAvailability(ctx context.Context, tenantID int64, view AvailabilityView) (*AvailabilityView, error) {
	var updated *AvailabilityView
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		incoming, loc, err := s.availabilityFromView(txCtx, tenantID, view)
		if err != nil {
			return err
		}
		if incoming.ID == "" {
			return &ValidationError{Violations: []Violation{{Field: "id", Message: "must be set for update"}}}
		}

		existing, err := s.availabilities.FindByID(txCtx, incoming.ID)
		if err != nil {
			return err
		}
		if existing.TenantID != incoming.TenantID {
			return ErrTenantImmutable
		}

		existing.EmployeeID = incoming.EmployeeID
		existing.StartDateTime = incoming.StartDateTime
		existing.EndDateTime = incoming.EndDateTime
		existing.State = incoming.State
		existing.Version = incoming.Version
		existing.UpdatedAt = s.clock.Now()

		result, err := s.availabilities.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = availabilityToView(result, loc)
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAvailability は稼働可否を削除します。レコードが存在しない場合は
// エラーではなく false を返します。
func (s *Service) DeleteAvailability(ctx context.Context, tenantID int64, id string) (bool, error) {
	deleted := false
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.availabilities.FindByID(txCtx, id)
		if err != nil {
			if errors.Is(err, ErrAvailabilityNotFound) {
				return nil
			}
			return err
		}
		if err := ValidateAvailability(tenantID, existing); err != nil {
			return err
		}
		if err := s.availabilities.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = true
		return nil
	}); err != nil {
		return false, err
	}
	return deleted, nil
}
