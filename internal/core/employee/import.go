package employee

import (
	"context"
	"errors"
	"io"
	"strings"
)

// ImportEmployees は外部ソースの従業員レコードを既存の状態へ突き合わせます。
// 同一バッチ内の重複は大文字小文字を無視した名前で先勝ちで解決され、
// 永続化が始まる前にメモリ上で取り除かれます。名前が一致する既存従業員が
// いればストア側の契約・識別子・バージョンを引き継いで更新パスへ、
// いなければ作成パスへ進みます。処理後のテナント従業員一覧を返します。
func (s *Service) ImportEmployees(ctx context.Context, tenantID int64, src io.Reader) ([]*Employee, error) {
	views, err := s.source.ReadEmployees(ctx, tenantID, src)
	if err != nil {
		return nil, err
	}

	records := dedupeByName(views)

	var result []*Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		for _, view := range records {
			if _, err := s.EmployeeFromView(tenantID, view); err != nil {
				return err
			}

			existing, err := s.employees.FindByName(txCtx, tenantID, view.Name)
			switch {
			case err == nil:
				view.Contract = existing.Contract
				id := existing.ID
				view.ID = &id
				view.Version = existing.Version
				if _, err := s.UpdateEmployee(txCtx, tenantID, view); err != nil {
					return err
				}
			case errors.Is(err, ErrEmployeeNotFound):
				if _, err := s.CreateEmployee(txCtx, tenantID, view); err != nil {
					return err
				}
			default:
				return err
			}
		}

		refreshed, err := s.employees.FindAllByTenant(txCtx, tenantID)
		if err != nil {
			return err
		}
		result = refreshed
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// dedupeByName は遭遇順を保ったまま、大文字小文字を無視した名前の
// 最初の出現だけを残します。
func dedupeByName(views []EmployeeView) []EmployeeView {
	seen := make(map[string]struct{}, len(views))
	records := make([]EmployeeView, 0, len(views))
	for _, view := range views {
		key := strings.ToLower(view.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, view)
	}
	return records
}
