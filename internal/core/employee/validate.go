package employee

import (
	"fmt"
	"regexp"
	"strings"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Violation は単一フィールドの検証違反です。
type Violation struct {
	Field   string
	Message string
}

// ValidationError はフィールド検証違反の集合です。errors.Is では
// ErrValidation にマッチします。
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "employee: validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidateEmployee はフィールド検証とテナント整合性検証を行います。
// 参照先のスキルや契約がコンテキストのテナントに属していない場合は
// ValidationError ではなく ErrTenantMismatch で失敗します。
func ValidateEmployee(tenantID int64, e *Employee) error {
	var violations []Violation
	if strings.TrimSpace(e.Name) == "" {
		violations = append(violations, Violation{Field: "name", Message: "must not be blank"})
	}
	if e.Color != "" && !colorPattern.MatchString(e.Color) {
		violations = append(violations, Violation{Field: "color", Message: "must be a #rrggbb color"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	if e.TenantID != tenantID {
		return fmt.Errorf("employee tenant (%d) does not match context tenant (%d): %w", e.TenantID, tenantID, ErrTenantMismatch)
	}
	if e.Contract != nil && e.Contract.TenantID != tenantID {
		return fmt.Errorf("contract %s tenant (%d) does not match context tenant (%d): %w", e.Contract.ID, e.Contract.TenantID, tenantID, ErrTenantMismatch)
	}
	for _, skill := range e.Skills {
		if skill.TenantID != tenantID {
			return fmt.Errorf("skill %s tenant (%d) does not match context tenant (%d): %w", skill.ID, skill.TenantID, tenantID, ErrTenantMismatch)
		}
	}
	return nil
}

// ValidateAvailability はフィールド検証とテナント整合性検証を行います。
func ValidateAvailability(tenantID int64, a *EmployeeAvailability) error {
	var violations []Violation
	if strings.TrimSpace(a.EmployeeID) == "" {
		violations = append(violations, Violation{Field: "employeeId", Message: "must not be blank"})
	}
	if !isValidState(a.State) {
		violations = append(violations, Violation{Field: "state", Message: "must be one of UNAVAILABLE, UNDESIRED, DESIRED"})
	}
	if a.StartDateTime.IsZero() || a.EndDateTime.IsZero() {
		violations = append(violations, Violation{Field: "startDateTime", Message: "start and end must be set"})
	} else if !a.EndDateTime.After(a.StartDateTime) {
		violations = append(violations, Violation{Field: "endDateTime", Message: "must be after startDateTime"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	if a.TenantID != tenantID {
		return fmt.Errorf("availability tenant (%d) does not match context tenant (%d): %w", a.TenantID, tenantID, ErrTenantMismatch)
	}
	return nil
}

func validateAvailabilityView(tenantID int64, view AvailabilityView) error {
	var violations []Violation
	if strings.TrimSpace(view.EmployeeID) == "" {
		violations = append(violations, Violation{Field: "employeeId", Message: "must not be blank"})
	}
	if !isValidState(view.State) {
		violations = append(violations, Violation{Field: "state", Message: "must be one of UNAVAILABLE, UNDESIRED, DESIRED"})
	}
	if view.StartDateTime.IsZero() || view.EndDateTime.IsZero() {
		violations = append(violations, Violation{Field: "startDateTime", Message: "start and end must be set"})
	} else if !view.EndDateTime.After(view.StartDateTime) {
		violations = append(violations, Violation{Field: "endDateTime", Message: "must be after startDateTime"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	if view.TenantID != tenantID {
		return fmt.Errorf("availability tenant (%d) does not match context tenant (%d): %w", view.TenantID, tenantID, ErrTenantMismatch)
	}
	return nil
}
