package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee: not found")
	ErrAvailabilityNotFound   = errors.New("employee: availability not found")
	ErrContractNotFound       = errors.New("employee: contract not found")
	ErrSkillNotFound          = errors.New("employee: skill not found")
	ErrTenantMismatch         = errors.New("employee: tenant mismatch")
	ErrTenantImmutable        = errors.New("employee: tenant cannot change")
	ErrConcurrentModification = errors.New("employee: version conflict")
	ErrValidation             = errors.New("employee: validation failed")
	ErrInvalidState           = errors.New("employee: invalid availability state")
	ErrInvalidTimeRange       = errors.New("employee: end must be after start")
	ErrImportFormat           = errors.New("employee: malformed import source")
)
