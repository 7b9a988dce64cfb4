package handler

import (
	"errors"

	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/roster"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrValidation),
		errors.Is(err, employee.ErrImportFormat),
		errors.Is(err, employee.ErrInvalidState),
		errors.Is(err, employee.ErrInvalidTimeRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrAvailabilityNotFound),
		errors.Is(err, employee.ErrContractNotFound),
		errors.Is(err, employee.ErrSkillNotFound),
		errors.Is(err, roster.ErrRosterStateNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, employee.ErrTenantMismatch),
		errors.Is(err, employee.ErrTenantImmutable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, employee.ErrConcurrentModification):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
