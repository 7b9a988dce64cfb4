package handler

import (
	"context"
	"io"
	"testing"

	availabilitypb "github.com/rsynek/optaweb-employee-rostering/internal/adapters/grpc/gen/availability/v1"
	employeepb "github.com/rsynek/optaweb-employee-rostering/internal/adapters/grpc/gen/employee/v1"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubUseCase struct {
	listOut []*employee.Employee
	listErr error

	getTenantID int64
	getID       string
	getOut      *employee.Employee
	getErr      error

	createTenantID int64
	createView     employee.EmployeeView
	createOut      *employee.Employee
	createErr      error

	updateView employee.EmployeeView
	updateOut  *employee.Employee
	updateErr  error

	deleteID  string
	deleteOut bool
	deleteErr error

	importTenantID int64
	importOut      []*employee.Employee
	importErr      error

	listAvailOut []*employee.AvailabilityView
	listAvailErr error

	getAvailOut *employee.AvailabilityView
	getAvailErr error

	createAvailView employee.AvailabilityView
	createAvailOut  *employee.AvailabilityView
	createAvailErr  error

	updateAvailView employee.AvailabilityView
	updateAvailOut  *employee.AvailabilityView
	updateAvailErr  error

	deleteAvailOut bool
	deleteAvailErr error
}

func (s *stubUseCase) EmployeeFromView(tenantID int64, view employee.EmployeeView) (*employee.Employee, error) {
	return nil, nil
}

func (s *stubUseCase) ListEmployees(ctx context.Context, tenantID int64) ([]*employee.Employee, error) {
	return s.listOut, s.listErr
}

func (s *stubUseCase) GetEmployee(ctx context.Context, tenantID int64, id string) (*employee.Employee, error) {
	s.getTenantID = tenantID
	s.getID = id
	return s.getOut, s.getErr
}

func (s *stubUseCase) CreateEmployee(ctx context.Context, tenantID int64, view employee.EmployeeView) (*employee.Employee, error) {
	s.createTenantID = tenantID
	s.createView = view
	return s.createOut, s.createErr
}

func (s *stubUseCase) UpdateEmployee(ctx context.Context, tenantID int64, view employee.EmployeeView) (*employee.Employee, error) {
	s.updateView = view
	return s.updateOut, s.updateErr
}

func (s *stubUseCase) DeleteEmployee(ctx context.Context, tenantID int64, id string) (bool, error) {
	s.deleteID = id
	return s.deleteOut, s.deleteErr
}

func (s *stubUseCase) ImportEmployees(ctx context.Context, tenantID int64, src io.Reader) ([]*employee.Employee, error) {
	s.importTenantID = tenantID
	return s.importOut, s.importErr
}

func (s *stubUseCase) ListAvailabilities(ctx context.Context, tenantID int64) ([]*employee.AvailabilityView, error) {
	return s.listAvailOut, s.listAvailErr
}

func (s *stubUseCase) GetAvailability(ctx context.Context, tenantID int64, id string) (*employee.AvailabilityView, error) {
	return s.getAvailOut, s.getAvailErr
}

func (s *stubUseCase) CreateAvailability(ctx context.Context, tenantID int64, view employee.AvailabilityView) (*employee.AvailabilityView, error) {
	s.createAvailView = view
	return s.createAvailOut, s.createAvailErr
}

func (s *stubUseCase) UpdateAvailability(ctx context.Context, tenantID int64, view employee.AvailabilityView) (*employee.AvailabilityView, error) {
	s.updateAvailView = view
	return s.updateAvailOut, s.updateAvailErr
}

func (s *stubUseCase) DeleteAvailability(ctx context.Context, tenantID int64, id string) (bool, error) {
	return s.deleteAvailOut, s.deleteAvailErr
}

var _ employee.UseCase = (*stubUseCase)(nil)
var _ employeepb.EmployeeServiceServer = (*EmployeeGrpcHandler)(nil)
var _ availabilitypb.AvailabilityServiceServer = (*AvailabilityGrpcHandler)(nil)

func TestEmployeeGrpcHandler_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{
		createOut: &employee.Employee{
			ID:       "emp-1",
			Version:  1,
			TenantID: 1,
			Name:     "Amy Cole",
			Contract: &employee.Contract{ID: "contract-1", TenantID: 1, Name: "Full time"},
			Skills:   []employee.Skill{{ID: "skill-1", TenantID: 1, Name: "Nurse"}},
			ShortID:  "AC",
			Color:    "#33ccff",
		},
	}

	h := NewEmployeeGrpcHandler(stub)
	resp, err := h.CreateEmployee(context.Background(), &employeepb.CreateEmployeeRequest{
		TenantId: 1,
		Employee: &employeepb.EmployeeInput{
			TenantId: 1,
			Name:     "Amy Cole",
			Contract: &employeepb.Contract{Id: "contract-1", TenantId: 1, Name: "Full time"},
			Skills:   []*employeepb.Skill{{Id: "skill-1", TenantId: 1, Name: "Nurse"}},
			ShortId:  "AC",
			Color:    "#33ccff",
		},
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if stub.createTenantID != 1 || stub.createView.Name != "Amy Cole" {
		t.Errorf("unexpected view passed to usecase: %+v", stub.createView)
	}
	if stub.createView.ID != nil {
		t.Errorf("expected nil id on create, got %v", *stub.createView.ID)
	}
	if len(stub.createView.Skills) != 1 || stub.createView.Skills[0].ID != "skill-1" {
		t.Errorf("expected skills to pass through, got %+v", stub.createView.Skills)
	}

	if resp.GetEmployee().GetId() != "emp-1" || resp.GetEmployee().GetVersion() != 1 {
		t.Fatalf("unexpected response employee: %+v", resp.GetEmployee())
	}
	if resp.GetEmployee().GetContract().GetName() != "Full time" {
		t.Fatalf("expected contract in response, got %+v", resp.GetEmployee().GetContract())
	}
}

func TestEmployeeGrpcHandler_UpdateEmployee_CarriesIDAndVersion(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{updateOut: &employee.Employee{ID: "emp-1", Version: 2, TenantID: 1, Name: "Amy Cole"}}

	h := NewEmployeeGrpcHandler(stub)
	resp, err := h.UpdateEmployee(context.Background(), &employeepb.UpdateEmployeeRequest{
		TenantId: 1,
		Employee: &employeepb.EmployeeInput{
			Id:       wrapperspb.String("emp-1"),
			Version:  1,
			TenantId: 1,
			Name:     "Amy Cole",
		},
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if stub.updateView.ID == nil || *stub.updateView.ID != "emp-1" {
		t.Errorf("expected id to pass through, got %+v", stub.updateView.ID)
	}
	if stub.updateView.Version != 1 {
		t.Errorf("expected version 1 to pass through, got %d", stub.updateView.Version)
	}
	if resp.GetEmployee().GetVersion() != 2 {
		t.Fatalf("expected advanced version in response, got %d", resp.GetEmployee().GetVersion())
	}
}

func TestEmployeeGrpcHandler_UpdateEmployee_ConcurrencyConflict(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{updateErr: employee.ErrConcurrentModification}

	h := NewEmployeeGrpcHandler(stub)
	_, err := h.UpdateEmployee(context.Background(), &employeepb.UpdateEmployeeRequest{
		TenantId: 1,
		Employee: &employeepb.EmployeeInput{Id: wrapperspb.String("emp-1"), TenantId: 1, Name: "Amy Cole"},
	})

	if status.Code(err) != codes.Aborted {
		t.Fatalf("expected Aborted, got %v", err)
	}
}

func TestEmployeeGrpcHandler_GetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{getErr: employee.ErrEmployeeNotFound}

	h := NewEmployeeGrpcHandler(stub)
	_, err := h.GetEmployee(context.Background(), &employeepb.GetEmployeeRequest{TenantId: 1, Id: "missing"})

	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestEmployeeGrpcHandler_CreateEmployee_ValidationError(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{createErr: &employee.ValidationError{Violations: []employee.Violation{{Field: "name", Message: "must not be blank"}}}}

	h := NewEmployeeGrpcHandler(stub)
	_, err := h.CreateEmployee(context.Background(), &employeepb.CreateEmployeeRequest{
		TenantId: 1,
		Employee: &employeepb.EmployeeInput{TenantId: 1},
	})

	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestEmployeeGrpcHandler_DeleteEmployee_Absent(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{deleteOut: false}

	h := NewEmployeeGrpcHandler(stub)
	resp, err := h.DeleteEmployee(context.Background(), &employeepb.DeleteEmployeeRequest{TenantId: 1, Id: "missing"})
	if err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}
	if resp.GetDeleted() {
		t.Fatalf("expected deleted=false for absent record")
	}
}

func TestEmployeeGrpcHandler_ImportEmployees(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{importOut: []*employee.Employee{{ID: "emp-1", TenantID: 1, Name: "Amy Cole"}}}

	h := NewEmployeeGrpcHandler(stub)
	resp, err := h.ImportEmployees(context.Background(), &employeepb.ImportEmployeesRequest{
		TenantId: 1,
		File:     []byte("workbook bytes"),
	})
	if err != nil {
		t.Fatalf("ImportEmployees returned error: %v", err)
	}

	if stub.importTenantID != 1 {
		t.Errorf("expected tenant id to pass through, got %d", stub.importTenantID)
	}
	if len(resp.GetEmployees()) != 1 || resp.GetEmployees()[0].GetId() != "emp-1" {
		t.Fatalf("unexpected response employees: %+v", resp.GetEmployees())
	}
}

func TestEmployeeGrpcHandler_ImportEmployees_EmptyFile(t *testing.T) {
	t.Parallel()

	h := NewEmployeeGrpcHandler(&stubUseCase{})
	_, err := h.ImportEmployees(context.Background(), &employeepb.ImportEmployeesRequest{TenantId: 1})

	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestEmployeeGrpcHandler_ImportEmployees_FormatError(t *testing.T) {
	t.Parallel()

	stub := &stubUseCase{importErr: employee.ErrImportFormat}

	h := NewEmployeeGrpcHandler(stub)
	_, err := h.ImportEmployees(context.Background(), &employeepb.ImportEmployeesRequest{
		TenantId: 1,
		File:     []byte("not a workbook"),
	})

	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
