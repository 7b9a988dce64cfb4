package handler

import (
	"bytes"
	"context"

	employeepb "github.com/rsynek/optaweb-employee-rostering/internal/adapters/grpc/gen/employee/v1"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
	employeepb.UnimplementedEmployeeServiceServer
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// ListEmployees はテナントの従業員一覧を取得します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *employeepb.ListEmployeesRequest) (*employeepb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	employees, err := h.svc.ListEmployees(ctx, req.GetTenantId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.ListEmployeesResponse{Employees: toProtoEmployees(employees)}, nil
}

// GetEmployee は従業員を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *employeepb.GetEmployeeRequest) (*employeepb.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, req.GetTenantId(), req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// CreateEmployee は従業員を作成します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *employeepb.CreateEmployeeRequest) (*employeepb.CreateEmployeeResponse, error) {
	if req == nil || req.GetEmployee() == nil {
		return nil, status.Error(codes.InvalidArgument, "employee is required")
	}

	created, err := h.svc.CreateEmployee(ctx, req.GetTenantId(), toEmployeeView(req.GetEmployee()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.CreateEmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// UpdateEmployee は従業員を更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *employeepb.UpdateEmployeeRequest) (*employeepb.UpdateEmployeeResponse, error) {
	if req == nil || req.GetEmployee() == nil {
		return nil, status.Error(codes.InvalidArgument, "employee is required")
	}

	updated, err := h.svc.UpdateEmployee(ctx, req.GetTenantId(), toEmployeeView(req.GetEmployee()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.UpdateEmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// DeleteEmployee は従業員を削除します。対象が存在しない場合は
// deleted=false の応答を返します。
func (h *EmployeeGrpcHandler) DeleteEmployee(ctx context.Context, req *employeepb.DeleteEmployeeRequest) (*employeepb.DeleteEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deleted, err := h.svc.DeleteEmployee(ctx, req.GetTenantId(), req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.DeleteEmployeeResponse{Deleted: deleted}, nil
}

// ImportEmployees はワークブックを取り込み、テナントの最新の従業員一覧を返します。
func (h *EmployeeGrpcHandler) ImportEmployees(ctx context.Context, req *employeepb.ImportEmployeesRequest) (*employeepb.ImportEmployeesResponse, error) {
	if req == nil || len(req.GetFile()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "file is required")
	}

	employees, err := h.svc.ImportEmployees(ctx, req.GetTenantId(), bytes.NewReader(req.GetFile()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.ImportEmployeesResponse{Employees: toProtoEmployees(employees)}, nil
}

func toEmployeeView(in *employeepb.EmployeeInput) employee.EmployeeView {
	view := employee.EmployeeView{
		Version:  in.GetVersion(),
		TenantID: in.GetTenantId(),
		Name:     in.GetName(),
		Contract: toDomainContract(in.GetContract()),
		Skills:   toDomainSkills(in.GetSkills()),
		ShortID:  in.GetShortId(),
		Color:    in.GetColor(),
	}
	if in.Id != nil {
		id := in.Id.GetValue()
		view.ID = &id
	}
	return view
}

func toDomainContract(c *employeepb.Contract) *employee.Contract {
	if c == nil {
		return nil
	}
	return &employee.Contract{ID: c.GetId(), TenantID: c.GetTenantId(), Name: c.GetName()}
}

func toDomainSkills(skills []*employeepb.Skill) []employee.Skill {
	if len(skills) == 0 {
		return nil
	}
	domain := make([]employee.Skill, 0, len(skills))
	for _, s := range skills {
		domain = append(domain, employee.Skill{ID: s.GetId(), TenantID: s.GetTenantId(), Name: s.GetName()})
	}
	return domain
}

func toProtoEmployees(employees []*employee.Employee) []*employeepb.Employee {
	proto := make([]*employeepb.Employee, 0, len(employees))
	for _, e := range employees {
		proto = append(proto, toProtoEmployee(e))
	}
	return proto
}

func toProtoEmployee(e *employee.Employee) *employeepb.Employee {
	if e == nil {
		return nil
	}
	return &employeepb.Employee{
		Id:       e.ID,
		Version:  e.Version,
		TenantId: e.TenantID,
		Name:     e.Name,
		Contract: toProtoContract(e.Contract),
		Skills:   toProtoSkills(e.Skills),
		ShortId:  e.ShortID,
		Color:    e.Color,
	}
}

func toProtoContract(c *employee.Contract) *employeepb.Contract {
	if c == nil {
		return nil
	}
	return &employeepb.Contract{Id: c.ID, TenantId: c.TenantID, Name: c.Name}
}

func toProtoSkills(skills []employee.Skill) []*employeepb.Skill {
	if len(skills) == 0 {
		return nil
	}
	proto := make([]*employeepb.Skill, 0, len(skills))
	for _, s := range skills {
		proto = append(proto, &employeepb.Skill{Id: s.ID, TenantId: s.TenantID, Name: s.Name})
	}
	return proto
}
