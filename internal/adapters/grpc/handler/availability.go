package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	availabilitypb "github.com/rsynek/optaweb-employee-rostering/internal/adapters/grpc/gen/availability/v1"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ローカル日時はタイムゾーン指定なしの壁時計として受け渡しされ、
// テナントのタイムゾーンで解釈されます。
const dateTimeLayout = "2006-01-02T15:04:05"

// AvailabilityGrpcHandler は AvailabilityService の gRPC 実装です。
type AvailabilityGrpcHandler struct {
	svc employee.UseCase
	availabilitypb.UnimplementedAvailabilityServiceServer
}

// NewAvailabilityGrpcHandler は AvailabilityGrpcHandler を生成します。
func NewAvailabilityGrpcHandler(svc employee.UseCase) *AvailabilityGrpcHandler {
	return &AvailabilityGrpcHandler{svc: svc}
}

// ListAvailabilities はテナントの稼働可否一覧を取得します。
func (h *AvailabilityGrpcHandler) ListAvailabilities(ctx context.Context, req *availabilitypb.ListAvailabilitiesRequest) (*availabilitypb.ListAvailabilitiesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	views, err := h.svc.ListAvailabilities(ctx, req.GetTenantId())
	if err != nil {
		return nil, toStatusError(err)
	}

	proto := make([]*availabilitypb.EmployeeAvailability, 0, len(views))
	for _, v := range views {
		proto = append(proto, toProtoAvailability(v))
	}
	return &availabilitypb.ListAvailabilitiesResponse{Availabilities: proto}, nil
}

// GetAvailability は稼働可否を取得します。
func (h *AvailabilityGrpcHandler) GetAvailability(ctx context.Context, req *availabilitypb.GetAvailabilityRequest) (*availabilitypb.GetAvailabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	view, err := h.svc.GetAvailability(ctx, req.GetTenantId(), req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &availabilitypb.GetAvailabilityResponse{Availability: toProtoAvailability(view)}, nil
}

// CreateAvailability は稼働可否を作成します。
func (h *AvailabilityGrpcHandler) CreateAvailability(ctx context.Context, req *availabilitypb.CreateAvailabilityRequest) (*availabilitypb.CreateAvailabilityResponse, error) {
	if req == nil || req.GetAvailability() == nil {
		return nil, status.Error(codes.InvalidArgument, "availability is required")
	}

	view, err := toAvailabilityView(req.GetAvailability())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	created, err := h.svc.CreateAvailability(ctx, req.GetTenantId(), view)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &availabilitypb.CreateAvailabilityResponse{Availability: toProtoAvailability(created)}, nil
}

// UpdateAvailability は稼働可否を更新します。
func (h *AvailabilityGrpcHandler) UpdateAvailability(ctx context.Context, req *availabilitypb.UpdateAvailabilityRequest) (*availabilitypb.UpdateAvailabilityResponse, error) {
	if req == nil || req.GetAvailability() == nil {
		return nil, status.Error(codes.InvalidArgument, "availability is required")
	}

	view, err := toAvailabilityView(req.GetAvailability())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := h.svc.UpdateAvailability(ctx, req.GetTenantId(), view)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &availabilitypb.UpdateAvailabilityResponse{Availability: toProtoAvailability(updated)}, nil
}

// DeleteAvailability は稼働可否を削除します。対象が存在しない場合は
// deleted=false の応答を返します。
func (h *AvailabilityGrpcHandler) DeleteAvailability(ctx context.Context, req *availabilitypb.DeleteAvailabilityRequest) (*availabilitypb.DeleteAvailabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deleted, err := h.svc.DeleteAvailability(ctx, req.GetTenantId(), req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &availabilitypb.DeleteAvailabilityResponse{Deleted: deleted}, nil
}

func toAvailabilityView(in *availabilitypb.AvailabilityInput) (employee.AvailabilityView, error) {
	start, err := parseLocalDateTime("start_date_time", in.GetStartDateTime())
	if err != nil {
		return employee.AvailabilityView{}, err
	}
	end, err := parseLocalDateTime("end_date_time", in.GetEndDateTime())
	if err != nil {
		return employee.AvailabilityView{}, err
	}

	view := employee.AvailabilityView{
		Version:       in.GetVersion(),
		TenantID:      in.GetTenantId(),
		EmployeeID:    in.GetEmployeeId(),
		StartDateTime: start,
		EndDateTime:   end,
		State:         toDomainState(in.GetState()),
	}
	if in.Id != nil {
		id := in.Id.GetValue()
		view.ID = &id
	}
	return view, nil
}

func parseLocalDateTime(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateTimeLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid format, expected %s", field, dateTimeLayout)
	}
	return t, nil
}

func toProtoAvailability(v *employee.AvailabilityView) *availabilitypb.EmployeeAvailability {
	if v == nil {
		return nil
	}

	proto := &availabilitypb.EmployeeAvailability{
		Version:       v.Version,
		TenantId:      v.TenantID,
		EmployeeId:    v.EmployeeID,
		StartDateTime: v.StartDateTime.Format(dateTimeLayout),
		EndDateTime:   v.EndDateTime.Format(dateTimeLayout),
		State:         toProtoState(v.State),
	}
	if v.ID != nil {
		proto.Id = *v.ID
	}
	return proto
}

func toDomainState(state availabilitypb.AvailabilityState) employee.AvailabilityState {
	switch state {
	case availabilitypb.AvailabilityState_AVAILABILITY_STATE_UNAVAILABLE:
		return employee.StateUnavailable
	case availabilitypb.AvailabilityState_AVAILABILITY_STATE_UNDESIRED:
		return employee.StateUndesired
	case availabilitypb.AvailabilityState_AVAILABILITY_STATE_DESIRED:
		return employee.StateDesired
	default:
		return ""
	}
}

func toProtoState(state employee.AvailabilityState) availabilitypb.AvailabilityState {
	switch state {
	case employee.StateUnavailable:
		return availabilitypb.AvailabilityState_AVAILABILITY_STATE_UNAVAILABLE
	case employee.StateUndesired:
		return availabilitypb.AvailabilityState_AVAILABILITY_STATE_UNDESIRED
	case employee.StateDesired:
		return availabilitypb.AvailabilityState_AVAILABILITY_STATE_DESIRED
	default:
		return availabilitypb.AvailabilityState_AVAILABILITY_STATE_UNSPECIFIED
	}
}
