package employee

import "time"

// AvailabilityState は従業員の稼働希望状態を表します。
type AvailabilityState string

const (
	StateUnavailable AvailabilityState = "UNAVAILABLE"
	StateUndesired   AvailabilityState = "UNDESIRED"
	StateDesired     AvailabilityState = "DESIRED"
)

// EmployeeAvailability は従業員の時間帯単位の稼働可否エンティティです。
// StartDateTime / EndDateTime は絶対時刻で保持し、境界を越えるときに
// テナントのタイムゾーンでローカル時刻へ変換されます。
type EmployeeAvailability struct {
	ID            string
	Version       int64
	TenantID      int64
	EmployeeID    string
	StartDateTime time.Time
	EndDateTime   time.Time
	State         AvailabilityState
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AvailabilityView は稼働可否の境界表現です。StartDateTime / EndDateTime は
// タイムゾーンを持たないテナントローカルの壁時計時刻として扱われます。
type AvailabilityView struct {
	ID            *string
	Version       int64
	TenantID      int64
	EmployeeID    string
	StartDateTime time.Time
	EndDateTime   time.Time
	State         AvailabilityState
}

func isValidState(state AvailabilityState) bool {
	switch state {
	case StateUnavailable, StateUndesired, StateDesired:
		return true
	default:
		return false
	}
}

// inZone はローカル壁時計時刻 t をタイムゾーン loc の絶対時刻として解釈します。
func inZone(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// toLocal は絶対時刻 t をタイムゾーン loc のゾーンなし壁時計時刻へ射影します。
func toLocal(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
}
