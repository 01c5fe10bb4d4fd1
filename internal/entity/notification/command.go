package notification

import "time"

type Op int32

const (
	OpSchedule Op = iota + 1
	OpCancel
	OpRequestPermission
)

func (o Op) String() string {
	switch o {
	case OpSchedule:
		return "schedule"
	case OpCancel:
		return "cancel"
	case OpRequestPermission:
		return "request_permission"
	default:
		return "unknown"
	}
}

// Command is what the gateway sends to the delivery side.
type Command struct {
	Op           Op
	Notification Notification
	CancelIDs    []string
	IssuedAt     time.Time
}
