package kafka

import (
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"max.ks1230/spend-easy/internal/entity/notification"
)

// field numbers of the command message
const (
	fieldOp          protowire.Number = 1
	fieldID          protowire.Number = 2
	fieldTitle       protowire.Number = 3
	fieldBody        protowire.Number = 4
	fieldTriggerKind protowire.Number = 5
	fieldAfterMillis protowire.Number = 6
	fieldHour        protowire.Number = 7
	fieldMinute      protowire.Number = 8
	fieldCancelID    protowire.Number = 9
	fieldIssuedAt    protowire.Number = 10
)

var errMalformed = errors.New("malformed command")

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func MarshalCommand(cmd notification.Command) []byte {
	n := cmd.Notification
	var b []byte
	b = appendVarint(b, fieldOp, uint64(cmd.Op))
	b = appendString(b, fieldID, n.ID)
	b = appendString(b, fieldTitle, n.Title)
	b = appendString(b, fieldBody, n.Body)
	b = appendVarint(b, fieldTriggerKind, uint64(n.Trigger.Kind))
	b = appendVarint(b, fieldAfterMillis, uint64(n.Trigger.After.Milliseconds()))
	b = appendVarint(b, fieldHour, uint64(n.Trigger.Hour))
	b = appendVarint(b, fieldMinute, uint64(n.Trigger.Minute))
	for _, id := range cmd.CancelIDs {
		b = protowire.AppendTag(b, fieldCancelID, protowire.BytesType)
		b = protowire.AppendString(b, id)
	}
	if !cmd.IssuedAt.IsZero() {
		b = appendVarint(b, fieldIssuedAt, uint64(cmd.IssuedAt.UnixMilli()))
	}
	return b
}

func UnmarshalCommand(b []byte) (notification.Command, error) {
	var cmd notification.Command
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return notification.Command{}, errors.Wrap(protowire.ParseError(n), "unmarshal command")
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return notification.Command{}, errors.Wrap(protowire.ParseError(m), "unmarshal command")
			}
			setVarint(&cmd, num, v)
			b = b[m:]
		case protowire.BytesType:
			s, m := protowire.ConsumeString(b)
			if m < 0 {
				return notification.Command{}, errors.Wrap(protowire.ParseError(m), "unmarshal command")
			}
			setString(&cmd, num, s)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return notification.Command{}, errors.Wrap(protowire.ParseError(m), "unmarshal command")
			}
			b = b[m:]
		}
	}

	if cmd.Op < notification.OpSchedule || cmd.Op > notification.OpRequestPermission {
		return notification.Command{}, errors.Wrapf(errMalformed, "op %d", cmd.Op)
	}
	if cmd.Op == notification.OpSchedule && cmd.Notification.ID == "" {
		return notification.Command{}, errors.Wrap(errMalformed, "schedule without id")
	}
	return cmd, nil
}

func setVarint(cmd *notification.Command, num protowire.Number, v uint64) {
	switch num {
	case fieldOp:
		cmd.Op = notification.Op(v)
	case fieldTriggerKind:
		cmd.Notification.Trigger.Kind = notification.TriggerKind(v)
	case fieldAfterMillis:
		cmd.Notification.Trigger.After = time.Duration(v) * time.Millisecond
	case fieldHour:
		cmd.Notification.Trigger.Hour = int(v)
	case fieldMinute:
		cmd.Notification.Trigger.Minute = int(v)
	case fieldIssuedAt:
		cmd.IssuedAt = time.UnixMilli(int64(v))
	}
}

func setString(cmd *notification.Command, num protowire.Number, s string) {
	switch num {
	case fieldID:
		cmd.Notification.ID = s
	case fieldTitle:
		cmd.Notification.Title = s
	case fieldBody:
		cmd.Notification.Body = s
	case fieldCancelID:
		cmd.CancelIDs = append(cmd.CancelIDs, s)
	}
}
