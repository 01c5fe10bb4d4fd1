package notification

import (
	"fmt"
	"time"
)

type TriggerKind int

const (
	// Once fires a single time after Trigger.After has elapsed.
	Once TriggerKind = iota + 1
	// Daily fires every day at Trigger.Hour:Trigger.Minute local time.
	Daily
)

type Trigger struct {
	Kind   TriggerKind
	After  time.Duration
	Hour   int
	Minute int
}

func AfterDelay(d time.Duration) Trigger {
	return Trigger{Kind: Once, After: d}
}

func DailyAt(hour, minute int) Trigger {
	return Trigger{Kind: Daily, Hour: hour, Minute: minute}
}

// NextFire returns the first instant at or after from when the trigger fires.
func (t Trigger) NextFire(from time.Time) time.Time {
	if t.Kind != Daily {
		return from.Add(t.After)
	}
	next := time.Date(from.Year(), from.Month(), from.Day(), t.Hour, t.Minute, 0, 0, from.Location())
	if next.Before(from) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (t Trigger) String() string {
	if t.Kind == Daily {
		return fmt.Sprintf("daily at %02d:%02d", t.Hour, t.Minute)
	}
	return fmt.Sprintf("once after %s", t.After)
}

type Notification struct {
	ID      string
	Title   string
	Body    string
	Trigger Trigger
}

// Pending is a scheduled notification waiting for its due time.
type Pending struct {
	Notification Notification
	Due          time.Time
}
