package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultFirstMilestone       = 10000
	defaultSecondMilestone      = 15000
	defaultDailyHour            = 20
	defaultEndOfMonthDays       = 7
	defaultInactivityHours      = 24
	defaultPassIntervalMinutes  = 60
	defaultNotificationDelaySec = 1
)

type RemindersConfig struct {
	FirstMilestone       int64 `yaml:"first-milestone"`
	SecondMilestone      int64 `yaml:"second-milestone"`
	DailyHour            int   `yaml:"daily-hour"`
	EndOfMonthDays       int   `yaml:"end-of-month-days"`
	InactivityHours      int64 `yaml:"inactivity-hours"`
	PassIntervalMinutes  int64 `yaml:"pass-interval-minutes"`
	FlagRetentionMonths  int   `yaml:"retention-months"`
	NotificationDelaySec int64 `yaml:"notification-delay-seconds"`
}

func (s *RemindersConfig) validate() error {
	if s.FirstMilestone <= 0 || s.SecondMilestone <= s.FirstMilestone {
		return errors.New("milestones must be positive and increasing")
	}
	if s.DailyHour < 0 || s.DailyHour > 23 {
		return errors.Errorf("daily hour %d out of range", s.DailyHour)
	}
	if s.PassIntervalMinutes <= 0 {
		return errors.New("pass interval must be positive")
	}
	if s.EndOfMonthDays < 0 {
		return errors.Errorf("end of month days %d is negative", s.EndOfMonthDays)
	}
	if s.InactivityHours < 0 {
		return errors.Errorf("inactivity hours %d is negative", s.InactivityHours)
	}
	if s.NotificationDelaySec < 0 {
		return errors.Errorf("notification delay %d is negative", s.NotificationDelaySec)
	}
	if s.FlagRetentionMonths < 0 {
		return errors.Errorf("retention months %d is negative", s.FlagRetentionMonths)
	}
	return nil
}

func (s *RemindersConfig) Milestones() (first, second decimal.Decimal) {
	return decimal.NewFromInt(s.FirstMilestone), decimal.NewFromInt(s.SecondMilestone)
}

func (s *RemindersConfig) DailyReminderHour() int {
	return s.DailyHour
}

func (s *RemindersConfig) EndOfMonthWindow() int {
	return s.EndOfMonthDays
}

func (s *RemindersConfig) InactivityThreshold() time.Duration {
	return time.Duration(s.InactivityHours) * time.Hour
}

func (s *RemindersConfig) PassInterval() time.Duration {
	return time.Duration(s.PassIntervalMinutes) * time.Minute
}

func (s *RemindersConfig) RetentionMonths() int {
	return s.FlagRetentionMonths
}

func (s *RemindersConfig) NotificationDelay() time.Duration {
	return time.Duration(s.NotificationDelaySec) * time.Second
}
