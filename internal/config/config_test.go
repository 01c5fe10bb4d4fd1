package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_ShouldFillDefaults(t *testing.T) {
	s, err := Parse([]byte("telegram:\n  token: abc\n"))

	require.NoError(t, err)
	first, second := s.Reminders().Milestones()
	assert.True(t, decimal.NewFromInt(10000).Equal(first))
	assert.True(t, decimal.NewFromInt(15000).Equal(second))
	assert.Equal(t, 20, s.Reminders().DailyReminderHour())
	assert.Equal(t, 7, s.Reminders().EndOfMonthWindow())
	assert.Equal(t, 24*time.Hour, s.Reminders().InactivityThreshold())
	assert.Equal(t, time.Hour, s.Reminders().PassInterval())
	assert.Equal(t, time.Second, s.Reminders().NotificationDelay())
	assert.Zero(t, s.Reminders().RetentionMonths())
	assert.Equal(t, float64(280), s.App().ChartSize())
	assert.Equal(t, 5*time.Second, s.Kafka().DeliveryInterval())
	assert.Equal(t, "abc", s.Telegram().Token())
}

func Test_Parse_ShouldReadSections(t *testing.T) {
	raw := `
app:
  time-zone: Asia/Kolkata
reminders:
  first-milestone: 5000
  second-milestone: 8000
  retention-months: 3
postgres:
  host: db
  db: spend
  migrate: true
memcached:
  hosts: [cache:11211]
  ttl-seconds: 60
kafka:
  brokers: [kafka:9092]
  notifications-topic: notes
`
	s, err := Parse([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", s.App().Location().String())
	first, _ := s.Reminders().Milestones()
	assert.True(t, decimal.NewFromInt(5000).Equal(first))
	assert.Equal(t, 3, s.Reminders().RetentionMonths())
	assert.Equal(t, "db", s.Postgres().Host())
	assert.True(t, s.Postgres().RunMigrations())
	assert.Equal(t, []string{"cache:11211"}, s.Memcached().Hosts())
	assert.Equal(t, time.Minute, s.Memcached().TTL())
	assert.Equal(t, []string{"kafka:9092"}, s.Kafka().Brokers())
	assert.Equal(t, "notes", s.Kafka().NotificationsTopic())
}

func Test_Parse_ShouldRejectInvalidReminders(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "decreasing milestones", raw: "reminders:\n  first-milestone: 15000\n  second-milestone: 10000\n"},
		{name: "daily hour", raw: "reminders:\n  daily-hour: 24\n"},
		{name: "pass interval", raw: "reminders:\n  pass-interval-minutes: -1\n"},
		{name: "end of month days", raw: "reminders:\n  end-of-month-days: -3\n"},
		{name: "inactivity hours", raw: "reminders:\n  inactivity-hours: -24\n"},
		{name: "notification delay", raw: "reminders:\n  notification-delay-seconds: -1\n"},
		{name: "retention months", raw: "reminders:\n  retention-months: -2\n"},
		{name: "broken yaml", raw: "reminders: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func Test_Location_ShouldFallBackToLocal(t *testing.T) {
	app := &AppConfig{TimeZone: "Mars/Olympus"}

	assert.Equal(t, time.Local, app.Location())
}
