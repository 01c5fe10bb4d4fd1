package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configFileEnv = "CONFIG_FILE"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Reminders RemindersConfig `yaml:"reminders"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = configFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

// Parse builds the service from raw YAML, filling defaults for omitted values.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.config.Reminders.validate(); err != nil {
		return nil, errors.Wrap(err, "validating reminders")
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			TimeZone:  "Local",
			ChartSide: defaultChartSize,
		},
		Reminders: RemindersConfig{
			FirstMilestone:       defaultFirstMilestone,
			SecondMilestone:      defaultSecondMilestone,
			DailyHour:            defaultDailyHour,
			EndOfMonthDays:       defaultEndOfMonthDays,
			InactivityHours:      defaultInactivityHours,
			PassIntervalMinutes:  defaultPassIntervalMinutes,
			FlagRetentionMonths:  0,
			NotificationDelaySec: defaultNotificationDelaySec,
		},
		Metrics: MetricsConfig{ListenAddr: ":9090"},
		Jaeger:  JaegerConfig{Service: "spend-easy"},
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Reminders() *RemindersConfig {
	return &s.config.Reminders
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
