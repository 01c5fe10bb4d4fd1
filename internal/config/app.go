package config

import "time"

const defaultChartSize = 280

type AppConfig struct {
	TimeZone  string  `yaml:"time-zone"`
	ChartSide float64 `yaml:"chart-size"`
}

// Location falls back to the local zone when the configured name is unknown.
func (s *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (s *AppConfig) ChartSize() float64 {
	return s.ChartSide
}
