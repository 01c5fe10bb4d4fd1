package config

type MetricsConfig struct {
	ListenAddr string `yaml:"listen-addr"`
	HealthPort int    `yaml:"health-port"`
}

func (m *MetricsConfig) Addr() string {
	return m.ListenAddr
}

func (m *MetricsConfig) GRPCHealthPort() int {
	return m.HealthPort
}
