package config

type JaegerConfig struct {
	Service string `yaml:"service-name"`
	Agent   string `yaml:"agent-host-port"`
}

func (j *JaegerConfig) ServiceName() string {
	return j.Service
}

func (j *JaegerConfig) AgentHostPort() string {
	return j.Agent
}
