package config

import "time"

type MemcachedConfig struct {
	NodeHosts  []string `yaml:"hosts"`
	TTLSeconds int32    `yaml:"ttl-seconds"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}
