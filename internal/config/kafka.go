package config

import "time"

const defaultDeliveryIntervalSec = 5

type KafkaConfig struct {
	BrokerList  []string `yaml:"brokers"`
	Consumer    string   `yaml:"consumer-group"`
	NotifTopic  string   `yaml:"notifications-topic"`
	DeliverySec int64    `yaml:"delivery-interval-seconds"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) NotificationsTopic() string {
	return s.NotifTopic
}

// DeliveryInterval is how often the notifier looks for due notifications.
func (s *KafkaConfig) DeliveryInterval() time.Duration {
	if s.DeliverySec <= 0 {
		return defaultDeliveryIntervalSec * time.Second
	}
	return time.Duration(s.DeliverySec) * time.Second
}
