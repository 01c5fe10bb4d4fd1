package kafka

import (
	"context"
	"time"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/entity/notification"
	"max.ks1230/spend-easy/internal/logger"
)

// every command shares one key so the delivery side sees them in order
const commandsKey = "device"

type producerConfig interface {
	Brokers() []string
	NotificationsTopic() string
}

// Gateway publishes notification commands to Kafka.
type Gateway struct {
	producer sarama.SyncProducer
	topic    string
}

func newSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true
	return config
}

func NewGateway(cfg producerConfig) (*Gateway, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers(), newSaramaConfig())
	if err != nil {
		return nil, errors.Wrap(err, "new sync producer")
	}
	return NewGatewayWithProducer(producer, cfg.NotificationsTopic()), nil
}

func NewGatewayWithProducer(producer sarama.SyncProducer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) RequestPermission(ctx context.Context) error {
	return g.publish(ctx, notification.Command{Op: notification.OpRequestPermission})
}

func (g *Gateway) Schedule(ctx context.Context, n notification.Notification) error {
	return g.publish(ctx, notification.Command{Op: notification.OpSchedule, Notification: n})
}

func (g *Gateway) CancelPending(ctx context.Context, ids []string) error {
	return g.publish(ctx, notification.Command{Op: notification.OpCancel, CancelIDs: ids})
}

func (g *Gateway) publish(ctx context.Context, cmd notification.Command) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "publishCommand")
	defer span.Finish()
	span.SetTag("op", cmd.Op.String())

	cmd.IssuedAt = time.Now()
	partition, offset, err := g.producer.SendMessage(&sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(commandsKey),
		Value: sarama.ByteEncoder(MarshalCommand(cmd)),
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s", cmd.Op)
	}
	logger.Debug("command published",
		zap.Stringer("op", cmd.Op),
		zap.String("id", cmd.Notification.ID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (g *Gateway) Close() {
	err := g.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
