package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/entity/notification"
	"max.ks1230/spend-easy/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type commandHandler interface {
	HandleCommand(ctx context.Context, cmd notification.Command) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	handler       commandHandler
}

func NewConsumer(cfg consumerConfig, handler commandHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.NotificationsTopic(),
		handler:       handler,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

// ConsumeClaim marks a message only after its command was applied. A command
// that fails ends the claim unmarked, the next session reads it again from
// the last committed offset. Undecodable messages are skipped.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := c.process(session.Context(), message); err != nil {
			return errors.Wrapf(err, "offset %d", message.Offset)
		}
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, message *sarama.ConsumerMessage) error {
	cmd, err := UnmarshalCommand(message.Value)
	if err != nil {
		logger.Error("cannot unmarshal kafka message", zap.Int64("offset", message.Offset), zap.Error(err))
		return nil
	}
	logger.Info(
		"received notification command",
		zap.ByteString("key", message.Key),
		zap.Stringer("op", cmd.Op),
		zap.String("id", cmd.Notification.ID),
	)
	if err = c.handler.HandleCommand(ctx, cmd); err != nil {
		logger.Error("failed to handle command", zap.Stringer("op", cmd.Op), zap.Error(err))
		return errors.Wrapf(err, "handle %s", cmd.Op)
	}
	return nil
}
