package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/spend-easy/internal/entity/notification"
)

const testTopic = "notifications"

func expectCommand(t *testing.T, check func(cmd notification.Command)) mocks.ValueChecker {
	return func(val []byte) error {
		cmd, err := UnmarshalCommand(val)
		if err != nil {
			return err
		}
		assert.False(t, cmd.IssuedAt.IsZero())
		check(cmd)
		return nil
	}
}

func Test_Gateway_ShouldPublishSchedule(t *testing.T) {
	producer := mocks.NewSyncProducer(t, newSaramaConfig())
	n := notification.Notification{
		ID:      "inactivityReminder",
		Title:   "We miss you!",
		Body:    "Don't forget to track your expenses today",
		Trigger: notification.AfterDelay(time.Second),
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(expectCommand(t, func(cmd notification.Command) {
		assert.Equal(t, notification.OpSchedule, cmd.Op)
		assert.Equal(t, n, cmd.Notification)
	}))
	gateway := NewGatewayWithProducer(producer, testTopic)

	err := gateway.Schedule(context.Background(), n)

	require.NoError(t, err)
	gateway.Close()
}

func Test_Gateway_ShouldPublishCancelAndPermission(t *testing.T) {
	producer := mocks.NewSyncProducer(t, newSaramaConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(expectCommand(t, func(cmd notification.Command) {
		assert.Equal(t, notification.OpCancel, cmd.Op)
		assert.Equal(t, []string{"milestone10k", "milestone15k"}, cmd.CancelIDs)
	}))
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(expectCommand(t, func(cmd notification.Command) {
		assert.Equal(t, notification.OpRequestPermission, cmd.Op)
	}))
	gateway := NewGatewayWithProducer(producer, testTopic)

	require.NoError(t, gateway.CancelPending(context.Background(), []string{"milestone10k", "milestone15k"}))
	require.NoError(t, gateway.RequestPermission(context.Background()))
	gateway.Close()
}

func Test_Gateway_ShouldWrapSendError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, newSaramaConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	gateway := NewGatewayWithProducer(producer, testTopic)

	err := gateway.Schedule(context.Background(), notification.Notification{ID: "dailyReminder"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	gateway.Close()
}
