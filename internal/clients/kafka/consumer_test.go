package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/spend-easy/internal/entity/notification"
)

type recordingSession struct {
	sarama.ConsumerGroupSession
	marked []int64
}

func (s *recordingSession) Context() context.Context {
	return context.Background()
}

func (s *recordingSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type bufferedClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *bufferedClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.messages
}

func newClaim(values ...[]byte) *bufferedClaim {
	claim := &bufferedClaim{messages: make(chan *sarama.ConsumerMessage, len(values))}
	for i, v := range values {
		claim.messages <- &sarama.ConsumerMessage{Topic: testTopic, Offset: int64(i), Value: v}
	}
	close(claim.messages)
	return claim
}

type handlerFunc func(ctx context.Context, cmd notification.Command) error

func (f handlerFunc) HandleCommand(ctx context.Context, cmd notification.Command) error {
	return f(ctx, cmd)
}

func scheduleValue(id string) []byte {
	return MarshalCommand(notification.Command{
		Op:           notification.OpSchedule,
		Notification: notification.Notification{ID: id, Trigger: notification.AfterDelay(time.Second)},
		IssuedAt:     time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
	})
}

func Test_ConsumeClaim_ShouldMarkHandledCommands(t *testing.T) {
	var handled []string
	consumer := &Consumer{topic: testTopic, handler: handlerFunc(func(_ context.Context, cmd notification.Command) error {
		handled = append(handled, cmd.Notification.ID)
		return nil
	})}
	session := &recordingSession{}

	err := consumer.ConsumeClaim(session, newClaim(scheduleValue("milestone10k"), []byte{0xff}, scheduleValue("milestone15k")))

	require.NoError(t, err)
	assert.Equal(t, []string{"milestone10k", "milestone15k"}, handled)
	assert.Equal(t, []int64{0, 1, 2}, session.marked)
}

func Test_ConsumeClaim_ShouldLeaveFailedCommandUnmarked(t *testing.T) {
	var handled []string
	consumer := &Consumer{topic: testTopic, handler: handlerFunc(func(_ context.Context, cmd notification.Command) error {
		handled = append(handled, cmd.Notification.ID)
		if cmd.Notification.ID == "endOfMonthAdvice" {
			return errors.New("database is down")
		}
		return nil
	})}
	session := &recordingSession{}

	err := consumer.ConsumeClaim(session, newClaim(
		scheduleValue("milestone10k"),
		scheduleValue("endOfMonthAdvice"),
		scheduleValue("monthlyComparison"),
	))

	assert.Error(t, err)
	assert.Equal(t, []string{"milestone10k", "endOfMonthAdvice"}, handled)
	assert.Equal(t, []int64{0}, session.marked)
}
