package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

//go:generate minimock -i max.ks1230/spend-easy/internal/model/messages.messageSender -o ./mock/message_sender_mock.go -n MessageSenderMock -p mock
type messageSender interface {
	SendMessage(text string, userID int64) error
}

//go:generate minimock -i max.ks1230/spend-easy/internal/model/messages.foregroundListener -o ./mock/foreground_listener_mock.go -n ForegroundListenerMock -p mock
type foregroundListener interface {
	Foreground() bool
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type Service struct {
	tgClient   messageSender
	handler    MessageHandler
	foreground foregroundListener
}

func NewService(tgClient messageSender, expenses expenseService, reports reportGenerator, foreground foregroundListener, config config) *Service {
	return &Service{
		tgClient:   tgClient,
		handler:    newHandler(expenses, reports, config),
		foreground: foreground,
	}
}

type Message struct {
	Text   string
	UserID int64
}

// HandleIncomingMessage answers a chat message. Every message counts as the
// user opening the app.
func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	if s.foreground != nil {
		s.foreground.Foreground()
	}

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp, msg.UserID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}
