// Package notifier is the delivery side of the notification gateway. It keeps
// the commands received from Kafka and sends the notifications once they are due.
// Pending notifications and the delivery permission are written through to a
// store, so a restarted notifier resumes where the previous one stopped.
package notifier

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/entity/notification"
	"max.ks1230/spend-easy/internal/logger"
)

//go:generate minimock -i max.ks1230/spend-easy/internal/model/notifier.sender -o ./mock/sender_mock.go -n SenderMock -p mock
type sender interface {
	Send(ctx context.Context, n notification.Notification) error
}

type pendingStore interface {
	ListPending(ctx context.Context) ([]notification.Pending, error)
	SavePending(ctx context.Context, p notification.Pending) error
	DeletePending(ctx context.Context, ids []string) error
	DeliveryPermitted(ctx context.Context) (bool, error)
	PermitDelivery(ctx context.Context) error
}

type pending struct {
	notification notification.Notification
	due          time.Time
}

type Notifier struct {
	sender   sender
	store    pendingStore
	clock    func() time.Time
	location *time.Location

	mu        sync.Mutex
	permitted bool
	pending   map[string]pending
}

type Option func(*Notifier)

func WithClock(clock func() time.Time) Option {
	return func(n *Notifier) {
		n.clock = clock
	}
}

// WithLocation sets the zone used for daily triggers.
func WithLocation(loc *time.Location) Option {
	return func(n *Notifier) {
		n.location = loc
	}
}

func New(sender sender, store pendingStore, opts ...Option) *Notifier {
	n := &Notifier{
		sender:   sender,
		store:    store,
		clock:    time.Now,
		location: time.Local,
		pending:  make(map[string]pending),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) now() time.Time {
	return n.clock().In(n.location)
}

// Restore loads the pending notifications and the permission kept by the
// store. It is called once before the first command is handled.
func (n *Notifier) Restore(ctx context.Context) error {
	stored, err := n.store.ListPending(ctx)
	if err != nil {
		return errors.Wrap(err, "restore pending")
	}
	permitted, err := n.store.DeliveryPermitted(ctx)
	if err != nil {
		return errors.Wrap(err, "restore permission")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.permitted = permitted
	for _, p := range stored {
		n.pending[p.Notification.ID] = pending{notification: p.Notification, due: p.Due.In(n.location)}
	}
	logger.Info("restored notifications", zap.Int("pending", len(stored)), zap.Bool("permitted", permitted))
	return nil
}

// HandleCommand applies one gateway command. Scheduling an id that is already
// pending replaces it. The command is stored before it takes effect, an error
// means it was not applied.
func (n *Notifier) HandleCommand(ctx context.Context, cmd notification.Command) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch cmd.Op {
	case notification.OpRequestPermission:
		if n.permitted {
			return nil
		}
		if err := n.store.PermitDelivery(ctx); err != nil {
			return errors.Wrap(err, "request permission")
		}
		logger.Info("delivery permitted")
		n.permitted = true
	case notification.OpCancel:
		if err := n.store.DeletePending(ctx, cmd.CancelIDs); err != nil {
			return errors.Wrap(err, "cancel")
		}
		for _, id := range cmd.CancelIDs {
			delete(n.pending, id)
		}
		observeCancelled(len(cmd.CancelIDs))
	case notification.OpSchedule:
		from := n.now()
		if cmd.Notification.Trigger.Kind == notification.Once && !cmd.IssuedAt.IsZero() {
			from = cmd.IssuedAt.In(n.location)
		}
		due := cmd.Notification.Trigger.NextFire(from)
		err := n.store.SavePending(ctx, notification.Pending{Notification: cmd.Notification, Due: due})
		if err != nil {
			return errors.Wrapf(err, "schedule %s", cmd.Notification.ID)
		}
		n.pending[cmd.Notification.ID] = pending{notification: cmd.Notification, due: due}
		logger.Debug("notification pending", zap.String("id", cmd.Notification.ID), zap.Time("due", due))
	default:
		return errors.Errorf("unknown command op %d", cmd.Op)
	}
	return nil
}

// DeliverDue sends every pending notification whose time has come, oldest
// first. Failed deliveries stay pending and are retried on the next call.
// Nothing is sent before permission was requested.
func (n *Notifier) DeliverDue(ctx context.Context) (int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deliverDue")
	defer span.Finish()

	due := n.takeDue()
	var (
		delivered int
		lastErr   error
	)
	for _, p := range due {
		err := n.sender.Send(ctx, p.notification)
		observeDelivery(p.notification.ID, err)
		if err != nil {
			ext.Error.Set(span, true)
			logger.Error("failed to deliver notification", zap.String("id", p.notification.ID), zap.Error(err))
			lastErr = errors.Wrapf(err, "deliver %s", p.notification.ID)
			continue
		}
		delivered++
		n.delivered(ctx, p)
	}
	return delivered, lastErr
}

func (n *Notifier) takeDue() []pending {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.permitted {
		return nil
	}

	current := n.now()
	var due []pending
	for _, p := range n.pending {
		if !p.due.After(current) {
			due = append(due, p)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].notification.ID < due[j].notification.ID
		}
		return due[i].due.Before(due[j].due)
	})
	return due
}

// delivered drops a one-shot notification and re-arms a daily one, unless
// the entry was replaced or cancelled while it was being sent. A store
// failure only costs a duplicate delivery after a restart.
func (n *Notifier) delivered(ctx context.Context, p pending) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := p.notification.ID
	current, ok := n.pending[id]
	if !ok || !current.due.Equal(p.due) || current.notification != p.notification {
		return
	}

	var err error
	if p.notification.Trigger.Kind == notification.Daily {
		current.due = p.notification.Trigger.NextFire(p.due.Add(time.Second))
		n.pending[id] = current
		err = n.store.SavePending(ctx, notification.Pending{Notification: current.notification, Due: current.due})
	} else {
		delete(n.pending, id)
		err = n.store.DeletePending(ctx, []string{id})
	}
	if err != nil {
		logger.Error("failed to store delivered notification", zap.String("id", id), zap.Error(err))
	}
}

// Pending lists the notifications waiting for delivery ordered by id.
func (n *Notifier) Pending() []notification.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	res := make([]notification.Notification, 0, len(n.pending))
	for _, p := range n.pending {
		res = append(res, p.notification)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ID < res[j].ID
	})
	return res
}

func (n *Notifier) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Start delivering notifications", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop delivering notifications")
			return
		case <-ticker.C:
			if _, err := n.DeliverDue(ctx); err != nil {
				logger.Error("delivery round failed", zap.Error(err))
			}
		}
	}
}
