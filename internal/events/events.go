// Package events publishes domain events after successful writes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Actions emitted by the services.
const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionDeleted       = "deleted"
	ActionTerminated    = "terminated"
	ActionPaid          = "paid"
	ActionAdjusted      = "adjusted"
	ActionStatusChanged = "status_changed"
)

// Event describes a change to one entity.
type Event struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New builds an event stamped with a fresh id and the current time.
func New(entity, action, entityID string) Event {
	return Event{
		ID:         uuid.NewString(),
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop drops every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

// Conn is the subset of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher writes events as JSON to <prefix>.<entity>.<action>.
type NATSPublisher struct {
	conn   Conn
	prefix string
}

// NewNATSPublisher wraps an established connection.
func NewNATSPublisher(conn Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject returns the subject an event is published on.
func (p *NATSPublisher) Subject(e Event) string {
	if p.prefix == "" {
		return e.Entity + "." + e.Action
	}
	return p.prefix + "." + e.Entity + "." + e.Action
}

func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before publish: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(e), data); err != nil {
		return fmt.Errorf("publish %s: %w", p.Subject(e), err)
	}
	return nil
}

// Connect dials NATS with reconnect settings suited to a long-running API.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("propdesk"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}

// Emitter publishes best-effort: failures are logged and swallowed so a broker
// outage never fails a write that has already been committed.
type Emitter struct {
	pub Publisher
	log logrus.FieldLogger
}

// NewEmitter returns an Emitter. A nil publisher behaves like Noop.
func NewEmitter(pub Publisher, log logrus.FieldLogger) *Emitter {
	if pub == nil {
		pub = Noop{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Emitter{pub: pub, log: log}
}

// Emit publishes entity/action for entityID. A nil Emitter does nothing.
func (e *Emitter) Emit(ctx context.Context, entity, action, entityID string) {
	if e == nil {
		return
	}
	ev := New(entity, action, entityID)
	if err := e.pub.Publish(ctx, ev); err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"entity":    entity,
			"action":    action,
			"entity_id": entityID,
		}).Warn("event publish failed")
	}
}
