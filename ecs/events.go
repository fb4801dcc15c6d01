package ecs

import (
	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
)

// EventType identifies a notification kind.
type EventType string

const (
	// EventTick marks one elapsed frame.
	EventTick EventType = "tick"
	// EventEntityRemoved asks the removal system to destroy Entity.
	EventEntityRemoved EventType = "entity_removed"
	// EventPlayerHPChanged tells the HUD that Entity's health changed.
	EventPlayerHPChanged EventType = "player_hp_changed"
	// EventEntityAttacked reports that Entity fired an attack.
	EventEntityAttacked EventType = "entity_attacked"
	// EventPositionUpdated reports that Entity's collider moved to Position.
	EventPositionUpdated EventType = "position_updated"
)

// Event is a notification delivered through the EventBus.
type Event struct {
	Type     EventType
	Entity   Entity
	Position cp.Vector
}

// Handler receives events of the type it subscribed to.
type Handler func(evt Event)

// Subscription is a registered handler. Cancel stops further deliveries.
type Subscription struct {
	id        string
	eventType EventType
	handler   Handler
	active    bool
	bus       *EventBus
}

func (s *Subscription) ID() string           { return s.id }
func (s *Subscription) EventType() EventType { return s.eventType }
func (s *Subscription) IsActive() bool       { return s != nil && s.active }

// Cancel removes the subscription from its bus.
func (s *Subscription) Cancel() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	if s.bus != nil {
		s.bus.remove(s)
	}
}

// EventBus delivers events synchronously to handlers in subscription order.
// Events posted while a handler runs are queued and delivered after it
// returns, in post order, so handlers never re-enter each other.
type EventBus struct {
	handlers    map[EventType][]*Subscription
	queue       []Event
	dispatching bool
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]*Subscription)}
}

// Subscribe registers h for events of type t.
func (b *EventBus) Subscribe(t EventType, h Handler) *Subscription {
	if b == nil || h == nil {
		return nil
	}
	if b.handlers == nil {
		b.handlers = make(map[EventType][]*Subscription)
	}
	s := &Subscription{id: uuid.NewString(), eventType: t, handler: h, active: true, bus: b}
	b.handlers[t] = append(b.handlers[t], s)
	return s
}

// Post queues evt and, unless a delivery is already in progress, drains the
// queue before returning.
func (b *EventBus) Post(evt Event) {
	if b == nil {
		return
	}
	b.queue = append(b.queue, evt)
	if b.dispatching {
		return
	}
	b.dispatching = true
	defer func() { b.dispatching = false }()
	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		b.deliver(next)
	}
	b.queue = nil
}

// Pending reports how many events are queued but not yet delivered.
func (b *EventBus) Pending() int {
	if b == nil {
		return 0
	}
	return len(b.queue)
}

func (b *EventBus) deliver(evt Event) {
	subs := b.handlers[evt.Type]
	if len(subs) == 0 {
		return
	}
	// handlers may subscribe or cancel while we iterate
	snapshot := append([]*Subscription(nil), subs...)
	for _, s := range snapshot {
		if s.active {
			s.handler(evt)
		}
	}
}

func (b *EventBus) remove(s *Subscription) {
	subs := b.handlers[s.eventType]
	for i, cur := range subs {
		if cur == s {
			b.handlers[s.eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}
