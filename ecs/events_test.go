package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDeliveryOrder(t *testing.T) {
	bus := NewEventBus()
	var got []string

	bus.Subscribe(EventEntityRemoved, func(evt Event) { got = append(got, "first:"+evt.Entity.String()) })
	bus.Subscribe(EventEntityRemoved, func(evt Event) { got = append(got, "second:"+evt.Entity.String()) })
	bus.Subscribe(EventTick, func(Event) { got = append(got, "tick") })

	bus.Post(Event{Type: EventEntityRemoved, Entity: 1})
	bus.Post(Event{Type: EventTick})
	bus.Post(Event{Type: EventEntityRemoved, Entity: 2})

	assert.Equal(t, []string{"first:1", "second:1", "tick", "first:2", "second:2"}, got)
	assert.Zero(t, bus.Pending())
}

func TestEventBusQueuesNestedPosts(t *testing.T) {
	bus := NewEventBus()
	var got []string

	ticks := 0
	bus.Subscribe(EventTick, func(Event) {
		ticks++
		got = append(got, "tick:start")
		if ticks == 1 {
			bus.Post(Event{Type: EventEntityAttacked, Entity: 7})
			bus.Post(Event{Type: EventTick})
			assert.Equal(t, 2, bus.Pending())
		}
		got = append(got, "tick:end")
	})
	bus.Subscribe(EventEntityAttacked, func(evt Event) {
		got = append(got, "attacked:"+evt.Entity.String())
	})

	bus.Post(Event{Type: EventTick})

	assert.Equal(t, []string{"tick:start", "tick:end", "attacked:7", "tick:start", "tick:end"}, got)
	assert.Equal(t, 2, ticks)
	assert.Zero(t, bus.Pending())
}

func TestSubscriptionCancel(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	sub := bus.Subscribe(EventPlayerHPChanged, func(Event) { calls++ })
	require.NotNil(t, sub)
	assert.True(t, sub.IsActive())
	assert.NotEmpty(t, sub.ID())
	assert.Equal(t, EventPlayerHPChanged, sub.EventType())

	bus.Post(Event{Type: EventPlayerHPChanged})
	sub.Cancel()
	sub.Cancel()
	bus.Post(Event{Type: EventPlayerHPChanged})

	assert.Equal(t, 1, calls)
	assert.False(t, sub.IsActive())
}

func TestCancelDuringDelivery(t *testing.T) {
	bus := NewEventBus()
	var later *Subscription
	laterCalls := 0

	bus.Subscribe(EventTick, func(Event) { later.Cancel() })
	later = bus.Subscribe(EventTick, func(Event) { laterCalls++ })

	bus.Post(Event{Type: EventTick})
	assert.Zero(t, laterCalls)
}

func TestSubscriptionIDsAreUnique(t *testing.T) {
	bus := NewEventBus()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := bus.Subscribe(EventTick, func(Event) {}).ID()
		require.False(t, seen[id], "duplicate subscription id %s", id)
		seen[id] = true
	}
}

type countingSystem struct {
	name  string
	log   *[]string
	frame []uint64
}

func (s *countingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	s.frame = append(s.frame, w.Frame())
}

func TestSchedulerRunsOnTick(t *testing.T) {
	w := NewWorld()
	var log []string
	a := &countingSystem{name: "a", log: &log}
	b := &countingSystem{name: "b", log: &log}

	sched := NewScheduler(a, nil, b)
	require.Len(t, sched.Systems(), 2)
	sub := sched.Bind(w)

	Tick(w)
	Tick(w)

	assert.Equal(t, []string{"a", "b", "a", "b"}, log)
	assert.Equal(t, []uint64{0, 1}, a.frame)
	assert.Equal(t, uint64(2), w.Frame())

	sub.Cancel()
	Tick(w)
	assert.Len(t, log, 4)
}

func TestTickPostedDuringTickRunsAfterPass(t *testing.T) {
	w := NewWorld()
	var log []string
	var sched *Scheduler
	reposted := false
	sched = NewScheduler(
		&countingSystem{name: "a", log: &log},
		systemFunc(func(w *World) {
			if !reposted {
				reposted = true
				Tick(w)
				log = append(log, "posted")
			}
		}),
		&countingSystem{name: "c", log: &log},
	)
	sched.Bind(w)

	Tick(w)

	assert.Equal(t, []string{"a", "posted", "c", "a", "c"}, log)
	assert.Equal(t, uint64(2), w.Frame())
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
