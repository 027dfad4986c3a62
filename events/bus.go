package events

import (
	"github.com/yohamta/donburi"
	donburievents "github.com/yohamta/donburi/features/events"
)

// Bus delivers events published in one world. It is owned by a session:
// created with it and closed when it is torn down.
//
// Delivery is synchronous. Subscribers run in registration order before
// Publish returns. An event published from inside a subscriber is queued
// and delivered once every subscriber has seen the current one.
type Bus struct {
	world    donburi.World
	pending  []func()
	flushing bool
	closed   bool
}

func NewBus(w donburi.World) *Bus {
	return &Bus{world: w}
}

// World returns the world the bus delivers in.
func (b *Bus) World() donburi.World { return b.world }

// Close stops delivery. Later publishes are dropped.
func (b *Bus) Close() {
	b.closed = true
	b.pending = nil
}

func (b *Bus) Closed() bool { return b.closed }

// Subscribe registers fn for every later event of type t.
func Subscribe[T any](b *Bus, t *donburievents.EventType[T], fn func(T)) {
	t.Subscribe(b.world, func(_ donburi.World, ev T) {
		if b.closed {
			return
		}
		fn(ev)
	})
}

// Publish delivers ev to every subscriber of t.
func Publish[T any](b *Bus, t *donburievents.EventType[T], ev T) {
	if b == nil || b.closed {
		return
	}
	b.pending = append(b.pending, func() {
		t.Publish(b.world, ev)
		t.ProcessEvents(b.world)
	})
	if b.flushing {
		return
	}
	b.flushing = true
	defer func() { b.flushing = false }()
	for len(b.pending) > 0 && !b.closed {
		next := b.pending[0]
		b.pending = b.pending[1:]
		next()
	}
}
