// pkg/event/event.go
package event

import (
	"sync"

	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// Type represents the type of event
type Type string

// Effect signals emitted by the simulation. Presentation collaborators
// (audio, HUD flashes) subscribe to these.
const (
	ShotFired       Type = "shot_fired"
	Explosion       Type = "explosion"
	Hit             Type = "hit"
	Collected       Type = "collected"
	Jump            Type = "jump"
	MissileLaunched Type = "missile_launched"
	MissionComplete Type = "mission_complete"
	Confirm         Type = "confirm"
	Error           Type = "error"
	OpenStarMap     Type = "open_star_map"
)

// Session lifecycle events
const (
	GameStarted   Type = "game_started"
	GameOver      Type = "game_over"
	SectorEntered Type = "sector_entered"
)

// EffectTypes lists every effect signal
var EffectTypes = []Type{
	ShotFired, Explosion, Hit, Collected, Jump,
	MissileLaunched, MissionComplete, Confirm, Error, OpenStarMap,
}

// Effect is a fire-and-forget signal produced during a tick
type Effect struct {
	Type     Type
	Position physics.Vector2D
}

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is returned by Subscribe. Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

// SubscribeAll registers one handler for several event types
func (b *Bus) SubscribeAll(types []Type, handler Handler) []*Subscription {
	subs := make([]*Subscription, 0, len(types))
	for _, t := range types {
		subs = append(subs, b.Subscribe(t, handler))
	}
	return subs
}

// unsubscribe removes a handler by subscription id
func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers. Handlers run on the
// publisher's goroutine, after the lock is released, so they may subscribe
// or cancel.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// EffectEvent carries an effect signal and where it happened
type EffectEvent struct {
	BaseEvent
	Position physics.Vector2D
}

// NewEffectEvent wraps an effect for publication
func NewEffectEvent(source interface{}, effect Effect) *EffectEvent {
	return &EffectEvent{
		BaseEvent: BaseEvent{
			EventType: effect.Type,
			Source:    source,
		},
		Position: effect.Position,
	}
}

// SectorEvent announces arrival in a system
type SectorEvent struct {
	BaseEvent
	SystemID string
	Level    int
}

// NewSectorEvent creates a new sector event
func NewSectorEvent(source interface{}, systemID string, level int) *SectorEvent {
	return &SectorEvent{
		BaseEvent: BaseEvent{
			EventType: SectorEntered,
			Source:    source,
		},
		SystemID: systemID,
		Level:    level,
	}
}
