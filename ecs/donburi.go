package ecs

import (
	"github.com/phanxgames/snaek"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for snaek interaction events.
var InteractionEventType = events.NewEventType[snaek.InteractionEvent]()

// WidgetState mirrors a bound widget's interaction state.
type WidgetState struct {
	Key     snaek.WidgetKey
	Hovered bool
	Pressed bool
	Clicks  int
}

// Widget is the component holding a [WidgetState].
var Widget = donburi.NewComponentType[WidgetState]()

var widgetQuery = donburi.NewQuery(filter.Contains(Widget))

// DonburiStore is an EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[snaek.WidgetKey]donburi.Entity
}

// NewDonburiStore creates a store publishing into world.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world:    world,
		entities: make(map[snaek.WidgetKey]donburi.Entity),
	}
}

// Bind creates, or returns, the entity tracking the widget built with key.
func (s *DonburiStore) Bind(key snaek.WidgetKey) donburi.Entity {
	if e, ok := s.entities[key]; ok && s.world.Valid(e) {
		return e
	}
	e := s.world.Create(Widget)
	Widget.SetValue(s.world.Entry(e), WidgetState{Key: key})
	s.entities[key] = e
	return e
}

// Unbind removes the entity tracking key, if any.
func (s *DonburiStore) Unbind(key snaek.WidgetKey) {
	e, ok := s.entities[key]
	if !ok {
		return
	}
	delete(s.entities, key)
	if s.world.Valid(e) {
		s.world.Remove(e)
	}
}

// State returns the tracked state of key.
func (s *DonburiStore) State(key snaek.WidgetKey) (WidgetState, bool) {
	e, ok := s.entities[key]
	if !ok || !s.world.Valid(e) {
		return WidgetState{}, false
	}
	return *Widget.Get(s.world.Entry(e)), true
}

// EachWidget calls fn for every tracked widget state.
func (s *DonburiStore) EachWidget(fn func(WidgetState)) {
	widgetQuery.Each(s.world, func(entry *donburi.Entry) {
		fn(*Widget.Get(entry))
	})
}

// EmitEvent publishes event and updates the bound entity, if any.
func (s *DonburiStore) EmitEvent(event snaek.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)

	e, ok := s.entities[event.Key]
	if !ok || !s.world.Valid(e) {
		return
	}
	st := Widget.Get(s.world.Entry(e))
	switch event.Type {
	case snaek.EventPointerEnter:
		st.Hovered = true
	case snaek.EventPointerLeave:
		st.Hovered = false
	case snaek.EventPointerDown:
		st.Pressed = true
	case snaek.EventPointerUp:
		st.Pressed = false
	case snaek.EventClick:
		st.Clicks++
	}
}
