package ecs

import (
	"testing"

	"github.com/phanxgames/snaek"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	var _ snaek.EntityStore = NewDonburiStore(donburi.NewWorld())
}

func TestDonburiStore_PublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []snaek.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e snaek.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(snaek.InteractionEvent{Type: snaek.EventPointerDown, Widget: 4, Key: 42, X: 10, Y: 20})
	store.EmitEvent(snaek.InteractionEvent{Type: snaek.EventClick, Widget: 4, Key: 42})

	// Events are queued until processed.
	assert.Empty(t, received)
	InteractionEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, snaek.EventPointerDown, received[0].Type)
	assert.Equal(t, snaek.WidgetKey(42), received[0].Key)
	assert.Equal(t, int16(10), received[0].X)
	assert.Equal(t, int16(20), received[0].Y)
	assert.Equal(t, snaek.EventClick, received[1].Type)
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e snaek.InteractionEvent) { count1++ })
	InteractionEventType.Subscribe(world, func(w donburi.World, e snaek.InteractionEvent) { count2++ })

	store.EmitEvent(snaek.InteractionEvent{Type: snaek.EventClick})
	events.ProcessAllEvents(world)

	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}

func TestDonburiStore_TracksBoundWidgets(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	e := store.Bind(7)
	assert.Equal(t, e, store.Bind(7), "Bind is idempotent")

	for _, typ := range []snaek.EventType{
		snaek.EventPointerEnter, snaek.EventPointerDown, snaek.EventPointerUp, snaek.EventClick,
		snaek.EventPointerDown, snaek.EventPointerUp, snaek.EventClick,
	} {
		store.EmitEvent(snaek.InteractionEvent{Type: typ, Key: 7})
	}
	// Unbound keys only publish.
	store.EmitEvent(snaek.InteractionEvent{Type: snaek.EventClick, Key: 8})

	st, ok := store.State(7)
	require.True(t, ok)
	assert.Equal(t, WidgetState{Key: 7, Hovered: true, Pressed: false, Clicks: 2}, st)

	_, ok = store.State(8)
	assert.False(t, ok)

	var seen []snaek.WidgetKey
	store.EachWidget(func(s WidgetState) { seen = append(seen, s.Key) })
	assert.Equal(t, []snaek.WidgetKey{7}, seen)

	store.Unbind(7)
	_, ok = store.State(7)
	assert.False(t, ok)
	assert.False(t, world.Valid(e))
}

func TestDonburiStore_WithContext(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	c := snaek.NewContext(snaek.Size{W: 20, H: 20})
	c.SetEntityStore(store)
	store.Bind(1)

	build := func(c *snaek.Context) {
		btn := c.BuildWidget(snaek.Props{Key: 1, Flags: snaek.FlagCanClick, Size: snaek.SizeFixed(10, 10)})
		c.AddChild(snaek.RootWidget, btn.ID)
	}

	var m snaek.Mouse
	for _, down := range []bool{false, true, false} {
		m.Update(5, 5, down, false, false)
		c.Frame(m, build, nil)
	}

	st, ok := store.State(1)
	require.True(t, ok)
	assert.True(t, st.Hovered)
	assert.Equal(t, 1, st.Clicks)
}
