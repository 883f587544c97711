// Package ecs bridges snaek's widget interaction events into a [Donburi]
// world.
//
// [DonburiStore] implements [snaek.EntityStore]. Every event the react pass
// produces is published as a typed Donburi event on [InteractionEventType].
// Widgets whose key was bound with [DonburiStore.Bind] also get an entity
// carrying a [WidgetState] component that tracks hover, press and click
// counts, so systems can query interaction state like any other component.
//
// Usage:
//
//	world := donburi.NewWorld()
//	store := ecs.NewDonburiStore(world)
//	ctx.SetEntityStore(store)
//	store.Bind(restartKey)
//
//	InteractionEventType.Subscribe(world, onInteraction)
//	// each frame, after React:
//	InteractionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
