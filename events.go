package snaek

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerEnter EventType = iota // fires when a widget becomes hovered
	EventPointerLeave                  // fires when a widget stops being hovered
	EventPointerDown                   // fires when a press starts over a widget
	EventPointerUp                     // fires when a pressed widget is released or loses its press
	EventClick                         // fires on press then release over the same widget
)

func (t EventType) String() string {
	switch t {
	case EventPointerEnter:
		return "pointer-enter"
	case EventPointerLeave:
		return "pointer-leave"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EntityStore is the interface for optional ECS integration. When set on a
// Context, interaction events are forwarded to it as the react pass
// produces them.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type   EventType
	Widget WidgetID
	Key    WidgetKey
	X, Y   int16
	Button MouseButton
}
