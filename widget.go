package snaek

import "github.com/tanema/gween"

// WidgetID addresses a widget slot in a [Context] arena. IDs are 1-based and
// 0 means "no widget".
type WidgetID uint32

// RootWidget is the viewport-sized container every frame's tree hangs from.
const RootWidget WidgetID = 1

// WidgetFlags is a bitset of widget behaviors.
type WidgetFlags uint16

const (
	FlagCanFocus       WidgetFlags = 1 << iota // reserved for keyboard focus
	FlagCanHover                               // takes part in hit-testing
	FlagCanClick                               // takes part in hit-testing and can be pressed
	FlagDrawText                               // draw Props.Text
	FlagDrawBorder                             // stroke Props.BorderColor
	FlagDrawBackground                         // fill Props.Color
	FlagDrawSprite                             // draw Props.Sprite
	FlagDisabled                               // swallow interaction for the whole subtree
	FlagComposite                              // draw the subtree on its own layer
)

// Has reports whether all bits of f2 are set in f.
func (f WidgetFlags) Has(f2 WidgetFlags) bool { return f&f2 == f2 }

// Props is everything a widget declares for one frame.
type Props struct {
	Key   WidgetKey
	Flags WidgetFlags

	Color       Color // background
	BorderColor Color
	BorderWidth uint16
	Tint        Color // AND mask for sprite and text; zero means none

	Comp          CompMode // composition of background, sprite and text
	CompositeComp CompMode // composition of the layer when FlagComposite is set

	Sprite WidgetSprite
	Text   Text

	Anchor   Anchor // point in the parent's inner rect
	Origin   Anchor // point of this widget placed on Anchor
	Offset   Pos    // draw-time offset, ignored by layout and hit-testing
	Rotation Rotation

	Size    WidgetSize
	Padding Padding
	Layout  Layout
}

type widgetState uint8

const (
	widgetLive widgetState = iota
	widgetFreed
)

// treeLinks are a live widget's position in the tree.
type treeLinks struct {
	parent     WidgetID
	prev, next WidgetID
	firstChild WidgetID
	lastChild  WidgetID
	childCount uint16
}

// Widget is one arena slot. Tree links are meaningful only while the widget
// is live; nextFree only while it is freed.
type Widget struct {
	id    WidgetID
	state widgetState
	links treeLinks

	nextFree WidgetID

	key   WidgetKey
	props Props

	hovered bool
	pressed bool
	clicked bool

	hoverAmount float32
	hoverTween  *gween.Tween
	reacted     bool // visited by the react pass since the last build

	solvedRect    Rect
	solvedMinSize Size

	lastFrameTouched uint64
}

// ID returns the widget's arena id.
func (w *Widget) ID() WidgetID { return w.id }

// Key returns the key the widget was built with.
func (w *Widget) Key() WidgetKey { return w.key }

// Props returns the props of the most recent build.
func (w *Widget) Props() Props { return w.props }

// Parent returns the parent id, or 0 for the root or a detached widget.
func (w *Widget) Parent() WidgetID { return w.links.parent }

// ChildCount returns the number of children added this frame.
func (w *Widget) ChildCount() int { return int(w.links.childCount) }

// SolvedRect returns the rectangle computed by the last SolveLayout.
func (w *Widget) SolvedRect() Rect { return w.solvedRect }

// SolvedMinSize returns the minimum size computed by the last SolveLayout.
func (w *Widget) SolvedMinSize() Size { return w.solvedMinSize }

func (w *Widget) Hovered() bool        { return w.hovered }
func (w *Widget) Pressed() bool        { return w.pressed }
func (w *Widget) Clicked() bool        { return w.clicked }
func (w *Widget) HoverAmount() float32 { return w.hoverAmount }

// LastFrameTouched returns the frame counter of the widget's latest build.
func (w *Widget) LastFrameTouched() uint64 { return w.lastFrameTouched }

// resetInteraction drops hover, press and click state and any running tween.
func (w *Widget) resetInteraction() {
	w.hovered, w.pressed, w.clicked = false, false, false
	w.hoverAmount = 0
	w.hoverTween = nil
}

// Reaction is the interaction state a widget had at the end of the previous
// frame, returned by [Context.BuildWidget].
type Reaction struct {
	ID WidgetID

	hovered     bool
	pressed     bool
	clicked     bool
	hoverAmount float32
}

func (r Reaction) Hovered() bool { return r.hovered }
func (r Reaction) Pressed() bool { return r.pressed }

// Clicked reports a completed press and release over the widget. It is true
// for exactly one frame per click.
func (r Reaction) Clicked() bool { return r.clicked }

// HoverAmount is the eased hover value in [0, 1]; it trails Hovered.
func (r Reaction) HoverAmount() float32 { return r.hoverAmount }

func (w *Widget) reaction() Reaction {
	return Reaction{
		ID:          w.id,
		hovered:     w.hovered,
		pressed:     w.pressed,
		clicked:     w.clicked,
		hoverAmount: w.hoverAmount,
	}
}
