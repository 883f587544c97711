// Package snaek is a retained-widget UI toolkit with a software compositor,
// built for low-resolution pixel-art games.
//
// The toolkit has no window dependency. A host (see snaek/host, which runs on
// [Ebitengine]) feeds it mouse samples and presents the finished framebuffer.
//
// # Frame contract
//
// Every frame the UI tree is declared again from scratch. Widgets keep their
// identity across frames through stable keys, so interaction state computed
// on one frame is read back by the code declaring the widget on the next:
//
//	ctx := snaek.NewContext(snaek.Size{W: 97, H: 124})
//	r := snaek.NewRenderer(snaek.NewBitmap(ctx.Viewport()), nil, fontSheet)
//
//	cmds := ctx.Frame(mouse, func(c *snaek.Context) {
//		btn := c.TextButton(snaek.Key(), "Play", opts)
//		c.AddChild(snaek.RootWidget, btn.ID)
//		if btn.Clicked() {
//			// react to last frame's click
//		}
//	}, nil)
//	ctx.Animate(dt)
//	r.Draw(cmds)
//
// [Context.Frame] runs the steps in order: [Context.BeginFrame], the build
// callback, [Context.SolveLayout], [Context.DrawWidgets], the overlay
// callback, [Context.FreeUntouchedWidgets] and [Context.React].
//
// # Widgets and keys
//
// [Context.BuildWidget] takes [Props] and returns the [Reaction] the widget
// had at the end of the previous frame. Keys come from [Key], which hashes
// the call site and optional loop indices, or from [KeyOf] for widgets a
// component creates on behalf of a parent key. Widgets not rebuilt during a
// frame are freed and their slots reused.
//
// # Layout
//
// Each axis is [Fixed], [Hug] or [Fill]. Children are either stacked over
// the parent's inner rect or laid out with [FlexH]/[FlexV]; Fill children
// share the space left on the main axis. [Anchor] values place a widget's
// origin point onto a point of its parent.
//
// # Rendering
//
// [Context.DrawWidgets] emits [DrawCommand] values which a [Renderer]
// interprets into ARGB [Bitmap] layers. BeginComposite/EndComposite draw a
// group on a scratch layer and blend it down in one step with any [CompFunc].
// Sprite and text blits can be recolored through AND/OR masks.
//
// [Ebitengine]: https://ebitengine.org
package snaek
