package snaek

import "testing"

var testDigits = DigitSprites{
	Sheet:       2,
	Box:         NewNineSlice(0, 0, 9, 9, 3, 6, 3, 6),
	Placeholder: NewSprite(100, 0, 5, 7),
	Digits: [10]Sprite{
		NewSprite(0, 10, 5, 7), NewSprite(5, 10, 5, 7), NewSprite(10, 10, 5, 7),
		NewSprite(15, 10, 5, 7), NewSprite(20, 10, 5, 7), NewSprite(25, 10, 5, 7),
		NewSprite(30, 10, 5, 7), NewSprite(35, 10, 5, 7), NewSprite(40, 10, 5, 7),
		NewSprite(45, 10, 5, 7),
	},
}

// shownDigits returns the digit sprite drawn in each slot, or -1 for a slot
// showing only the placeholder.
func shownDigits(t *testing.T, c *Context, display WidgetID) []int {
	t.Helper()
	var out []int
	for _, holder := range c.Children(display) {
		kids := c.Children(holder)
		if len(kids) == 0 {
			out = append(out, -1)
			continue
		}
		s := mustWidget(t, c, kids[0]).Props().Sprite.Sprite
		digit := -1
		for i, d := range testDigits.Digits {
			if d == s {
				digit = i
			}
		}
		out = append(out, digit)
	}
	return out
}

func TestBig3DigitsDisplay(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{-1, -1, 0}},
		{7, []int{-1, -1, 7}},
		{42, []int{-1, 4, 2}},
		{305, []int{3, 0, 5}},
		{1234, []int{2, 3, 4}},
		{-5, []int{-1, -1, 0}},
	}
	for _, tt := range tests {
		c := NewContext(Size{W: 100, H: 100})
		c.BeginFrame()
		display := c.Big3DigitsDisplay(Key(), tt.n, testDigits)
		c.AddChild(RootWidget, display.ID)

		got := shownDigits(t, c, display.ID)
		if len(got) != 3 {
			t.Fatalf("n=%d: %d slots, want 3", tt.n, len(got))
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("n=%d: slots = %v, want %v", tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestBig3DigitsDisplayLayout(t *testing.T) {
	c := NewContext(Size{W: 100, H: 100})
	c.BeginFrame()
	display := c.Big3DigitsDisplay(WidgetKey(9), 123, testDigits)
	c.AddChild(RootWidget, display.ID)
	c.SolveLayout()

	// Three 5px slots, two 2px gaps, 3px side padding; 7px tall plus 2px
	// top and bottom.
	want := Size{W: 5*3 + 2*2 + 3*2, H: 7 + 2*2}
	if got := mustWidget(t, c, display.ID).SolvedRect().Size(); got != want {
		t.Errorf("display size = %v, want %v", got, want)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBig3DigitsDisplayKeysAreDistinct(t *testing.T) {
	c := NewContext(Size{W: 100, H: 100})
	c.BeginFrame()
	display := c.Big3DigitsDisplay(WidgetKey(9), 888, testDigits)
	c.AddChild(RootWidget, display.ID)

	// 1 display + 3 holders + 3 digits, plus the root.
	if got := c.Stats().Live; got != 8 {
		t.Errorf("live widgets = %d, want 8", got)
	}
}

func TestBtnBoxPressedShiftsDown(t *testing.T) {
	normal := NineSliceSprite(0, NewNineSlice(0, 0, 6, 6, 2, 4, 2, 4))
	pressed := NineSliceSprite(0, NewNineSlice(6, 0, 6, 6, 2, 4, 2, 4))
	opts := BtnBoxOptions{
		Size:    SizeFixed(20, 10),
		Normal:  normal,
		Pressed: pressed,
	}

	c := NewContext(Size{W: 40, H: 40})
	var m Mouse
	var label WidgetID
	build := func(c *Context) {
		btn := c.TextButton(WidgetKey(5), "Go", opts)
		c.AddChild(RootWidget, btn.ID)
		label, _ = c.Lookup(KeyOf(WidgetKey(5)))
	}

	c.Frame(m, build, nil)
	btnID, _ := c.Lookup(WidgetKey(5))
	if got := mustWidget(t, c, btnID).Props().Sprite; got != normal {
		t.Errorf("idle sprite = %+v, want normal", got)
	}

	m.Update(5, 5, true, false, false)
	c.Frame(m, build, nil)
	c.Frame(m, build, nil)

	w := mustWidget(t, c, btnID)
	if w.Props().Sprite != pressed {
		t.Errorf("held sprite = %+v, want pressed", w.Props().Sprite)
	}
	if w.Props().Offset != (Pos{X: 1, Y: 1}) {
		t.Errorf("held offset = %v, want (1,1)", w.Props().Offset)
	}
	if got := mustWidget(t, c, label).Props().Offset; got != (Pos{X: 1, Y: 1}) {
		t.Errorf("label offset = %v, want (1,1)", got)
	}

	m.Update(5, 5, false, false, false)
	c.Frame(m, build, nil)
	if !mustWidget(t, c, btnID).Clicked() {
		t.Error("release over the button did not click")
	}
}

func TestBtnIconHoverFadesBackground(t *testing.T) {
	c := NewContext(Size{W: 40, H: 40})
	opts := BtnIconOptions{
		Icon:       NewSprite(0, 0, 4, 4),
		Size:       SizeFixed(8, 8),
		HoverColor: testRed,
	}
	build := func(c *Context) {
		btn := c.BtnIcon(WidgetKey(3), opts)
		c.AddChild(RootWidget, btn.ID)
	}

	var m Mouse
	c.Frame(m, build, nil)
	id, _ := c.Lookup(WidgetKey(3))
	if a := mustWidget(t, c, id).Props().Color.A; a != 0 {
		t.Errorf("idle background alpha = %d, want 0", a)
	}

	m.Update(2, 2, false, false, false)
	c.Frame(m, build, nil)
	c.Animate(HoverFadeDuration * 2)
	c.Frame(m, build, nil)

	if got := mustWidget(t, c, id).Props().Color; got != testRed {
		t.Errorf("hovered background = %v, want %v", got, testRed)
	}

	icon, ok := c.Lookup(KeyOf(WidgetKey(3)))
	if !ok {
		t.Fatal("icon widget missing")
	}
	iw := mustWidget(t, c, icon)
	if iw.Props().Comp != CompXor {
		t.Errorf("icon comp = %v, want xor", iw.Props().Comp)
	}
	if r := iw.SolvedRect(); r != (Rect{X: 2, Y: 2, W: 4, H: 4}) {
		t.Errorf("icon rect = %v, want centered 4x4 at (2,2)", r)
	}
}

func TestUpdatePropsIgnoresUnknown(t *testing.T) {
	c := NewContext(Size{W: 10, H: 10})
	called := false
	c.UpdateProps(99, func(*Props) { called = true })
	if called {
		t.Error("UpdateProps ran for an unknown widget")
	}
}
