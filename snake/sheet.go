package snake

import (
	_ "embed"
	"fmt"

	"github.com/phanxgames/snaek"
)

//go:embed snaeksheet.json
var sheetJSON []byte

// Sheet is the snaek sprite table. Every sprite lives on the page registered
// under ID.
type Sheet struct {
	ID snaek.SheetID

	Cursor snaek.Sprite

	// Snake parts face right; the turn connects left and down and the end
	// connects to its right neighbour.
	SnakeHead     snaek.Sprite
	SnakeStraight snaek.Sprite
	SnakeTurn     snaek.Sprite
	SnakeEnd      snaek.Sprite
	SnakeTongue   snaek.Sprite

	BananaYellow snaek.Sprite
	BananaRed    snaek.Sprite
	BananaCyan   snaek.Sprite

	BoxPlayfield   snaek.NineSlicingSprite
	BoxBigCarved   snaek.NineSlicingSprite
	BoxNumDisplay  snaek.NineSlicingSprite
	BoxTextInput   snaek.NineSlicingSprite
	BoxEmbossed    snaek.NineSlicingSprite
	BoxCarved      snaek.NineSlicingSprite
	BoxGreen       snaek.NineSlicingSprite
	BoxRed         snaek.NineSlicingSprite
	CarvedSepLine  snaek.Sprite
	Icon           snaek.Sprite
	IconMinimize   snaek.Sprite
	IconClose      snaek.Sprite
	IconPlay       snaek.Sprite
	IconPause      snaek.Sprite
	IconRestart    snaek.Sprite
	NumBang        snaek.Sprite
	NumColon       snaek.Sprite
	Nums           [10]snaek.Sprite
	BigPlaceholder snaek.Sprite
	BigNums        [10]snaek.Sprite
}

// LoadSheet registers the sprite sheet with r. page is the decoded sheet
// image; nil uses the built-in generated artwork.
func LoadSheet(r *snaek.Renderer, page *snaek.Bitmap) (*Sheet, error) {
	atlas, err := snaek.LoadAtlas(sheetJSON)
	if err != nil {
		return nil, fmt.Errorf("snake: load sheet: %w", err)
	}
	if page == nil {
		page = GenerateSheet(atlas)
	}
	atlas.Bind(r, page)

	// Every region sits on the one page, so any lookup yields its sheet ID.
	s := &Sheet{}
	s.ID, s.Icon = atlas.Sprite("snaek_icon")
	sprite := func(name string) snaek.Sprite {
		_, sp := atlas.Sprite(name)
		return sp
	}
	box := func(name string) snaek.NineSlicingSprite {
		_, n := atlas.NineSlice(name)
		return n
	}

	s.Cursor = sprite("cursor")
	s.SnakeHead = sprite("snake_head")
	s.SnakeStraight = sprite("snake_straight")
	s.SnakeTurn = sprite("snake_turn")
	s.SnakeEnd = sprite("snake_end")
	s.SnakeTongue = sprite("snake_tongue")
	s.BananaYellow = sprite("banana_yellow")
	s.BananaRed = sprite("banana_red")
	s.BananaCyan = sprite("banana_cyan")

	s.BoxPlayfield = box("box_playfield")
	s.BoxBigCarved = box("box_big_carved")
	s.BoxNumDisplay = box("box_num_display")
	s.BoxTextInput = box("box_text_input")
	s.BoxEmbossed = box("box_embossed")
	s.BoxCarved = box("box_carved")
	s.BoxGreen = box("box_green")
	s.BoxRed = box("box_red")

	s.CarvedSepLine = sprite("carved_sep_line")
	s.IconMinimize = sprite("icon_minimize")
	s.IconClose = sprite("icon_close")
	s.IconPlay = sprite("icon_play")
	s.IconPause = sprite("icon_pause")
	s.IconRestart = sprite("icon_restart")

	s.NumBang = sprite("num_bang")
	s.NumColon = sprite("num_colon")
	for i := range s.Nums {
		s.Nums[i] = sprite(fmt.Sprintf("num_%d", i))
	}
	s.BigPlaceholder = sprite("bignum_placeholder")
	for i := range s.BigNums {
		s.BigNums[i] = sprite(fmt.Sprintf("bignum_%d", i))
	}
	return s, nil
}

// Box returns n as widget sprite props on this sheet.
func (s *Sheet) Box(n snaek.NineSlicingSprite) snaek.WidgetSprite {
	return snaek.NineSliceSprite(s.ID, n)
}

// BigDigits returns the sprites of the boxed score counter.
func (s *Sheet) BigDigits() snaek.DigitSprites {
	return snaek.DigitSprites{
		Sheet:       s.ID,
		Box:         s.BoxNumDisplay,
		Placeholder: s.BigPlaceholder,
		Digits:      s.BigNums,
	}
}

// Banana returns the banana sprite for the n-th banana: every fifth is red
// and every tenth cyan.
func (s *Sheet) Banana(n int) snaek.Sprite {
	switch {
	case n > 0 && n%10 == 0:
		return s.BananaCyan
	case n > 0 && n%5 == 0:
		return s.BananaRed
	default:
		return s.BananaYellow
	}
}
