package snake

import (
	"fmt"

	"github.com/phanxgames/snaek"
)

var sheetSize = snaek.Size{W: 76, H: 28}

var sheetPalette = map[byte]snaek.Color{
	'k': snaek.ColorFromHex(0xff181425), // ink
	'p': snaek.ColorFromHex(0xffc0cbdc), // paper
	'w': snaek.ColorFromHex(0xffffffff),
	'g': snaek.ColorFromHex(0xff63c74d),
	'G': snaek.ColorFromHex(0xff3e8948),
	'y': snaek.ColorFromHex(0xfffee761),
	'Y': snaek.ColorFromHex(0xfffeae34),
	'r': snaek.ColorFromHex(0xffe43b44),
	'R': snaek.ColorFromHex(0xff3a1e25),
	'c': snaek.ColorFromHex(0xff2ce8f5),
	's': snaek.ColorFromHex(0xff8b9bb4),
	'S': snaek.ColorFromHex(0xff5a6988),
}

// sheetArt is pixel art keyed by region name. '.' is transparent, other
// bytes index sheetPalette.
var sheetArt = map[string][]string{
	"cursor": {
		"k...",
		"kk..",
		"kwk.",
		"kwwk",
		"kkk.",
		"..k.",
	},
	"snake_head": {
		".......",
		"GGGGG..",
		"gggggG.",
		"ggggkgG",
		"gggggG.",
		"GGGGG..",
		".......",
	},
	"snake_straight": {
		".......",
		"GGGGGGG",
		"ggggggg",
		"ggggggg",
		"ggggggg",
		"GGGGGGG",
		".......",
	},
	"snake_turn": {
		".......",
		"GGGGG..",
		"gggggG.",
		"ggggggG",
		"ggggggG",
		"GgggggG",
		".GgggG.",
	},
	"snake_end": {
		".......",
		"...GGGG",
		".GGgggg",
		"Ggggggg",
		".GGgggg",
		"...GGGG",
		".......",
	},
	"snake_tongue": {
		"..r",
		"rr.",
		"..r",
	},
	"banana_yellow": banana('y', 'Y'),
	"banana_red":    banana('r', 'R'),
	"banana_cyan":   banana('c', 'S'),
	"carved_sep_line": {
		"s",
		"w",
	},
	"snaek_icon": {
		".ggggk",
		"g.....",
		".gggg.",
		".....g",
		"ggggg.",
		"......",
	},
	"icon_minimize": {"kkkkk"},
	"icon_close": {
		"k.k",
		".k.",
		"k.k",
	},
	"icon_play": {
		"k...",
		"kkk.",
		"kkk.",
		"k...",
	},
	"icon_pause": {
		"k..k",
		"k..k",
		"k..k",
		"k..k",
	},
	"icon_restart": {
		".kkk",
		"k...",
		"k..k",
		".kk.",
	},
	"num_bang":  {"r", "r", "r", ".", "r"},
	"num_colon": {".", "r", ".", "r", "."},
}

func banana(light, dark byte) []string {
	rows := []string{
		".....k.",
		".....L.",
		"....LL.",
		"...LLD.",
		".LLLD..",
		"LLDD...",
		".......",
	}
	for i, row := range rows {
		b := []byte(row)
		for j := range b {
			switch b[j] {
			case 'L':
				b[j] = light
			case 'D':
				b[j] = dark
			}
		}
		rows[i] = string(b)
	}
	return rows
}

// sheetBevels are boxes drawn as a one-pixel bevel: top-left edge, bottom
// and right edge, then the center.
var sheetBevels = map[string][3]byte{
	"box_playfield":   {'k', 'k', 'S'},
	"box_big_carved":  {'S', 'w', 'p'},
	"box_num_display": {'k', 'k', 'k'},
	"box_text_input":  {'k', 'k', 'w'},
	"box_embossed":    {'w', 's', 'p'},
	"box_carved":      {'s', 'w', 'p'},
	"box_green":       {'k', 'k', 'g'},
	"box_red":         {'k', 'k', 'r'},
}

// digitGlyphs are 3x5 digit patterns shared by the small and big numbers.
var digitGlyphs = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", ".##", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", "..#", ".#.", ".#."},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

// GenerateSheet paints the built-in artwork for every region of atlas onto a
// fresh page.
func GenerateSheet(atlas *snaek.Atlas) *snaek.Bitmap {
	page := snaek.NewBitmap(sheetSize)
	region := func(name string) snaek.Rect {
		_, s := atlas.Sprite(name)
		return s.Rect
	}

	for name, art := range sheetArt {
		paintArt(page, region(name), art, 1)
	}
	for name, bevel := range sheetBevels {
		paintBevel(page, region(name), bevel)
	}

	for i, glyph := range digitGlyphs {
		paintGlyph(page, region(fmt.Sprintf("num_%d", i)).Pos(), glyph, 'r', 1)
	}

	ink := sheetPalette['k']
	holder := region("bignum_placeholder")
	page.FillArea(ink, holder, snaek.Src)
	paintGlyph(page, holder.Pos().Add(snaek.Pos{X: 1, Y: 2}), digitGlyphs[8], 'R', 2)
	for i, glyph := range digitGlyphs {
		r := region(fmt.Sprintf("bignum_%d", i))
		paintGlyph(page, r.Pos().Add(snaek.Pos{X: 1, Y: 2}), glyph, 'r', 2)
	}
	return page
}

func paintArt(page *snaek.Bitmap, r snaek.Rect, art []string, scale int) {
	for y, row := range art {
		for x := 0; x < len(row) && x < int(r.W); x++ {
			c, ok := sheetPalette[row[x]]
			if !ok {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					page.Set(int(r.X)+x*scale+dx, int(r.Y)+y*scale+dy, c)
				}
			}
		}
	}
}

func paintGlyph(page *snaek.Bitmap, at snaek.Pos, glyph [5]string, color byte, scale int) {
	art := make([]string, len(glyph))
	for i, row := range glyph {
		b := []byte(row)
		for j := range b {
			if b[j] == '#' {
				b[j] = color
			}
		}
		art[i] = string(b)
	}
	paintArt(page, snaek.Rect{X: at.X, Y: at.Y, W: uint16(3 * scale), H: uint16(5 * scale)}, art, scale)
}

func paintBevel(page *snaek.Bitmap, r snaek.Rect, bevel [3]byte) {
	light, dark, center := sheetPalette[bevel[0]], sheetPalette[bevel[1]], sheetPalette[bevel[2]]
	page.FillArea(center, r, snaek.Src)
	right, bottom := int(r.X)+int(r.W)-1, int(r.Y)+int(r.H)-1
	for x := int(r.X); x <= right; x++ {
		page.Set(x, int(r.Y), light)
		page.Set(x, bottom, dark)
	}
	for y := int(r.Y); y <= bottom; y++ {
		page.Set(int(r.X), y, light)
		page.Set(right, y, dark)
	}
}
