package snaek

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const asciiGlyphCount = 128

// glyphSpacing is the horizontal gap between two glyphs, in pixels.
const glyphSpacing = 1

// BitmapFont maps printable ASCII characters to sprites of a font sheet.
// Characters without a glyph render as '?'.
type BitmapFont struct {
	lineHeight uint16

	glyphs [asciiGlyphCount]Sprite
	set    [asciiGlyphCount]bool
}

// Text is a string measured once against a font, ready to be drawn.
type Text struct {
	Str  string
	Size Size
}

// glyph returns the sprite for r, falling back to '?' and then to nothing.
func (f *BitmapFont) glyph(r rune) (Sprite, bool) {
	if r >= 0 && r < asciiGlyphCount && f.set[r] {
		return f.glyphs[r], true
	}
	if f.set['?'] {
		return f.glyphs['?'], true
	}
	return Sprite{}, false
}

// LineHeight returns the height of a line of text.
func (f *BitmapFont) LineHeight() uint16 { return f.lineHeight }

// Measure returns the size of s drawn on a single line.
func (f *BitmapFont) Measure(s string) Size {
	var w int
	n := 0
	for _, r := range s {
		g, ok := f.glyph(r)
		if !ok {
			continue
		}
		if n > 0 {
			w += glyphSpacing
		}
		w += int(g.Rect.W)
		n++
	}
	if n == 0 {
		return Size{}
	}
	return Size{W: satU16(w), H: f.lineHeight}
}

// Text measures s and returns a drawable [Text].
func (f *BitmapFont) Text(s string) Text {
	return Text{Str: s, Size: f.Measure(s)}
}

// setGlyph registers the sprite for r and grows the line height if needed.
func (f *BitmapFont) setGlyph(r rune, s Sprite) {
	if r < 0 || r >= asciiGlyphCount {
		return
	}
	f.glyphs[r] = s
	f.set[r] = true
	if s.Rect.H > f.lineHeight {
		f.lineHeight = s.Rect.H
	}
}

// DefaultASCIIFont returns the built-in 6px font laid out on a single row of
// the ascii-chars sheet.
func DefaultASCIIFont() *BitmapFont {
	f := &BitmapFont{}
	for _, g := range defaultASCIIGlyphs {
		f.setGlyph(g.r, NewSprite(g.x, 0, g.w, 6))
	}
	return f
}

var defaultASCIIGlyphs = [...]struct {
	r rune
	x int16
	w uint16
}{
	{' ', 0, 2},

	{'A', 3, 4}, {'B', 8, 4}, {'C', 13, 4}, {'D', 18, 4}, {'E', 23, 3},
	{'F', 27, 3}, {'G', 31, 4}, {'H', 36, 4}, {'I', 41, 3}, {'J', 45, 3},
	{'K', 49, 4}, {'L', 54, 3}, {'M', 58, 5}, {'N', 64, 4}, {'O', 69, 4},
	{'P', 74, 4}, {'Q', 79, 4}, {'R', 84, 4}, {'S', 89, 4}, {'T', 94, 3},
	{'U', 98, 4}, {'V', 103, 5}, {'W', 109, 5}, {'X', 115, 5}, {'Y', 121, 4},
	{'Z', 126, 4},

	{'a', 131, 4}, {'b', 136, 3}, {'c', 140, 3}, {'d', 144, 4}, {'e', 149, 3},
	{'f', 153, 2}, {'g', 156, 3}, {'h', 160, 3}, {'i', 164, 1}, {'j', 166, 3},
	{'k', 170, 3}, {'l', 174, 1}, {'m', 176, 5}, {'n', 182, 3}, {'o', 186, 3},
	{'p', 190, 3}, {'q', 194, 3}, {'r', 198, 3}, {'s', 202, 3}, {'t', 206, 3},
	{'u', 210, 3}, {'v', 214, 3}, {'w', 218, 5}, {'x', 224, 3}, {'y', 228, 3},
	{'z', 232, 4},

	{'0', 237, 4}, {'1', 242, 3}, {'2', 246, 4}, {'3', 251, 4}, {'4', 256, 4},
	{'5', 261, 4}, {'6', 266, 4}, {'7', 271, 4}, {'8', 276, 4}, {'9', 281, 4},

	{'!', 286, 1}, {'?', 288, 3}, {':', 292, 1}, {';', 294, 2}, {',', 297, 2},
	{'.', 300, 1}, {'*', 302, 3}, {'#', 306, 5}, {'\'', 312, 1}, {'"', 314, 3},
	{'[', 318, 2}, {']', 321, 2}, {'(', 324, 2}, {')', 327, 2}, {'{', 330, 3},
	{'}', 334, 3}, {'<', 338, 3}, {'>', 342, 3}, {'-', 346, 3}, {'+', 350, 3},
	{'/', 354, 3}, {'=', 358, 3}, {'_', 362, 4},
}

// LoadBitmapFont parses BMFont .fnt text-format data into a font. Only ASCII
// glyphs are kept; offsets, advances and kerning are ignored because glyphs
// are laid out edge to edge with fixed spacing.
func LoadBitmapFont(fntData []byte) (*BitmapFont, error) {
	f := &BitmapFont{}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int
	var lineHeight int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "common":
			if v, ok := fields["lineHeight"]; ok {
				lineHeight, _ = strconv.Atoi(v)
			}
		case "char":
			charCount++
			id := atoiField(fields, "id")
			f.setGlyph(rune(id), NewSprite(
				int16(atoiField(fields, "x")),
				int16(atoiField(fields, "y")),
				uint16(atoiField(fields, "width")),
				uint16(atoiField(fields, "height")),
			))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("snaek: error reading .fnt data: %w", err)
	}
	if lineHeight == 0 {
		return nil, fmt.Errorf("snaek: .fnt data missing common lineHeight")
	}
	if charCount == 0 {
		return nil, fmt.Errorf("snaek: .fnt data has no char definitions")
	}
	f.lineHeight = satU16(lineHeight)
	return f, nil
}

func atoiField(fields map[string]string, key string) int {
	v, _ := strconv.Atoi(fields[key])
	return v
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map. Quoted values may
// contain spaces.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for len(s) > 0 {
		s = strings.TrimLeft(s, " ")
		eq := strings.IndexByte(s, '=')
		if eq == -1 {
			break
		}
		key := s[:eq]
		s = s[eq+1:]
		var val string
		if strings.HasPrefix(s, `"`) {
			end := strings.IndexByte(s[1:], '"')
			if end == -1 {
				val, s = s[1:], ""
			} else {
				val, s = s[1:end+1], s[end+2:]
			}
		} else {
			sp := strings.IndexByte(s, ' ')
			if sp == -1 {
				val, s = s, ""
			} else {
				val, s = s[:sp], s[sp:]
			}
		}
		fields[key] = val
	}
	return fields
}
