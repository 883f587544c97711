package snaek

import (
	"encoding/json"
	"fmt"
)

// Atlas holds named sprites parsed from a TexturePacker JSON table. Frames may
// carry a "slice" object with nine-slice guides, which turns them into
// nine-slicing sprites.
type Atlas struct {
	regions map[string]atlasRegion
	pages   []SheetID

	placeholder SheetID
}

type atlasRegion struct {
	page   int
	sprite Sprite
	slice  *jsonSlice
}

// Len returns the number of named regions.
func (a *Atlas) Len() int { return len(a.regions) }

// Bind registers page bitmaps with r, in page order, plus a magenta
// placeholder used for unknown names. A nil page is replaced by a magenta
// bitmap covering all of its regions, so a missing image still draws.
func (a *Atlas) Bind(r *Renderer, pages ...*Bitmap) {
	a.placeholder = r.RegisterSheet(PlaceholderBitmap(Size{W: 1, H: 1}))
	a.pages = a.pages[:0]
	for i, p := range pages {
		if p == nil {
			Logger().Warn("atlas page missing, drawing placeholder", "page", i)
			p = PlaceholderBitmap(a.pageExtent(i))
		}
		a.pages = append(a.pages, r.RegisterSheet(p))
	}
}

// Sprite returns the sprite called name. Unknown names log a warning and
// return a 1x1 sprite on the placeholder sheet.
func (a *Atlas) Sprite(name string) (SheetID, Sprite) {
	reg, ok := a.regions[name]
	if !ok {
		Logger().Warn("atlas region not found, using magenta placeholder", "name", name)
		return a.placeholder, NewSprite(0, 0, 1, 1)
	}
	return a.sheet(reg.page), reg.sprite
}

// NineSlice returns the nine-slicing sprite called name. A region without
// guides slices into a single center part.
func (a *Atlas) NineSlice(name string) (SheetID, NineSlicingSprite) {
	id, s := a.Sprite(name)
	n := NineSlicingSprite{Sprite: s, VR: s.Rect.W, HB: s.Rect.H}
	if reg, ok := a.regions[name]; ok && reg.slice != nil {
		n.VL, n.VR, n.HT, n.HB = reg.slice.VL, reg.slice.VR, reg.slice.HT, reg.slice.HB
	}
	return id, n
}

// WidgetSprite returns name as widget sprite props, nine-sliced when the
// frame has guides.
func (a *Atlas) WidgetSprite(name string) WidgetSprite {
	if reg, ok := a.regions[name]; ok && reg.slice != nil {
		return NineSliceSprite(a.NineSlice(name))
	}
	return SimpleSprite(a.Sprite(name))
}

// pageExtent is the smallest size containing every region of page.
func (a *Atlas) pageExtent(page int) Size {
	var w, h int
	for _, reg := range a.regions {
		if reg.page != page {
			continue
		}
		r := reg.sprite.Rect
		w = max(w, int(r.X)+int(r.W))
		h = max(h, int(r.Y)+int(r.H))
	}
	return Size{W: satU16(w), H: satU16(h)}
}

func (a *Atlas) sheet(page int) SheetID {
	if page < len(a.pages) {
		return a.pages[page]
	}
	return a.placeholder
}

// PlaceholderBitmap returns an opaque magenta bitmap.
func PlaceholderBitmap(size Size) *Bitmap {
	b := NewBitmap(size)
	b.Fill(Color{A: 0xFF, R: 0xFF, B: 0xFF}, Src)
	return b
}

// LoadAtlas parses TexturePacker JSON data. Supports both the hash format
// (single "frames" object) and the array format ("textures" array with
// per-page frame lists).
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	var shape struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &shape); err != nil {
		return nil, fmt.Errorf("snaek: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{regions: make(map[string]atlasRegion)}

	switch {
	case shape.Textures != nil:
		if err := parseArrayFormat(shape.Textures, atlas); err != nil {
			return nil, err
		}
	case shape.Frames != nil:
		if err := parseHashFrames(shape.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("snaek: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSlice struct {
	VL uint16 `json:"vl"`
	VR uint16 `json:"vr"`
	HT uint16 `json:"ht"`
	HB uint16 `json:"hb"`
}

type jsonFrame struct {
	Frame jsonRect   `json:"frame"`
	Slice *jsonSlice `json:"slice,omitempty"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("snaek: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, page)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("snaek: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, i)
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page int) atlasRegion {
	return atlasRegion{
		page:   page,
		sprite: NewSprite(satI16(f.Frame.X), satI16(f.Frame.Y), satU16(f.Frame.W), satU16(f.Frame.H)),
		slice:  f.Slice,
	}
}
