package core

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const atlasSize = 512

type TextVertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]float32
}

// TextItem is one string placed in pixel coordinates from the top-left corner.
type TextItem struct {
	Text  string
	X, Y  float32
	Scale float32
	Color [4]float32
}

type glyph struct {
	uvMin [2]float32
	uvMax [2]float32
	size  [2]float32
	off   [2]float32
	adv   float32
}

// TextRenderer rasterises printable ASCII into a single-channel atlas and
// turns text items into textured quads.
type TextRenderer struct {
	Atlas      *image.Alpha
	glyphs     map[rune]glyph
	ascent     float32
	lineHeight float32
}

// NewDefaultTextRenderer uses the embedded Go Regular font.
func NewDefaultTextRenderer(size float64) (*TextRenderer, error) {
	return NewTextRenderer(goregular.TTF, size)
}

func NewTextRenderer(ttf []byte, size float64) (*TextRenderer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	defer face.Close()

	tr := &TextRenderer{
		Atlas:  image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize)),
		glyphs: make(map[rune]glyph),
	}

	metrics := face.Metrics()
	tr.ascent = float32(metrics.Ascent.Ceil())
	tr.lineHeight = float32(metrics.Height.Ceil())

	x, y, rowHeight := 2, 2, 0
	for r := rune(32); r < 127; r++ {
		bounds, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		w, h := bounds.Dx(), bounds.Dy()
		if x+w >= atlasSize {
			x = 2
			y += rowHeight + 4
			rowHeight = 0
		}
		if y+h >= atlasSize {
			return nil, fmt.Errorf("glyph atlas overflow at %q (font size %.1f)", r, size)
		}

		draw.Draw(tr.Atlas, image.Rect(x, y, x+w, y+h), mask, maskp, draw.Src)

		tr.glyphs[r] = glyph{
			uvMin: [2]float32{float32(x) / atlasSize, float32(y) / atlasSize},
			uvMax: [2]float32{float32(x+w) / atlasSize, float32(y+h) / atlasSize},
			size:  [2]float32{float32(w), float32(h)},
			off:   [2]float32{float32(bounds.Min.X), float32(bounds.Min.Y)},
			adv:   float32(adv) / 64.0,
		}

		x += w + 4
		if h > rowHeight {
			rowHeight = h
		}
	}

	return tr, nil
}

func (tr *TextRenderer) HasGlyph(r rune) bool {
	_, ok := tr.glyphs[r]
	return ok
}

func (tr *TextRenderer) LineHeight(scale float32) float32 {
	return tr.lineHeight * scale
}

// BuildVertices lays out items as two triangles per glyph in clip space.
func (tr *TextRenderer) BuildVertices(items []TextItem, screenW, screenH int) []TextVertex {
	if screenW <= 0 || screenH <= 0 {
		return nil
	}
	sw, sh := float32(screenW), float32(screenH)
	vertices := make([]TextVertex, 0, len(items)*6*16)

	for _, item := range items {
		scale := item.Scale
		if scale == 0 {
			scale = 1
		}
		penX := item.X
		penY := item.Y + tr.ascent*scale

		for _, r := range item.Text {
			if r == '\n' {
				penX = item.X
				penY += tr.lineHeight * scale
				continue
			}
			g, ok := tr.glyphs[r]
			if !ok {
				continue
			}

			x0 := (penX+g.off[0]*scale)/sw*2 - 1
			y0 := 1 - (penY+g.off[1]*scale)/sh*2
			x1 := (penX+(g.off[0]+g.size[0])*scale)/sw*2 - 1
			y1 := 1 - (penY+(g.off[1]+g.size[1])*scale)/sh*2

			vertices = append(vertices,
				TextVertex{Pos: [2]float32{x0, y0}, UV: [2]float32{g.uvMin[0], g.uvMin[1]}, Color: item.Color},
				TextVertex{Pos: [2]float32{x1, y0}, UV: [2]float32{g.uvMax[0], g.uvMin[1]}, Color: item.Color},
				TextVertex{Pos: [2]float32{x0, y1}, UV: [2]float32{g.uvMin[0], g.uvMax[1]}, Color: item.Color},
				TextVertex{Pos: [2]float32{x1, y0}, UV: [2]float32{g.uvMax[0], g.uvMin[1]}, Color: item.Color},
				TextVertex{Pos: [2]float32{x1, y1}, UV: [2]float32{g.uvMax[0], g.uvMax[1]}, Color: item.Color},
				TextVertex{Pos: [2]float32{x0, y1}, UV: [2]float32{g.uvMin[0], g.uvMax[1]}, Color: item.Color},
			)

			penX += g.adv * scale
		}
	}

	return vertices
}
