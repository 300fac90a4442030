package graphics

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	Advance  int
}

// FontAtlas is a baked ASCII glyph sheet: white texels whose alpha is the
// glyph coverage. Row 0 is the top of the sheet and maps to v = 0.
type FontAtlas struct {
	Image      *image.RGBA
	Characters map[rune]FontCharacter
	LineHeight float32
}

const atlasWidth = 512

// BuildFontAtlas rasterizes the printable ASCII range of a TrueType/OpenType
// font at the given pixel size.
func BuildFontAtlas(fontBytes []byte, fontPixels float64) (*FontAtlas, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: fontPixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const padding = 1
	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}

	// First pass: collect glyphs and pack them into rows
	var glyphs []glyph
	offsetX, offsetY, rowHeight := 0, 0, 0
	places := make(map[rune]image.Point)
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, glyph{r, dr, mask, maskp, advance})
		gw, gh := dr.Dx(), dr.Dy()
		if gw == 0 || gh == 0 {
			continue
		}
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		places[r] = image.Pt(offsetX, offsetY)
		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("font has no printable ASCII glyphs")
	}

	atlasH := 1
	for atlasH < offsetY+rowHeight {
		atlasH *= 2
	}
	alpha := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))

	// Second pass: render each glyph into the atlas and record metrics
	chars := make(map[rune]FontCharacter, len(glyphs))
	for _, g := range glyphs {
		fc := FontCharacter{
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
		if p, ok := places[g.r]; ok {
			dst := image.Rectangle{Min: p, Max: p.Add(g.dr.Size())}
			draw.Draw(alpha, dst, g.mask, g.maskp, draw.Src)
			fc.AtlasX, fc.AtlasY = float32(p.X), float32(p.Y)
			fc.Width, fc.Height = float32(g.dr.Dx()), float32(g.dr.Dy())
		}
		chars[g.r] = fc
	}

	img := image.NewRGBA(alpha.Bounds())
	for i, a := range alpha.Pix {
		img.Pix[i*4+0] = 0xff
		img.Pix[i*4+1] = 0xff
		img.Pix[i*4+2] = 0xff
		img.Pix[i*4+3] = a
	}

	return &FontAtlas{
		Image:      img,
		Characters: chars,
		LineHeight: float32(face.Metrics().Height.Round()),
	}, nil
}

// Measure returns the width and tallest glyph height of text at the given scale
func (fa *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := fa.Characters[r]
		if !ok {
			fc = fa.Characters[' ']
		}
		width += float32(fc.Advance) * scale
		if fc.Height*scale > maxH {
			maxH = fc.Height * scale
		}
	}
	return width, maxH
}

// Layout returns one textured quad per visible glyph, for a y-down screen
// projection. (x, y) is the left end of the baseline.
func (fa *FontAtlas) Layout(text string, x, y, scale float32, color mgl32.Vec4) []Vertex {
	w := float32(fa.Image.Bounds().Dx())
	h := float32(fa.Image.Bounds().Dy())
	verts := make([]Vertex, 0, len(text)*4)
	for _, r := range text {
		fc, ok := fa.Characters[r]
		if !ok {
			// Skip missing glyphs
			x += float32(fa.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			x0 := x + fc.BearingX*scale
			y0 := y - fc.BearingY*scale
			x1 := x0 + fc.Width*scale
			y1 := y0 + fc.Height*scale
			u0, v0 := fc.AtlasX/w, fc.AtlasY/h
			u1, v1 := (fc.AtlasX+fc.Width)/w, (fc.AtlasY+fc.Height)/h
			verts = append(verts,
				Vertex{Pos: mgl32.Vec3{x0, y0, 0}, UV: mgl32.Vec2{u0, v0}, Color: color},
				Vertex{Pos: mgl32.Vec3{x1, y0, 0}, UV: mgl32.Vec2{u1, v0}, Color: color},
				Vertex{Pos: mgl32.Vec3{x1, y1, 0}, UV: mgl32.Vec2{u1, v1}, Color: color},
				Vertex{Pos: mgl32.Vec3{x0, y1, 0}, UV: mgl32.Vec2{u0, v1}, Color: color},
			)
		}
		x += float32(fc.Advance) * scale
	}
	return verts
}
