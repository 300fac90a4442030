package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/webp"
)

// PlaceholderSize is the edge length of the texture used for missing files
const PlaceholderSize = 256

// TextureSet loads named textures through an Uploader. Files that cannot be
// read or decoded are replaced by a white placeholder so startup never fails
// on assets.
type TextureSet struct {
	up          Uploader
	dir         string
	handles     map[string]TextureHandle
	placeholder TextureHandle
	missing     []string
}

func NewTextureSet(up Uploader, dir string) *TextureSet {
	return &TextureSet{
		up:      up,
		dir:     dir,
		handles: make(map[string]TextureHandle),
	}
}

// Load decodes file (relative to the set's directory), flips it so row 0 is
// the bottom, uploads it and stores it under name.
func (ts *TextureSet) Load(name, file string) TextureHandle {
	path := filepath.Join(ts.dir, file)
	img, err := LoadImage(path)
	if err != nil {
		log.Printf("texture %s: %v, using placeholder", name, err)
		return ts.usePlaceholder(name)
	}

	h, err := ts.up.Upload(FlipVertical(img))
	if err != nil {
		log.Printf("texture %s: %v, using placeholder", name, err)
		return ts.usePlaceholder(name)
	}
	ts.handles[name] = h
	return h
}

// Register uploads an already prepared image as is
func (ts *TextureSet) Register(name string, img *image.RGBA) (TextureHandle, error) {
	h, err := ts.up.Upload(img)
	if err != nil {
		return 0, fmt.Errorf("upload %s: %w", name, err)
	}
	ts.handles[name] = h
	return h, nil
}

// Get returns the handle stored under name, or 0 when there is none
func (ts *TextureSet) Get(name string) TextureHandle {
	return ts.handles[name]
}

// Len returns the number of named textures
func (ts *TextureSet) Len() int {
	return len(ts.handles)
}

// Missing lists the names that fell back to the placeholder, sorted
func (ts *TextureSet) Missing() []string {
	out := append([]string(nil), ts.missing...)
	sort.Strings(out)
	return out
}

// Placeholder returns the handle shared by every missing texture, uploading it on first use
func (ts *TextureSet) Placeholder() TextureHandle {
	if ts.placeholder == 0 {
		h, err := ts.up.Upload(Placeholder())
		if err != nil {
			log.Printf("placeholder texture: %v", err)
			return 0
		}
		ts.placeholder = h
	}
	return ts.placeholder
}

func (ts *TextureSet) usePlaceholder(name string) TextureHandle {
	h := ts.Placeholder()
	ts.handles[name] = h
	ts.missing = append(ts.missing, name)
	return h
}

// LoadImage decodes a jpeg, png, webp or bmp file into RGBA
func LoadImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}

// FlipVertical mirrors an image top to bottom
func FlipVertical(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	h := float64(b.Dy())
	// source to destination: x' = x - minX, y' = h - (y - minY)
	s2d := f64.Aff3{
		1, 0, -float64(b.Min.X),
		0, -1, h + float64(b.Min.Y),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}

// Placeholder returns an opaque white square
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
