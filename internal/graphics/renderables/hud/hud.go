package hud

import (
	"fmt"
	"mini-orrery/internal/camera"
	"mini-orrery/internal/config"
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"
	"mini-orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	FontPixels = 18
	Margin     = 12
)

var (
	textColor = colorful.Hcl(210, 0.25, 0.85).Clamped()
	warnColor = colorful.Hcl(30, 0.9, 0.6).Clamped()
)

// HUD implements the status line in the top-left corner
type HUD struct {
	textures *graphics.TextureSet
	atlas    *graphics.FontAtlas
	font     graphics.TextureHandle
}

// NewHUD creates a HUD that registers its font atlas in textures on Init
func NewHUD(textures *graphics.TextureSet) *HUD {
	return &HUD{textures: textures}
}

// Init bakes the font atlas and uploads it
func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas(goregular.TTF, FontPixels)
	if err != nil {
		return fmt.Errorf("hud font: %w", err)
	}
	font, err := h.textures.Register(graphics.TexFont, atlas.Image)
	if err != nil {
		return fmt.Errorf("hud font: %w", err)
	}
	h.atlas, h.font = atlas, font
	return nil
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	if !config.GetHUDEnabled() || h.atlas == nil {
		return
	}
	defer profiling.Track("renderer.hud")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	c.SetProjection(graphics.OverlayProjection(ctx.Width, ctx.Height))
	c.SetView(mgl32.Ident4())
	graphics.Modify(c, func(st *graphics.RenderState) {
		st.DepthTest = false
		st.Texturing = true
		st.TexMode = graphics.TexModulate
	})
	c.BindTexture(h.font)
	c.SetColor(graphics.White)

	text, warn := StatusText(ctx.Scene)
	col := textColor
	if warn {
		col = warnColor
	}
	color := mgl32.Vec4{float32(col.R), float32(col.G), float32(col.B), 1}
	verts := h.atlas.Layout(text, Margin, Margin+h.atlas.LineHeight, 1, color)
	if len(verts) > 0 {
		c.DrawPrimitive(mgl32.Ident4(), graphics.Quads, verts)
	}
}

// StatusText describes the current mode with its key hints. warn is set
// while the rocket is being swallowed.
func StatusText(s *scene.State) (text string, warn bool) {
	if s.Mode() == camera.ModeOverview {
		return "OVERVIEW   [X] chase  [H] hud  [Esc] quit", false
	}
	if s.Rocket.IsCollapsing() {
		return "COLLAPSING   [Z] overview  [Esc] quit", true
	}
	return fmt.Sprintf("CHASE   speed %.0f   [W/S] thrust  [Z] overview  [H] hud  [Esc] quit", s.Rocket.Speed()), false
}

// Dispose forgets the atlas; the texture itself belongs to the canvas
func (h *HUD) Dispose() {
	h.atlas = nil
}

func (h *HUD) SetViewport(width, height int) {}
