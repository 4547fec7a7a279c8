// Package render paints a scene.Snapshot. It only reads the snapshot and never
// feeds anything back into the simulation.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/raccoonrun/assets"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/scene"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const portalLabel = "Raccoonlist Heaven"

var (
	groundColor     = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	groundEdgeColor = color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	groundLineColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x1a}
	characterColor  = color.RGBA{R: 0x8a, G: 0x8a, B: 0x9a, A: 0xff}
	portalColor     = color.RGBA{R: 0x40, G: 0x10, B: 0x60, A: 0xff}
)

// Renderer draws sprites from the asset loader, falling back to flat shapes
// for anything missing.
type Renderer struct {
	assets *assets.Loader
	face   text.Face
}

func NewRenderer(loader *assets.Loader) *Renderer {
	return &Renderer{
		assets: loader,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap scene.Snapshot) {
	screen.Fill(color.Black)
	r.drawBackground(screen, snap)
	r.drawGround(screen, snap)
	if snap.DebugVisible {
		vector.StrokeLine(screen, float32(snap.WallX), 0, float32(snap.WallX), float32(snap.Viewport.Height), 2, colornames.Red, false)
	}
	r.drawCharacter(screen, snap)
	r.drawPortal(screen, snap)
}

func (r *Renderer) drawBackground(screen *ebiten.Image, snap scene.Snapshot) {
	bg, ok := r.image("background.jpg")
	if !ok {
		return
	}
	tileW := float64(bg.Bounds().Dx())
	if tileW <= 0 {
		return
	}
	// repeat-x starting at the scroll offset
	start := math.Mod(snap.ScrollOffset, tileW)
	if start > 0 {
		start -= tileW
	}
	for x := start; x < snap.Viewport.Width; x += tileW {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(bg, op)
	}
}

func (r *Renderer) drawGround(screen *ebiten.Image, snap scene.Snapshot) {
	w := float32(snap.Viewport.Width)
	top := float32(snap.Viewport.Height - groundHeight)
	vector.FillRect(screen, 0, top, w, groundHeight, groundColor, false)
	vector.FillRect(screen, 0, top, w, 4, groundEdgeColor, false)
	vector.FillRect(screen, 0, float32(snap.Viewport.Height)-32, w, 2, groundLineColor, false)
}

func (r *Renderer) drawCharacter(screen *ebiten.Image, snap scene.Snapshot) {
	box := CharacterBox(snap)
	sprite, ok := r.image(SpritePath(snap.Pose, snap.Frame))
	if !ok {
		vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), characterColor, false)
		return
	}

	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	sx := box.W / float64(b.Dx())
	sy := box.W / float64(b.Dy())
	if snap.Facing == component.FacingLeft {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(box.W, 0)
	} else {
		op.GeoM.Scale(sx, sy)
	}
	// sprites are square; anchor their bottom to the box bottom
	op.GeoM.Translate(box.X, box.Y+box.H-box.W)
	screen.DrawImage(sprite, op)
}

func (r *Renderer) drawPortal(screen *ebiten.Image, snap scene.Snapshot) {
	box := PortalBox(snap)
	if img, ok := r.image("portal.png"); ok {
		b := img.Bounds()
		scale := math.Min(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(box.X, box.Y)
		screen.DrawImage(img, op)
	} else {
		vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), portalColor, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(box.X, box.Y-20)
	op.ColorScale.ScaleWithColor(colornames.Red)
	text.Draw(screen, portalLabel, r.face, op)
}

func (r *Renderer) image(path string) (*ebiten.Image, bool) {
	if r.assets == nil {
		return nil, false
	}
	return r.assets.Image(path)
}
