package render

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/raccoonrun/scene"
	"golang.org/x/image/font/basicfont"
)

// DebugUI is the overlay panel shown while debug is toggled on.
type DebugUI struct {
	ui    *ebitenui.UI
	label *widget.Text
}

// NewDebugUI builds a small panel in the top-left corner listing the
// simulation state.
func NewDebugUI() *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &DebugUI{ui: &ebitenui.UI{Container: root}, label: label}
}

// Update refreshes the panel text and lets the UI process input.
func (d *DebugUI) Update(snap scene.Snapshot) {
	d.label.Label = DebugText(snap)
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}

// DebugText formats the numbers shown in the debug panel.
func DebugText(snap scene.Snapshot) string {
	return fmt.Sprintf(
		"pose: %s (%s) frame %d\nx: %.1f wall: %.1f reached: %t\noffset y: %.1f\nportal x: %.1f gap: %.1f\nscroll: %.1f",
		snap.Pose, snap.Facing, snap.Frame,
		snap.CharacterX, snap.WallX, snap.ReachedWall,
		snap.CharacterOffsetY,
		snap.PursuerX, snap.PursuerX-snap.CharacterX,
		snap.ScrollOffset,
	)
}
