// Command preview cycles the raccoon sprites for one pose at the scene's
// animation interval. Left/Right switch pose.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/raccoonrun/assets"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/ecs/system"
	"github.com/milk9111/raccoonrun/prefabs"
	"github.com/milk9111/raccoonrun/render"
)

const previewSize = 512

var poses = []component.Pose{
	component.PoseIdle,
	component.PoseRunning,
	component.PoseJumping,
	component.PoseCrouching,
}

type previewGame struct {
	loader   *assets.Loader
	frames   map[component.Pose]int
	interval time.Duration

	pose  int
	frame int
	acc   time.Duration
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.pose = (g.pose + 1) % len(poses)
		g.frame = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.pose = (g.pose + len(poses) - 1) % len(poses)
		g.frame = 1
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.acc += time.Second / time.Duration(tps)
	for g.acc >= g.interval {
		g.acc -= g.interval
		g.frame = system.AdvanceFrame(g.frame, g.bound())
	}
	return nil
}

func (g *previewGame) bound() int {
	if n, ok := g.frames[poses[g.pose]]; ok && n > 0 {
		return n
	}
	return 1
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	pose := poses[g.pose]
	path := render.SpritePath(pose, g.frame)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %d/%d\n%s", pose, g.frame, g.bound(), path))

	img, ok := g.loader.Image(path)
	if !ok {
		return
	}
	fw := img.Bounds().Dx()
	fh := img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(previewSize-fw)/2, float64(previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene prefab providing frame counts and interval")
	assetDir := flag.String("assets", "public", "directory holding the raccoon sprites")
	flag.Parse()

	spec, err := prefabs.LoadSceneSpec(*sceneName)
	if err != nil {
		log.Printf("failed to load scene %s: %v", *sceneName, err)
		spec = prefabs.DefaultSceneSpec()
	}

	g := &previewGame{
		loader:   assets.NewLoader(*assetDir),
		frames:   spec.FrameCounts(),
		interval: spec.Animation.Interval,
		frame:    1,
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("raccoon pose preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
