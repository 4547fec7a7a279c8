package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/raccoonrun/assets"
	"github.com/milk9111/raccoonrun/common"
	"github.com/milk9111/raccoonrun/config"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/ecs/system"
	"github.com/milk9111/raccoonrun/prefabs"
	"github.com/milk9111/raccoonrun/render"
	"github.com/milk9111/raccoonrun/scene"
)

type Game struct {
	cfg config.Config

	scene    *scene.Scene
	renderer *render.Renderer
	debugUI  *render.DebugUI
	watcher  *prefabs.Watcher

	last time.Time
}

func NewGame(cfg config.Config) (*Game, error) {
	spec, err := prefabs.LoadSceneSpec(cfg.Scene)
	if err != nil {
		log.Printf("failed to load scene %s: %v", cfg.Scene, err)
		spec = prefabs.DefaultSceneSpec()
	}

	loader := assets.NewLoader(cfg.AssetDir)
	sc, err := scene.New(spec, component.Viewport{Width: common.BaseWidth, Height: common.BaseHeight},
		scene.WithInput(system.NewInputSystem()),
		scene.WithMusic(musicLoader(loader), cfg.MusicVolume),
		scene.WithDebug(cfg.Debug),
	)
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		scene:    sc,
		renderer: render.NewRenderer(loader),
		debugUI:  render.NewDebugUI(),
	}

	if cfg.HotReload {
		w, err := prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"))
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// musicLoader adapts the asset loader to the music system.
func musicLoader(loader *assets.Loader) system.MusicLoader {
	return func(track string) (system.MusicPlayer, error) {
		p, err := loader.AudioPlayer(track)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func (g *Game) Update() error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := time.Duration(common.ClampDelta(int64(now.Sub(g.last)), int64(g.cfg.MaxFrameDelta)))
	g.last = now

	g.reload()
	g.scene.Step(dt)

	snap := g.scene.Snapshot()
	if snap.DebugVisible {
		g.debugUI.Update(snap)
	}
	return nil
}

// reload re-reads the scene prefab after any watched change. Retune also
// drops compiled speed scripts, so edited scripts take effect too.
func (g *Game) reload() {
	pending := g.watcher.Pending()
	if len(pending) == 0 {
		return
	}
	spec, err := prefabs.LoadSceneSpec(g.cfg.Scene)
	if err != nil {
		log.Printf("reload %v: %v", pending, err)
		return
	}
	if err := g.scene.Retune(spec); err != nil {
		log.Printf("reload %v: %v", pending, err)
		return
	}
	for _, path := range pending {
		kind := "prefab"
		if prefabs.IsScript(path) {
			kind = "script"
		}
		log.Printf("reloaded %s %s", kind, path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.scene.Snapshot()
	g.renderer.Draw(screen, snap)
	if snap.DebugVisible {
		g.debugUI.Draw(screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()), 10, int(snap.Viewport.Height)-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watcher: close: %v", err)
		}
	}
}
