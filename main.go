package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/raccoonrun/common"
	"github.com/milk9111/raccoonrun/config"
	"github.com/milk9111/raccoonrun/prefabs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v", err)
	}

	debug := flag.Bool("debug", cfg.Debug, "start with the debug overlay visible")
	baseMonitor := flag.Bool("m", cfg.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", cfg.Scene, "scene prefab in prefabs/ (basename, .yaml)")
	assetDir := flag.String("assets", cfg.AssetDir, "directory holding sprites and music")
	hot := flag.Bool("hot", cfg.HotReload, "reload prefabs and scripts when they change on disk")
	flag.Parse()

	cfg.Debug = *debug
	cfg.BaseMonitor = *baseMonitor
	cfg.Scene = *sceneName
	cfg.AssetDir = *assetDir
	cfg.HotReload = *hot
	prefabs.DiskDir = cfg.PrefabDir

	if cfg.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	if w <= 0 || h <= 0 {
		w, h = common.BaseWidth, common.BaseHeight
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("raccoonrun")

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
