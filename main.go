package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/nicorag/seismic-canvas/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to a viewer config YAML (optional)")
	watch := flag.Bool("watch", true, "hot-reload the config and tour script on edit")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Printf("using defaults: %v", err)
		} else {
			cfg = loaded
		}
	}

	var watcher *config.Watcher
	if *watch && *cfgPath != "" {
		w, err := config.NewWatcher(*cfgPath, cfg.Tour.Script)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard disabled: %v", err)
		clipboardOK = false
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("seismic-canvas")

	game := NewGame(cfg, *cfgPath, watcher, clipboardOK)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
