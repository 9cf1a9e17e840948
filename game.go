package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/nicorag/seismic-canvas/axis"
	"github.com/nicorag/seismic-canvas/camera"
	"github.com/nicorag/seismic-canvas/config"
	"github.com/nicorag/seismic-canvas/input"
	"github.com/nicorag/seismic-canvas/tour"
	"github.com/nicorag/seismic-canvas/ui"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var backgroundColor = color.RGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}

type Game struct {
	cfg     config.Config
	cfgPath string

	cam     *camera.Turntable
	legend  *axis.Legend
	tracker *input.Tracker

	cameraTour *tour.Tour
	tourActive bool
	elapsed    float64

	panel        *ui.Panel
	panelVisible bool

	watcher      *config.Watcher
	clipboardOK  bool
	selectionNow bool
}

func NewGame(cfg config.Config, cfgPath string, watcher *config.Watcher, clipboardOK bool) *Game {
	g := &Game{
		cfg:         cfg,
		cfgPath:     cfgPath,
		cam:         camera.New(cfg.Camera.Azimuth, cfg.Camera.Elevation),
		tracker:     input.NewTracker(),
		watcher:     watcher,
		clipboardOK: clipboardOK,
	}

	g.legend = axis.New(cp.Vector{X: cfg.Axis.AnchorX, Y: cfg.Axis.AnchorY}, cfg.Axis.Size, cfg.Axis.SeismicCoords)
	g.legend.SetVisible(cfg.Axis.Visible)
	g.legend.Attach(g.cam)

	if cfg.Tour.Script != "" {
		t, err := tour.Load(cfg.Tour.Script)
		if err != nil {
			log.Printf("tour disabled: %v", err)
		} else {
			g.cameraTour = t
		}
	}

	g.panel = ui.NewPanel(ui.Controls{
		Visible:       g.legend.Visible,
		SetVisible:    g.legend.SetVisible,
		SeismicCoords: g.legend.SeismicCoords,
		SetSeismic:    g.legend.SetSeismicCoords,
		Size:          g.legend.Size,
		AdjustSize:    func(delta float64) { g.legend.SetSize(g.legend.Size() + delta) },
	})

	return g
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.handleKeys()

	if g.panelVisible {
		g.panel.Update()
	}

	if g.tourActive && g.cameraTour != nil {
		tps := ebiten.ActualTPS()
		if tps <= 0 {
			tps = 60
		}
		g.elapsed += 1.0 / tps
		az, el, err := g.cameraTour.At(g.elapsed)
		if err != nil {
			log.Printf("tour stopped: %v", err)
			g.tourActive = false
		} else {
			g.cam.SetOrientation(az, el)
			g.legend.Realign()
		}
	}

	if g.cam.Update() {
		g.legend.Realign()
	}

	sample := input.Poll()
	g.selectionNow = sample.SelectionMode
	for _, ev := range g.tracker.Feed(sample) {
		switch ev.Kind {
		case input.KindDown:
			g.legend.BeginDrag(ev.Pointer)
		case input.KindMove:
			g.legend.OnPointerMove(ev.Pointer)
			g.legend.ContinueDrag(ev.Pointer)
		case input.KindUp:
			if ev.Pointer.Button == ebiten.MouseButtonLeft {
				g.legend.EndDrag()
			}
		case input.KindModeExit:
			g.legend.CancelDrag()
		}
	}

	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panelVisible = !g.panelVisible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.legend.SetVisible(!g.legend.Visible())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) && g.cameraTour != nil {
		g.tourActive = !g.tourActive
		if g.tourActive {
			g.elapsed = 0
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.clipboardOK {
		anchor := g.legend.Anchor()
		state := fmt.Sprintf("azimuth=%.2f elevation=%.2f anchor=(%.0f,%.0f) size=%.0f",
			g.cam.Azimuth(), g.cam.Elevation(), anchor.X, anchor.Y, g.legend.Size())
		clipboard.Write(clipboard.FmtText, []byte(state))
	}
}

// pollWatcher drains pending file-change notifications and re-applies the
// config and tour script without restarting the viewer.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case r, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(r)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(r config.Reload) {
	switch r {
	case config.ReloadConfig:
		cfg, err := config.Load(g.cfgPath)
		if err != nil {
			log.Printf("reload config: %v", err)
			return
		}
		prevScript := g.cfg.Tour.Script
		g.cfg = cfg
		g.legend.SetSize(cfg.Axis.Size)
		g.legend.SetSeismicCoords(cfg.Axis.SeismicCoords)
		g.legend.SetVisible(cfg.Axis.Visible)
		if cfg.Tour.Script != prevScript {
			g.reloadTour(cfg.Tour.Script)
			if g.watcher != nil {
				if err := g.watcher.SetTourScript(cfg.Tour.Script); err != nil {
					log.Printf("watch tour: %v", err)
				}
			}
		}
		log.Printf("reloaded %s", g.cfgPath)
	case config.ReloadTour:
		g.reloadTour(g.cfg.Tour.Script)
	}
}

func (g *Game) reloadTour(path string) {
	if path == "" {
		g.cameraTour = nil
		g.tourActive = false
		return
	}
	t, err := tour.Load(path)
	if err != nil {
		log.Printf("reload tour: %v", err)
		return
	}
	g.cameraTour = t
	log.Printf("reloaded %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.legend.DrawHighlight(screen, g.selectionNow)
	g.legend.Draw(screen)

	if g.panelVisible {
		g.panel.Draw(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f    azimuth: %.1f  elevation: %.1f\nCtrl+drag moves the legend, right-drag orbits, Tab opens settings",
		ebiten.ActualFPS(), g.cam.Azimuth(), g.cam.Elevation()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
