// Package ui builds the viewer's settings panel with ebitenui.
package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Controls are the callbacks the panel drives. All report current state so
// button labels stay in sync with keyboard shortcuts that change the same
// settings.
type Controls struct {
	Visible       func() bool
	SetVisible    func(bool)
	SeismicCoords func() bool
	SetSeismic    func(bool)
	Size          func() float64
	AdjustSize    func(delta float64)
}

// Panel is a small anchored settings panel for the axis legend.
type Panel struct {
	ui       *ebitenui.UI
	controls Controls

	visibleBtn *widget.Button
	seismicBtn *widget.Button
	sizeLabel  *widget.Text
}

// NewPanel builds the panel. It uses colored nine-slices and the built-in
// basic font, so no theme assets have to be loaded.
func NewPanel(controls Controls) *Panel {
	p := &Panel{controls: controls}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	title := widget.NewText(
		widget.TextOpts.Text("Axis Legend", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	p.visibleBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(visibleLabel(controls.Visible()), &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.controls.SetVisible(!p.controls.Visible())
			p.refresh()
		}),
	)

	p.seismicBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(seismicLabel(controls.SeismicCoords()), &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.controls.SetSeismic(!p.controls.SeismicCoords())
			p.refresh()
		}),
	)

	p.sizeLabel = widget.NewText(
		widget.TextOpts.Text(sizeLabel(controls.Size()), &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	sizeUp := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Size +", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.controls.AdjustSize(5)
			p.refresh()
		}),
	)
	sizeDown := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Size -", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.controls.AdjustSize(-5)
			p.refresh()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(p.visibleBtn)
	panel.AddChild(p.seismicBtn)
	panel.AddChild(p.sizeLabel)
	panel.AddChild(sizeUp)
	panel.AddChild(sizeDown)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root}
	return p
}

// refresh re-labels the stateful widgets after any setting changes.
func (p *Panel) refresh() {
	if text := p.visibleBtn.Text(); text != nil {
		text.Label = visibleLabel(p.controls.Visible())
	}
	if text := p.seismicBtn.Text(); text != nil {
		text.Label = seismicLabel(p.controls.SeismicCoords())
	}
	p.sizeLabel.Label = sizeLabel(p.controls.Size())
}

func (p *Panel) Update() {
	p.refresh()
	p.ui.Update()
}

func (p *Panel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

func visibleLabel(v bool) string {
	if v {
		return "Visible: on"
	}
	return "Visible: off"
}

func seismicLabel(v bool) string {
	if v {
		return "Seismic coords: on"
	}
	return "Seismic coords: off"
}

func sizeLabel(size float64) string {
	return fmt.Sprintf("Size: %.0f px", size)
}
