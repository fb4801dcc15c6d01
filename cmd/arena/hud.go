package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/game"
	"golang.org/x/image/font/basicfont"
)

// HUD shows the player's health in the top-left corner. The label only
// changes when EventPlayerHPChanged is delivered.
type HUD struct {
	session *game.Session
	hp      *widget.Text
	root    *widget.Container
}

func NewHUD(session *game.Session) *HUD {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	h := &HUD{session: session}
	h.hp = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(h.hp)

	h.root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	h.root.AddChild(panel)

	h.refresh()
	session.World.Events().Subscribe(ecs.EventPlayerHPChanged, func(evt ecs.Event) {
		if evt.Entity == session.Player {
			h.refresh()
		}
	})
	return h
}

func (h *HUD) UI() *ebitenui.UI {
	return &ebitenui.UI{Container: h.root}
}

func (h *HUD) refresh() {
	health, ok := h.session.PlayerHealth()
	if !ok {
		h.hp.Label = "HP -"
		return
	}
	h.hp.Label = fmt.Sprintf("HP %d/%d", health.Points, health.Max)
}
