package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/game"
	"github.com/milk9111/arena/prefabs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 640
	baseHeight = 360

	moveSpeed = 2.0
)

type Game struct {
	session *game.Session
	watcher *prefabs.Watcher
	hud     *HUD
	ui      *ebitenui.UI
	debug   bool
	paused  bool
}

func NewGame(session *game.Session, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{session: session, watcher: watcher, debug: debug}
	g.hud = NewHUD(session)
	g.ui = g.hud.UI()
	return g
}

func (g *Game) Update() error {
	g.pollReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	g.ui.Update()
	if g.paused {
		return nil
	}

	g.handleInput()
	g.session.Step()
	return nil
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		g.session.Reload(c)
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			common.Logger().Warn("prefab watcher", zap.Error(err))
		}
	default:
	}
}

func (g *Game) handleInput() {
	w := g.session.World
	player := g.session.Player

	var d cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		d.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		d.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		d.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		d.Y++
	}

	if d.X != 0 || d.Y != 0 {
		d = d.Normalize()
		if dir, ok := ecs.Get(w, player, component.DirectionComponent.Kind()); ok {
			dir.Vector = d
		}
		_ = entity.MovePlayer(w, player, d.Mult(moveSpeed))
	}

	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.session.RequestAttack(0)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	w := g.session.World

	ecs.ForEach(w, component.AppearanceComponent.Kind(), func(_ ecs.Entity, a *component.Appearance) {
		fillRect(screen, a.Rect, namedColor(a.Color))
	})

	ecs.ForEach(w, component.AttacksComponent.Kind(), func(e ecs.Entity, attacks *component.Attacks) {
		c := colornames.Orange
		if e == g.session.Player {
			c = colornames.Aqua
		}
		for _, a := range attacks.List {
			for _, p := range a.Particles {
				if p.Alive() {
					fillRect(screen, p.Rect, c)
				}
			}
		}
	})

	if g.debug {
		ecs.ForEach(w, component.ColliderComponent.Kind(), func(_ ecs.Entity, c *component.Collider) {
			strokeRect(screen, c.Rect, colornames.Red)
		})
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frame: %d    FPS: %.2f", w.Frame(), ebiten.ActualFPS()))
	}

	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func fillRect(dst *ebiten.Image, r cp.BB, c color.Color) {
	vector.FillRect(dst, float32(r.L), float32(r.B), float32(r.R-r.L), float32(r.T-r.B), c, false)
}

func strokeRect(dst *ebiten.Image, r cp.BB, c color.Color) {
	vector.StrokeRect(dst, float32(r.L), float32(r.B), float32(r.R-r.L), float32(r.T-r.B), 1, c, false)
}

func namedColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.White
}
