package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/herobound/internal/core/geom"
	"chosenoffset.com/herobound/internal/placeholders"
	"chosenoffset.com/herobound/internal/render"
	"chosenoffset.com/herobound/internal/world"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Clear()

	g.drawGround(screen)
	g.drawObstacles(screen)
	g.drawActor(screen)
	g.drawBorder(screen)

	// UI is drawn in screen space, on top
	g.drawHUD(screen)
	g.drawUI(screen)
	if g.ShowDebug {
		g.drawDebug(screen)
	}
}

// view returns the visible part of the world
func (g *Game) view() geom.Rect {
	return geom.Rect{X: g.Camera.X, Y: g.Camera.Y, W: float64(g.ScreenWidth), H: float64(g.ScreenHeight)}
}

func (g *Game) drawGround(screen render.Image) {
	g.Renderer.FillRect(screen,
		float32(-g.Camera.X), float32(-g.Camera.Y),
		float32(g.World.Width), float32(g.World.Height),
		placeholders.ColorPalette.Grass)
}

func (g *Game) drawBorder(screen render.Image) {
	g.Renderer.StrokeRect(screen,
		float32(-g.Camera.X), float32(-g.Camera.Y),
		float32(g.World.Width), float32(g.World.Height),
		2, borderColor)
}

func (g *Game) drawObstacles(screen render.Image) {
	view := g.view()
	for _, o := range g.World.Obstacles {
		if !o.Overlaps(view) {
			continue
		}

		sheet := g.Sprites.Sheet(o.Kind)
		if sheet == nil {
			g.Renderer.FillRect(screen,
				float32(o.X-g.Camera.X), float32(o.Y-g.Camera.Y),
				float32(o.W), float32(o.H), obstacleColor(o.Kind))
			continue
		}

		g.drawStretched(screen, sheet.Cell(o.SpriteIndex), o.Rect)
	}
}

func (g *Game) drawActor(screen render.Image) {
	a := &g.World.Actor
	if g.Sprites.Character == nil {
		g.Renderer.FillRect(screen,
			float32(a.X-g.Camera.X), float32(a.Y-g.Camera.Y),
			float32(a.W), float32(a.H), placeholders.ColorPalette.ActorBody)
		return
	}

	// Columns are walk frames, rows are directions
	sheet := g.Sprites.Character
	g.drawStretched(screen, sheet.CellAt(g.World.Anim.Frame%sheet.Cols, int(a.Dir)), a.Bounds())
}

// drawStretched draws img scaled to fill the world rectangle dst
func (g *Game) drawStretched(screen, img render.Image, dst geom.Rect) {
	w, h := img.Size()
	if w == 0 || h == 0 {
		return
	}
	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Scale(dst.W/float64(w), dst.H/float64(h))
	opts.GeoM.Translate(dst.X-g.Camera.X, dst.Y-g.Camera.Y)
	screen.DrawImage(img, opts)
}

func (g *Game) drawHUD(screen render.Image) {
	info := fmt.Sprintf("%s explores the realm - Use arrows or WASD to move", g.HeroName)
	g.Renderer.DrawText(screen, info, 10, 10, textColor, 1.0)
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	y := 50.0
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, int(y), color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}
}

func (g *Game) drawDebug(screen render.Image) {
	a := g.World.Actor
	lines := []string{
		fmt.Sprintf("pos (%.0f, %.0f) size %.1fx%.1f", a.X, a.Y, a.W, a.H),
		fmt.Sprintf("facing %s frame %d dt %v", a.Dir, g.World.Anim.Frame, g.LastDT),
		fmt.Sprintf("blocked x=%t y=%t obstacles %d", g.LastTick.BlockedX, g.LastTick.BlockedY, len(g.World.Obstacles)),
	}
	_, lineH := g.Renderer.MeasureText("M", 1.0)
	y := g.ScreenHeight - len(lines)*lineH - 10
	for _, line := range lines {
		g.Renderer.DrawText(screen, line, 10, y, textColor, 1.0)
		y += lineH
	}
}

func obstacleColor(kind world.ObstacleKind) color.RGBA {
	if kind == world.Tree {
		return placeholders.ColorPalette.TreeCanopy
	}
	return placeholders.ColorPalette.Boulder
}
