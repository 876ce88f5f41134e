package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/herobound/internal/core/geom"
	"chosenoffset.com/herobound/internal/render"
	"chosenoffset.com/herobound/internal/simulation"
	"chosenoffset.com/herobound/internal/world"
)

// DefaultHeroName is shown when no hero was chosen
const DefaultHeroName = "Adventurer"

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	World        *world.World
	Sprites      *Sprites
	Camera       geom.Point
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Clock        Clock
	HeroName     string

	// Last tick, for the debug overlay
	LastTick world.TickResult
	LastDT   time.Duration

	// UI state
	Messages  []Message
	ShowDebug bool

	lastTime time.Time
}

// New builds a game from config: the world is sized from the character
// sheet and populated with obstacles drawn from rng.
func New(cfg *simulation.Config, r render.Renderer, input render.InputManager, sprites *Sprites, rng *rand.Rand, hero string) (*Game, error) {
	tieBreak, err := world.ParseTieBreak(cfg.Input.TieBreak)
	if err != nil {
		return nil, err
	}

	actorW, actorH := sprites.ActorSize(cfg.Actor.Scale, cfg.Actor.FallbackWidth, cfg.Actor.FallbackHeight)
	w, err := world.New(world.Options{
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		ActorWidth:  actorW,
		ActorHeight: actorH,
		Speed:       cfg.Actor.Speed,
		Frames:      cfg.Actor.Frames,
		FrameRate:   cfg.Actor.FrameRate,
		TieBreak:    tieBreak,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	if err := w.Populate(rng, world.GenOptions{
		Count:     cfg.World.ObstacleCount,
		MinSize:   cfg.World.ObstacleMinSize,
		SizeRange: cfg.World.ObstacleSizeRange,
	}); err != nil {
		return nil, fmt.Errorf("failed to generate obstacles: %w", err)
	}
	log.Printf("Generated %d obstacles in a %vx%v world", len(w.Obstacles), w.Width, w.Height)

	if hero == "" {
		hero = DefaultHeroName
	}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		World:        w,
		Sprites:      sprites,
		Renderer:     r,
		InputMgr:     input,
		Clock:        SystemClock{},
		HeroName:     hero,
	}
	if sprites.AnyFallback() {
		g.ShowMessage("Some sprite sheets are missing, using placeholder art")
	}
	g.UpdateCamera()
	return g, nil
}

// ReadInput maps the arrow keys and WASD onto the walker's controls.
func ReadInput(input render.InputManager) world.Input {
	return world.Input{
		Up:    input.IsKeyPressed(render.KeyUp) || input.IsKeyPressed(render.KeyW),
		Down:  input.IsKeyPressed(render.KeyDown) || input.IsKeyPressed(render.KeyS),
		Left:  input.IsKeyPressed(render.KeyLeft) || input.IsKeyPressed(render.KeyA),
		Right: input.IsKeyPressed(render.KeyRight) || input.IsKeyPressed(render.KeyD),
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF1) {
		g.ShowDebug = !g.ShowDebug
	}

	// The first tick has no previous timestamp and so no elapsed time
	now := g.Clock.Now()
	var dt time.Duration
	if !g.lastTime.IsZero() {
		dt = now.Sub(g.lastTime)
	}
	if dt < 0 {
		dt = 0
	}
	g.lastTime = now
	g.LastDT = dt

	g.LastTick = g.World.Tick(ReadInput(g.InputMgr), dt)

	g.updateMessages(dt.Seconds())
	g.UpdateCamera()
	return nil
}

// Layout follows the window size so the viewport grows with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.UpdateCamera()
	}
	return outsideWidth, outsideHeight
}

// UpdateCamera centers the viewport on the actor.
func (g *Game) UpdateCamera() {
	g.Camera = g.World.Camera(float64(g.ScreenWidth), float64(g.ScreenHeight))
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	log.Printf("Message: %s", text)
}
