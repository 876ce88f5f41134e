package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"chosenoffset.com/herobound/internal/assets"
	"chosenoffset.com/herobound/internal/game"
	ebitenrender "chosenoffset.com/herobound/internal/render/ebiten"
	"chosenoffset.com/herobound/internal/rosterstore"
	"chosenoffset.com/herobound/internal/simulation"
)

func main() {
	configPath := flag.String("config", "", "YAML or JSON config file")
	assetsDir := flag.String("assets", "assets", "directory holding the sprites/ tree")
	hero := flag.String("hero", "", "name shown for the walking hero")
	handoff := flag.String("handoff", "", "roster hand-off document to take the hero from")
	seed := flag.Int64("seed", 0, "obstacle seed (0 = config value, then the clock)")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	heroName := *hero
	if *handoff != "" {
		heroName = heroFromHandoff(*handoff, heroName)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	if catalog, err := assets.Scan(*assetsDir); err != nil {
		log.Printf("Warning: %v", err)
	} else if !catalog.Complete() {
		log.Printf("Missing sprite sheets under %s: %v", *assetsDir, catalog.Missing())
	}
	sprites := game.LoadSprites(renderer, loader, *assetsDir, cfg.Actor.Frames)

	s := *seed
	if s == 0 {
		s = cfg.World.Seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("World seed: %d", s)

	g, err := game.New(cfg, renderer, inputMgr, sprites, rand.New(rand.NewSource(s)), heroName)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Printf("Starting game as %s...", g.HeroName)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// heroFromHandoff checks name against a stored roster, or picks the first
// hero when no name was given.
func heroFromHandoff(path, name string) string {
	doc, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read hand-off document: %v", err)
	}
	h, err := rosterstore.DecodeHandoff(doc)
	if err != nil {
		log.Fatalf("Failed to decode hand-off document: %v", err)
	}
	if len(h.Roster) == 0 {
		log.Fatalf("Hand-off document for %s has an empty roster", h.Key)
	}

	if name == "" {
		return h.Roster[0].Name
	}
	for _, rec := range h.Roster {
		if rec.Name == name {
			return name
		}
	}
	log.Fatalf("Hero %q is not in the roster for %s", name, h.Key)
	return ""
}
