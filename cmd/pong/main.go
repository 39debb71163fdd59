package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/pong/internal/config"
	"chosenoffset.com/pong/internal/game"
	ebitenrender "chosenoffset.com/pong/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "pong.json", "Path to the display config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameManager := game.NewManager(renderer, inputMgr, cfg, rng)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(false)
	engine.SetTPS(cfg.TPS)

	log.Printf("Starting %s (%dx%d @ %d TPS)", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.TPS)
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
	log.Println("Goodbye")
}
