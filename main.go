package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/ball-mixer-go/sim"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config (S saves, L reloads)")
	flag.Parse()

	// Fall back to defaults when no config file exists yet
	cfg, err := sim.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = sim.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	}

	s := NewSimulation(cfg, *configPath)

	// Set up Ebitengine game
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Ball Mixer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	// Run the game loop
	if err := ebiten.RunGame(s); err != nil {
		log.Fatal(err)
	}
}
