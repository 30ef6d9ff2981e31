package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/ball-mixer-go/sim"
)

// HUD constants
const (
	InventorySlots   = 5 // Most recent held balls shown in the indicator
	InventoryDotSize = 8.0
	HintText         = "LMB: pick up / release ball | RMB: release at cursor | Space: pause | R: respawn | S/L: save/load"
)

var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	zoneFill        = color.RGBA{255, 200, 200, 255}
	zoneBorder      = color.RGBA{220, 80, 80, 255}
	zoneLabel       = color.RGBA{180, 50, 50, 255}
	outlineColor    = color.RGBA{80, 80, 80, 255}
	textColor       = color.RGBA{60, 60, 60, 255}
	hintColor       = color.RGBA{100, 100, 100, 255}
)

// Simulation drives a sim.World from Ebitengine: it translates input into
// world calls, steps the world once per tick and draws its state.
type Simulation struct {
	World      *sim.World
	Config     sim.Config
	ConfigPath string
	Paused     bool
	lastTick   time.Time
}

// NewSimulation creates a simulation and spawns the starting population
func NewSimulation(cfg sim.Config, configPath string) *Simulation {
	s := &Simulation{
		Config:     cfg,
		ConfigPath: configPath,
	}
	s.respawn()
	return s
}

// respawn replaces the world with a freshly populated one
func (s *Simulation) respawn() {
	s.World = s.Config.NewWorld()
	s.Config.NewSpawner().Populate(s.World, s.Config.BallCount)
	s.lastTick = time.Now()
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	now := time.Now()
	dt := s.Config.ClampStep(now.Sub(s.lastTick).Seconds())
	s.lastTick = now

	s.handleInput()

	if s.Paused {
		return nil
	}
	s.World.Advance(dt)
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Removal zone
	z := s.World.DeleteZone()
	vector.DrawFilledRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), zoneFill, false)
	vector.StrokeRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), 3, zoneBorder, false)
	label := "DELETE"
	face := basicfont.Face7x13
	lw := text.BoundString(face, label).Dx()
	text.Draw(screen, label, face, int(z.X+(z.W-float64(lw))/2), int(z.Y+z.H/2)+4, zoneLabel)

	// Balls
	for _, b := range s.World.Balls() {
		r := float32(b.Radius())
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), r, b.Color, true)
		vector.StrokeCircle(screen, float32(b.X), float32(b.Y), r, 1, outlineColor, true)
	}

	// Inventory indicator
	held := s.World.Inventory()
	text.Draw(screen, fmt.Sprintf("Inventory: %d", len(held)), face, 12, 22, textColor)
	if len(held) > InventorySlots {
		held = held[len(held)-InventorySlots:]
	}
	for i, b := range held {
		x := float32(14 + i*22)
		vector.DrawFilledCircle(screen, x, 38, InventoryDotSize, b.Color, true)
		vector.StrokeCircle(screen, x, 38, InventoryDotSize, 1, textColor, true)
	}

	text.Draw(screen, HintText, face, 12, screen.Bounds().Dy()-12, hintColor)
	if s.Paused {
		text.Draw(screen, "PAUSED", face, 12, 62, zoneLabel)
	}
}

// Layout follows the window size and re-anchors the removal zone on resize
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if cw, ch := s.World.Size(); cw != w || ch != h {
		s.World.Resize(w, h)
		z := s.Config.Zone(w, h)
		s.World.SetDeleteZone(z.X, z.Y, z.W, z.H)
	}
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Paused = !s.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.resetKeepingSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := s.Config.Save(s.ConfigPath); err != nil {
			log.Printf("save failed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		cfg, err := sim.LoadConfig(s.ConfigPath)
		if err != nil {
			log.Printf("load failed: %v", err)
		} else {
			s.Config = cfg
			s.resetKeepingSize()
		}
	}

	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, ok := s.World.PickUpAt(px, py); !ok {
			s.World.ReleaseAt(px, py)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.World.ReleaseAt(px, py)
	}
}

// resetKeepingSize respawns while keeping the current window size
func (s *Simulation) resetKeepingSize() {
	w, h := s.World.Size()
	s.Config.Width, s.Config.Height = w, h
	s.respawn()
}
