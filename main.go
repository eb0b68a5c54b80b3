package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hero-particles/internal/audio"
	"github.com/iburimskiy/hero-particles/internal/config"
	"github.com/iburimskiy/hero-particles/internal/game"
)

func main() {
	width := flag.Int("width", config.WindowWidth, "initial window width")
	height := flag.Int("height", config.WindowHeight, "initial window height")
	tps := flag.Int("tps", config.TPS, "simulation ticks per second")
	mute := flag.Bool("mute", false, "disable the hover chime")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	flag.Parse()

	log.SetPrefix("[particles] ")
	log.SetFlags(log.Ltime)

	if *width <= 0 || *height <= 0 || *tps <= 0 {
		fatal(errors.New("width, height and tps must be positive"))
	}

	var sound *audio.Player
	if !*mute {
		sound = audio.NewPlayer()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(*tps)

	g := game.NewGame(*width, *height, sound)
	log.Printf("starting %dx%d at %d TPS", *width, *height, *tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports err in a native dialog as well as the log, then exits.
func fatal(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title("Hero Particles"), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
	log.Fatal(err)
}
