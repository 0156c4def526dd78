package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"standingwaves/internal/wave"
)

func main() {
	flag.Parse()

	refl, err := wave.ParseReflection(*reflectionFlag)
	if err != nil {
		log.Fatalf("Invalid -reflection: %v", err)
	}
	params := wave.Params{Amplitude: *amplitudeFlag, Frequency: *frequencyFlag, Wavelength: *wavelengthFlag}
	if err := params.Validate(); err != nil {
		log.Fatalf("Invalid wave parameters: %v", err)
	}

	g := newGame(params, refl)
	defer g.Close()

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(pgoOutputPath)
		if err != nil {
			log.Fatalf("Starting PGO recording failed: %v", err)
		}
		defer stop()
		log.Printf("Recording %s for %s", pgoOutputPath, pgoRecordDuration)
		g.enableAutoDemo(pgoRecordDuration)
	}

	scale := *windowScaleFlag
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(canvasWidth*scale), int((canvasHeight+hudHeight)*scale))
	ebiten.SetWindowTitle("Standing Waves")
	ebiten.SetTPS(int(defaultTPS))
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatalf("Game loop failed: %v", err)
	}
}
