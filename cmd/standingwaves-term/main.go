// Command standingwaves-term draws the standing wave demonstration in a
// terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"standingwaves/internal/clock"
	"standingwaves/internal/wave"
)

var (
	amplitudeFlag  = flag.Float64("amplitude", wave.DefaultParams().Amplitude, "initial wave amplitude (10-100)")
	frequencyFlag  = flag.Float64("frequency", wave.DefaultParams().Frequency, "initial wave frequency (0.1-2)")
	wavelengthFlag = flag.Float64("wavelength", wave.DefaultParams().Wavelength, "initial wavelength (50-400)")
	reflectionFlag = flag.String("reflection", "fixed", "boundary type at the reflecting end: fixed or free")
	stepSizeFlag   = flag.Float64("step-size", clock.DefaultStepSize, "manual step size in time units (0.01-0.5)")
	autoplayFlag   = flag.Bool("autoplay", false, "start playing immediately")
	workersFlag    = flag.Int("workers", 1, "CPU sampler worker goroutines (0 = NumCPU)")

	// fpsFlag is the frame rate the clock ticks at.
	fpsFlag = flag.Int("fps", 30, "frames per second")

	// logFlag redirects diagnostics to a file; the screen owns stderr.
	logFlag = flag.String("log", "", "write diagnostics to this file")
)

func main() {
	flag.Parse()
	if err := setupLogging(*logFlag); err != nil {
		fmt.Fprintf(os.Stderr, "standingwaves-term: %v\n", err)
		os.Exit(1)
	}

	refl, err := wave.ParseReflection(*reflectionFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "standingwaves-term: invalid -reflection: %v\n", err)
		os.Exit(2)
	}
	params := wave.Params{Amplitude: *amplitudeFlag, Frequency: *frequencyFlag, Wavelength: *wavelengthFlag}
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "standingwaves-term: %v\n", err)
		os.Exit(2)
	}

	app := newTermApp(params, refl, wave.NewSampler(*workersFlag))
	defer app.tracer.Close()
	app.panel.Clock.SetStepSize(*stepSizeFlag)
	if *autoplayFlag {
		app.panel.Clock.TogglePlay()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "standingwaves-term: creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "standingwaves-term: initializing screen: %v\n", err)
		os.Exit(1)
	}
	err = run(screen, app, *fpsFlag)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "standingwaves-term: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

// run drives the frame loop until the user quits. Input and ticks are handled
// on this goroutine only; the poller just forwards events.
func run(screen tcell.Screen, app *termApp, fps int) error {
	if fps < 1 {
		fps = 1
	}
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	log.Printf("Terminal frontend running at %d fps", fps)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if app.handleKey(ev.Key(), ev.Rune()) {
					log.Printf("Quit at t=%.2f", app.panel.Clock.Time())
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			cols, _ := screen.Size()
			if err := app.tick(cols); err != nil {
				return fmt.Errorf("sampling: %w", err)
			}
			app.draw(screen)
			screen.Show()
		}
	}
}
