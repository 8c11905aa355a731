package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reading-timer/audio"
	"github.com/lixenwraith/reading-timer/config"
	"github.com/lixenwraith/reading-timer/core"
	"github.com/lixenwraith/reading-timer/stopwatch"
)

var (
	configFlag   = flag.String("config", "", "Path to YAML config file")
	debugFlag    = flag.Bool("debug", false, "Write debug log to the log directory")
	intervalFlag = flag.Duration("interval", 0, "Display refresh interval override")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the timer crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reading-timer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *intervalFlag > 0 {
		cfg.Timer.Interval = *intervalFlag
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	// Audio is optional, the timer runs silently without it
	var cues *audio.CuePlayer
	if cfg.Audio.Enabled {
		player := audio.NewCuePlayer(cfg.Audio.Volume)
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			cues = player
			defer player.Cleanup()
		}
	}

	a := newApp(screen, cfg, cues, stopwatch.WithLogger(log.Default()))
	defer a.close()

	a.run()

	log.Printf("reading-timer: exit elapsed=%s metrics=%v", a.timer.Elapsed(), a.reg.Snapshot())
	return nil
}
