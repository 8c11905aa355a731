package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reading-timer/audio"
	"github.com/lixenwraith/reading-timer/config"
	"github.com/lixenwraith/reading-timer/core"
	"github.com/lixenwraith/reading-timer/display"
	"github.com/lixenwraith/reading-timer/status"
	"github.com/lixenwraith/reading-timer/stopwatch"
)

const (
	statusID = "status-line"
	keyHelp  = "[s]tart [p]ause [space] toggle [r]eset [q]uit"
)

// app binds a stopwatch to a full-screen terminal
type app struct {
	screen tcell.Screen
	cfg    *config.Config

	board        *display.Board
	clockTarget  *display.ScreenTarget
	statusTarget *display.ScreenTarget

	timer *stopwatch.Timer
	cues  *audio.CuePlayer // nil when audio is off
	reg   *status.Registry
}

// newApp mounts display targets and creates the timer
// Extra options are appended after the configured ones
func newApp(screen tcell.Screen, cfg *config.Config, cues *audio.CuePlayer, opts ...stopwatch.Option) *app {
	a := &app{
		screen: screen,
		cfg:    cfg,
		board:  display.NewBoard(),
		cues:   cues,
		reg:    status.NewRegistry(),
	}

	clockStyle := tcell.StyleDefault.Foreground(tcell.GetColor(cfg.Display.Color)).Bold(true)
	a.clockTarget = display.NewScreenTarget(screen, 0, 0, clockStyle)
	a.statusTarget = display.NewScreenTarget(screen, 0, 0, tcell.StyleDefault.Dim(true))
	a.board.Mount(cfg.Display.ID, a.clockTarget)
	a.board.Mount(statusID, a.statusTarget)

	timerOpts := []stopwatch.Option{
		stopwatch.WithInterval(cfg.Timer.Interval),
		stopwatch.WithRecomputeOnPause(cfg.Timer.RecomputeOnPause),
		stopwatch.WithStatus(a.reg),
		stopwatch.WithEventHook(a.onTimerEvent),
	}
	a.timer = stopwatch.New(a.board.Bind(cfg.Display.ID), append(timerOpts, opts...)...)

	a.layout()
	a.clockTarget.SetText(a.timer.String())
	a.updateStatus()
	return a
}

// layout anchors targets from the configured position and current screen size
func (a *app) layout() {
	w, h := a.screen.Size()

	x, y := a.cfg.Display.X, a.cfg.Display.Y
	if x < 0 {
		x = max(0, (w-len(a.timer.String()))/2)
	}
	if y < 0 {
		y = max(0, h/2)
	}
	a.clockTarget.Move(x, y)
	a.statusTarget.Move(0, max(0, h-1))
}

// handleEvent applies one terminal event, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 's', 'S':
				a.timer.Start()
			case 'p', 'P':
				a.timer.Pause()
			case 'r', 'R':
				a.timer.Reset()
			case ' ':
				if a.timer.Running() {
					a.timer.Pause()
				} else {
					a.timer.Start()
				}
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	}

	return true
}

// onTimerEvent runs outside the timer lock
func (a *app) onTimerEvent(ev stopwatch.Event) {
	if a.cues != nil {
		switch ev {
		case stopwatch.EventStart:
			a.cues.Play(audio.CueStart)
		case stopwatch.EventPause:
			a.cues.Play(audio.CuePause)
		case stopwatch.EventReset:
			a.cues.Play(audio.CueReset)
		}
	}
	if ev != stopwatch.EventClose {
		a.updateStatus()
	}
}

func (a *app) updateStatus() {
	state := "PAUSED "
	if a.timer.Running() {
		state = "RUNNING"
	}
	display.Write(a.board.Bind(statusID), strings.Join([]string{state, keyHelp}, "  "))
}

// run polls terminal events until quit or screen shutdown
func (a *app) run() {
	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for ev := range eventChan {
		if !a.handleEvent(ev) {
			return
		}
	}
}

// close disposes the timer; the screen stays owned by the caller
func (a *app) close() {
	a.timer.Close()
	a.board.Unmount(a.cfg.Display.ID)
	a.board.Unmount(statusID)
}
