package terminal

import (
	"context"
	"time"

	"wordbow/internal/game"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// App plays a session in a terminal. Input and ticks are handled on the Run
// goroutine only; the tcell poller just forwards events.
type App struct {
	screen  tcell.Screen
	session *game.Session
	tick    time.Duration
	logger  *zap.Logger

	layout    layout
	mouseDown bool
	notice    string
}

// New creates an app on an initialized screen and sizes the session field to it
func New(screen tcell.Screen, session *game.Session, tick time.Duration, logger *zap.Logger) *App {
	a := &App{
		screen:  screen,
		session: session,
		tick:    tick,
		logger:  logger,
	}
	a.resize()
	return a
}

// Run drives the session until the player quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.session.Stop()
			return ctx.Err()

		case ev := <-events:
			if !a.handle(ev) {
				a.session.Stop()
				return nil
			}

		case <-ticker.C:
			a.session.Advance()
			a.draw()
		}
	}
}

// handle applies one terminal event. It returns false when the player quits.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.start()
		case tcell.KeyUp:
			a.nudge(-1)
		case tcell.KeyDown:
			a.nudge(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 's':
				a.start()
			case 'x':
				a.session.Stop()
			case ' ':
				a.session.Fire()
			case 'k':
				a.nudge(-1)
			case 'j':
				a.nudge(1)
			}
		}

	case *tcell.EventMouse:
		_, y := ev.Position()
		if a.layout.inField(y) {
			a.session.Aim(a.layout.unitY(y))
		}
		pressed := ev.Buttons()&tcell.Button1 != 0
		if a.mouseDown && !pressed {
			a.session.Fire()
		}
		a.mouseDown = pressed

	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

func (a *App) start() {
	if err := a.session.Start(); err != nil {
		a.notice = err.Error()
		a.logger.Warn("Failed to start round", zap.Error(err))
		return
	}
	a.notice = ""
}

// nudge moves the bow by whole rows
func (a *App) nudge(rows int) {
	r := a.layout.row(a.session.Bow().Y) + rows
	a.session.Aim(a.layout.unitY(r))
}

// resize fits the field to the screen and keeps the bow on a row centre
func (a *App) resize() {
	cols, rows := a.screen.Size()
	a.layout = layout{cols: cols, rows: rows}
	f := a.layout.field()
	a.session.Resize(f.Width, f.Height)
	a.session.Aim(a.layout.unitY(a.layout.row(a.session.Bow().Y)))
}
