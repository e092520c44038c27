package desktop

import (
	"wordbow/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// HUDHeight is the strip above the play field holding score, meaning and timer
const HUDHeight = 32

// nudgeStep is how far the arrow keys move the bow per tick
const nudgeStep = 8.0

// Game adapts a session to ebiten. Update runs once per session tick, so the
// caller sets the TPS from the tuning.
type Game struct {
	session *game.Session
	logger  *zap.Logger

	width, height int
	notice        string
}

// New creates a desktop game for session
func New(session *game.Session, logger *zap.Logger) *Game {
	return &Game{session: session, logger: logger}
}

// input is one frame of player intent, read from ebiten and applied separately
type input struct {
	start, stop, fire, quit bool

	aim   bool
	aimY  float64
	nudge float64
}

func (g *Game) Update() error {
	if !g.apply(g.readInput()) {
		return ebiten.Termination
	}
	g.session.Advance()
	return nil
}

func (g *Game) readInput() input {
	in := input{
		start: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyS),
		stop:  inpututil.IsKeyJustPressed(ebiten.KeyX),
		fire:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.nudge -= nudgeStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.nudge += nudgeStep
	}

	_, y := ebiten.CursorPosition()
	if y >= HUDHeight && y < g.height && ebiten.IsFocused() {
		in.aim = true
		in.aimY = float64(y - HUDHeight)
	}
	return in
}

// apply feeds one frame of input to the session. It returns false on quit.
func (g *Game) apply(in input) bool {
	if in.quit {
		g.session.Stop()
		return false
	}
	if in.start {
		g.start()
	}
	if in.stop {
		g.session.Stop()
	}

	switch {
	case in.nudge != 0:
		g.aim(g.session.Bow().Y + in.nudge)
	case in.aim:
		g.aim(in.aimY)
	}

	if in.fire {
		g.session.Fire()
	}
	return true
}

func (g *Game) aim(y float64) {
	g.session.Aim(min(max(y, 0), g.session.Field().Height))
}

func (g *Game) start() {
	if err := g.session.Start(); err != nil {
		g.notice = err.Error()
		g.logger.Warn("Failed to start round", zap.Error(err))
		return
	}
	g.notice = ""
}

// Layout keeps the window size and gives the session everything below the HUD
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.session.Resize(float64(w), float64(max(h-HUDHeight, 1)))
}
