package terminal

import (
	"math/rand/v2"
	"strings"
	"testing"

	"wordbow/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, records ...game.WordRecord) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	session := game.NewSession(game.DefaultTuning(), game.Field{},
		game.WithRand(rand.New(rand.NewPCG(1, 1))),
		game.WithDataset(records),
	)
	return New(screen, session, game.DefaultTuning().TickInterval, zap.NewNop()), screen
}

func rowText(screen tcell.SimulationScreen, r int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for c := 0; c < cols; c++ {
		ch, _, _, _ := screen.GetContent(c, r)
		b.WriteRune(ch)
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLayout(t *testing.T) {
	l := layout{cols: 80, rows: 24}

	assert.Equal(t, 22, l.fieldRows())
	assert.Equal(t, game.Field{Width: 800, Height: 440}, l.field())
	assert.Equal(t, 1, l.row(0))
	assert.Equal(t, 1, l.row(19.9))
	assert.Equal(t, 2, l.row(20))
	assert.Equal(t, 5, l.col(50))
	assert.Equal(t, 10.0, l.unitY(1))
	assert.Equal(t, 10.0, l.unitY(0), "HUD row clamps into the field")
	assert.Equal(t, 430.0, l.unitY(40), "rows past the field clamp to its last row")
	assert.True(t, l.inField(1))
	assert.False(t, l.inField(0))
	assert.False(t, l.inField(23))

	tiny := layout{cols: 10, rows: 1}
	assert.Equal(t, 1, tiny.fieldRows())
}

func TestApp_SizesSessionToScreen(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, game.Field{Width: 800, Height: 440}, app.session.Field())
}

func TestApp_StartWithoutDataset(t *testing.T) {
	app, screen := newTestApp(t)

	assert.True(t, app.handle(key(tcell.KeyEnter)))
	assert.False(t, app.session.Running())
	assert.Equal(t, "no dataset loaded", app.notice)

	app.draw()
	found := false
	_, rows := screen.Size()
	for r := 0; r < rows; r++ {
		if strings.Contains(rowText(screen, r), "no dataset loaded") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestApp_Keys(t *testing.T) {
	app, _ := newTestApp(t, game.WordRecord{Word: "cat", Pronunciation: "kæt", Meaning: "a feline"})

	assert.True(t, app.handle(runeKey('s')))
	require.True(t, app.session.Running())

	y := app.session.Bow().Y
	app.handle(key(tcell.KeyUp))
	assert.Equal(t, y-cellHeight, app.session.Bow().Y)
	app.handle(runeKey('j'))
	assert.Equal(t, y, app.session.Bow().Y)

	app.handle(runeKey(' '))
	assert.Len(t, app.session.Snapshot().Arrows, 1)

	app.handle(runeKey('x'))
	assert.False(t, app.session.Running())

	assert.False(t, app.handle(runeKey('q')))
	assert.False(t, app.handle(key(tcell.KeyEscape)))
}

func TestApp_BowStaysOnRowCentre(t *testing.T) {
	app, screen := newTestApp(t, game.WordRecord{Word: "cat", Meaning: "a feline"})

	onCentre := func() {
		t.Helper()
		y := app.session.Bow().Y
		assert.Equal(t, app.layout.unitY(app.layout.row(y)), y)
	}
	onCentre()

	screen.SetSize(100, 31)
	app.handle(tcell.NewEventResize(100, 31))
	onCentre()

	app.handle(key(tcell.KeyEnter))
	y := app.session.Bow().Y
	app.handle(key(tcell.KeyDown))
	assert.Equal(t, y+cellHeight, app.session.Bow().Y)
}

func TestApp_MouseAimAndFire(t *testing.T) {
	app, _ := newTestApp(t, game.WordRecord{Word: "cat", Meaning: "a feline"})
	app.handle(key(tcell.KeyEnter))

	app.handle(tcell.NewEventMouse(5, 6, tcell.Button1, tcell.ModNone))
	assert.Equal(t, app.layout.unitY(6), app.session.Bow().Y)
	assert.Empty(t, app.session.Snapshot().Arrows, "fires on release, not on press")

	app.handle(tcell.NewEventMouse(5, 6, tcell.ButtonNone, tcell.ModNone))
	arrows := app.session.Snapshot().Arrows
	require.Len(t, arrows, 1)
	assert.Equal(t, app.layout.unitY(6), arrows[0].Y)

	app.handle(tcell.NewEventMouse(5, 0, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, app.layout.unitY(6), app.session.Bow().Y, "HUD row does not aim")
}

func TestApp_DrawHUD(t *testing.T) {
	app, screen := newTestApp(t, game.WordRecord{Word: "cat", Pronunciation: "kæt", Meaning: "a feline"})
	app.handle(key(tcell.KeyEnter))
	app.draw()

	hud := rowText(screen, 0)
	assert.Contains(t, hud, "Score: 0/0")
	assert.Contains(t, hud, "Meaning: a feline")
	assert.Contains(t, hud, "Time Left: 60s")

	app.handle(runeKey('x'))
	app.draw()

	found := false
	_, rows := screen.Size()
	for r := 0; r < rows; r++ {
		if strings.Contains(rowText(screen, r), "Game Over! Your Score: 0/0") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestApp_Resize(t *testing.T) {
	app, screen := newTestApp(t)
	screen.SetSize(100, 30)

	app.handle(tcell.NewEventResize(100, 30))

	assert.Equal(t, game.Field{Width: 1000, Height: 560}, app.session.Field())
}
