package desktop

import (
	"fmt"
	"image/color"
	"math"

	"wordbow/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.RGBA{0x1e, 0x22, 0x2a, 0xff}
	colorHUD        = color.RGBA{0x2b, 0x30, 0x3b, 0xff}
	colorText       = color.White
	colorBow        = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	colorString     = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	colorArrow      = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colorWord       = color.RGBA{0x4f, 0x8c, 0xff, 0xff}
	colorPron       = color.RGBA{0x5c, 0xc8, 0x6a, 0xff}
	colorCorrect    = color.RGBA{0x3c, 0xd0, 0x50, 0xff}
	colorWrong      = color.RGBA{0xe8, 0x40, 0x40, 0xff}
	colorNotice     = color.RGBA{0xf0, 0xc0, 0x30, 0xff}
)

var face font.Face = basicfont.Face7x13

const helpLine = "Enter start  X stop  mouse/arrows aim  click/space fire  Esc quit"

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	screen.Fill(colorBackground)
	g.drawHUD(screen, snap)
	drawBow(screen, snap.Bow)
	for _, w := range snap.Words {
		drawWord(screen, w)
	}
	for _, a := range snap.Arrows {
		drawArrow(screen, a)
	}
	g.drawOverlay(screen, snap)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), HUDHeight, colorHUD, false)

	baseline := HUDHeight/2 + 5
	score := fmt.Sprintf("Score: %d/%d", snap.CorrectHits, snap.TotalHits)
	meaning := "Meaning: " + snap.CurrentMeaning
	timer := fmt.Sprintf("Time Left: %ds", snap.TimeLeft)

	text.Draw(screen, score, face, 10, baseline, colorText)
	text.Draw(screen, meaning, face, max(g.width/2-textWidth(meaning)/2, textWidth(score)+20), baseline, colorText)
	text.Draw(screen, timer, face, g.width-textWidth(timer)-10, baseline, colorText)
	text.Draw(screen, helpLine, face, 10, g.height-8, colorString)
}

// drawBow draws the limb as an arc facing right and the string, pulled back after a shot
func drawBow(screen *ebiten.Image, b game.Bow) {
	cx, cy := float32(b.X), float32(b.Y)+HUDHeight
	r := float32(b.Radius)

	var path vector.Path
	path.Arc(cx, cy, r, -math.Pi/2, math.Pi/2, vector.Clockwise)
	strokeOpts := &vector.StrokeOptions{Width: 4}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOpts)
	fillVertices(vs, colorBow)
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	grip := cx + float32(b.Pull)
	vector.StrokeLine(screen, cx, cy-r, grip, cy, 1.5, colorString, true)
	vector.StrokeLine(screen, grip, cy, cx, cy+r, 1.5, colorString, true)
}

func drawArrow(screen *ebiten.Image, a game.Arrow) {
	x, y := float32(a.X), float32(a.Y)+HUDHeight
	tip := x + game.ArrowLength
	vector.StrokeLine(screen, x, y, tip, y, 2, colorArrow, true)
	vector.StrokeLine(screen, tip, y, tip-6, y-4, 2, colorArrow, true)
	vector.StrokeLine(screen, tip, y, tip-6, y+4, 2, colorArrow, true)
}

func drawWord(screen *ebiten.Image, w game.Word) {
	x, y := int(w.X), int(w.Y)+HUDHeight+5
	text.Draw(screen, w.Word, face, x, y, colorWord)
	if w.Pronunciation != "" {
		text.Draw(screen, "("+w.Pronunciation+")", face, x+textWidth(w.Word)+6, y, colorPron)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	mid := HUDHeight + (g.height-HUDHeight)/2

	if snap.MessageVisible() {
		c := colorCorrect
		if snap.MessageKind == game.MessageWrong {
			c = colorWrong
		}
		g.drawCentered(screen, mid, c, snap.Message)
	}

	switch snap.Phase {
	case game.PhaseIdle:
		g.drawCentered(screen, mid, colorText, "Press Enter to start")
	case game.PhaseEnded:
		g.drawCentered(screen, mid-20, colorText, fmt.Sprintf("Game Over! Your Score: %d/%d", snap.CorrectHits, snap.TotalHits))
		g.drawCentered(screen, mid+20, colorText, "Press Enter to play again")
	}

	if g.notice != "" {
		g.drawCentered(screen, mid+40, colorNotice, g.notice)
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, y int, c color.Color, s string) {
	text.Draw(screen, s, face, g.width/2-textWidth(s)/2, y, c)
}

func textWidth(s string) int {
	return text.BoundString(face, s).Dx()
}
