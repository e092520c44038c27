package terminal

import (
	"fmt"

	"wordbow/internal/game"

	"github.com/gdamore/tcell/v2"
)

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBow     = tcell.StyleDefault.Foreground(tcell.ColorBrown)
	styleString  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleArrow   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWord    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	stylePron    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCorrect = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWrong   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

const helpLine = "Enter start  x stop  ↑/↓ or mouse aim  space/click fire  q quit"

func (a *App) draw() {
	snap := a.session.Snapshot()

	a.screen.Clear()
	a.drawHUD(snap)
	a.drawBow(snap.Bow)
	for _, w := range snap.Words {
		a.drawWord(w)
	}
	for _, arrow := range snap.Arrows {
		a.drawArrow(arrow)
	}
	a.drawOverlay(snap)
	a.drawText(0, a.layout.rows-1, styleHelp, helpLine)
	a.screen.Show()
}

func (a *App) drawHUD(snap game.Snapshot) {
	score := fmt.Sprintf("Score: %d/%d", snap.CorrectHits, snap.TotalHits)
	meaning := "Meaning: " + snap.CurrentMeaning
	timer := fmt.Sprintf("Time Left: %ds", snap.TimeLeft)

	a.drawText(0, 0, styleHUD, score)
	a.drawText(max(a.layout.cols/2-len(meaning)/2, len(score)+2), 0, styleHUD, meaning)
	a.drawText(a.layout.cols-len(timer), 0, styleHUD, timer)
}

func (a *App) drawBow(b game.Bow) {
	c := a.layout.col(b.X)
	r := a.layout.row(b.Y)
	span := max(int(b.Radius/cellHeight), 1)

	for dy := -span; dy <= span; dy++ {
		ch := '('
		switch {
		case dy == -span:
			ch = '/'
		case dy == span:
			ch = '\\'
		}
		a.setCell(c-1, r+dy, ch, styleBow)
	}

	// string, drawn back toward the grip right after a shot
	sc := c
	if b.Pull < 0 {
		sc = c - 1 + int(b.Pull/cellWidth)
	}
	a.setCell(max(sc, 0), r, '<', styleString)
}

func (a *App) drawArrow(arrow game.Arrow) {
	c := a.layout.col(arrow.X)
	r := a.layout.row(arrow.Y)
	shaft := int(game.ArrowLength / cellWidth)
	for i := 0; i < shaft-1; i++ {
		a.setCell(c+i, r, '─', styleArrow)
	}
	a.setCell(c+shaft-1, r, '>', styleArrow)
}

func (a *App) drawWord(w game.Word) {
	c := a.layout.col(w.X)
	r := a.layout.row(w.Y)
	n := a.drawText(c, r, styleWord, w.Word)
	if w.Pronunciation != "" {
		a.drawText(c+n+1, r, stylePron, "("+w.Pronunciation+")")
	}
}

func (a *App) drawOverlay(snap game.Snapshot) {
	mid := hudRows + a.layout.fieldRows()/2

	if snap.MessageVisible() {
		style := styleCorrect
		if snap.MessageKind == game.MessageWrong {
			style = styleWrong
		}
		a.drawCentered(mid, style, snap.Message)
	}

	switch snap.Phase {
	case game.PhaseIdle:
		a.drawCentered(mid, styleHUD, "Press Enter to start")
	case game.PhaseEnded:
		a.drawCentered(mid-1, styleHUD, fmt.Sprintf("Game Over! Your Score: %d/%d", snap.CorrectHits, snap.TotalHits))
		a.drawCentered(mid+1, styleHUD, "Press Enter to play again")
	}

	if a.notice != "" {
		a.drawCentered(mid+2, styleNotice, a.notice)
	}
}

func (a *App) drawCentered(r int, style tcell.Style, text string) {
	a.drawText(max(a.layout.cols/2-len([]rune(text))/2, 0), r, style, text)
}

// drawText writes text clipped to the screen and returns the number of cells used
func (a *App) drawText(c, r int, style tcell.Style, text string) int {
	n := 0
	for _, ch := range text {
		a.setCell(c+n, r, ch, style)
		n++
	}
	return n
}

func (a *App) setCell(c, r int, ch rune, style tcell.Style) {
	if c < 0 || r < 0 || c >= a.layout.cols || r >= a.layout.rows {
		return
	}
	a.screen.SetContent(c, r, ch, nil, style)
}
