package duel

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockduel/internal/config"
	platformcore "github.com/vovakirdan/blockduel/internal/core"
	"github.com/vovakirdan/blockduel/internal/games/duel/core"
)

// Layout constants
const (
	cellW     = 2                   // Screen columns per board cell
	boardW    = core.Cols*cellW + 2 // Board width including border
	boardH    = core.Rows + 2       // Board height including border
	boardGap  = 4                   // Columns between the two boards
	minHeight = boardH + 2          // Header and footer rows
	emptyChar = '·'
	blockChar = '█'
)

// cellColors maps board tags to screen colors.
var cellColors = map[core.Cell]platformcore.Color{
	core.CellO:       platformcore.ColorYellow,
	core.CellI:       platformcore.ColorCyan,
	core.CellS:       platformcore.ColorGreen,
	core.CellZ:       platformcore.ColorRed,
	core.CellL:       platformcore.ColorOrange,
	core.CellJ:       platformcore.ColorBlue,
	core.CellT:       platformcore.ColorMagenta,
	core.CellGarbage: platformcore.ColorGray,
}

// Snapshots returns a copy of every board in play, player 1 first.
func (g *Game) Snapshots() []core.Snapshot {
	sessions := g.sessions()
	out := make([]core.Snapshot, len(sessions))
	for i, s := range sessions {
		out[i] = s.Snapshot()
	}
	return out
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	snaps := g.Snapshots()
	if len(snaps) == 0 {
		return
	}

	totalW := len(snaps)*boardW + (len(snaps)-1)*boardGap
	if dst.Width() < totalW || dst.Height() < minHeight {
		drawCenteredMessage(dst, "Terminal too small", fmt.Sprintf("need %dx%d", totalW, minHeight))
		return
	}

	x0 := (dst.Width() - totalW) / 2
	y0 := (dst.Height() - minHeight) / 2
	for i, snap := range snaps {
		g.drawBoard(dst, x0+i*(boardW+boardGap), y0, i, snap)
	}

	dst.DrawTextCenteredColored(y0+minHeight-1, g.footer(), platformcore.ColorGray)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press "+keyLabel(g.cfg.Controls.Global.Pause)+" to resume")
	}
}

// drawBoard draws one player's header, well, stack and falling piece.
func (g *Game) drawBoard(dst *platformcore.Screen, x, y, idx int, snap core.Snapshot) {
	label := "SCORE"
	if g.solo == nil {
		label = core.Side(idx).String()
	}
	dst.DrawTextColored(x, y, fmt.Sprintf("%s %d", label, snap.Score), platformcore.ColorBrightWhite)
	lines := fmt.Sprintf("L %d", snap.Stats.Lines)
	dst.DrawText(x+boardW-len(lines), y, lines)

	border := platformcore.ColorWhite
	if snap.GameOver {
		border = platformcore.ColorRed
	}
	box := platformcore.NewRect(x, y+1, boardW, boardH)
	dst.DrawBoxColored(box, border)
	inner := box.Inner()

	for r := range core.Rows {
		for c := range core.Cols {
			drawCell(dst, inner.X+c*cellW, inner.Y+r, snap.Board[r][c])
		}
	}

	if !snap.GameOver {
		for _, lc := range snap.Piece.Cells() {
			if lc.Row < 0 || lc.Row >= core.Rows {
				continue
			}
			drawCell(dst, inner.X+lc.Col*cellW, inner.Y+lc.Row, lc.Tag)
		}
	}

	mid := inner.Y + inner.H/2
	if b := g.banners[idx]; b.text != "" && g.tick < b.expires {
		drawBoardText(dst, inner, mid-2, b.text, platformcore.ColorBrightWhite)
	}
	if snap.GameOver {
		drawBoardText(dst, inner, mid, "GAME OVER", platformcore.ColorRed)
		drawBoardText(dst, inner, mid+1, "press "+keyLabel(g.restartKeys(idx))+" to restart", platformcore.ColorGray)
	}
}

func drawCell(dst *platformcore.Screen, x, y int, tag core.Cell) {
	if tag == core.CellEmpty {
		dst.SetColored(x, y, emptyChar, platformcore.ColorGray)
		dst.Set(x+1, y, ' ')
		return
	}
	color := cellColors[tag]
	dst.SetColored(x, y, blockChar, color)
	dst.SetColored(x+1, y, blockChar, color)
}

// drawBoardText centers text on one row of a board, blanking the row first.
func drawBoardText(dst *platformcore.Screen, area platformcore.Rect, y int, text string, c platformcore.Color) {
	dst.DrawRect(platformcore.NewRect(area.X, y, area.W, 1), ' ')
	n := len([]rune(text))
	dst.DrawTextColored(area.X+platformcore.Max((area.W-n)/2, 0), y, text, c)
}

// footer returns the winner line once a duel is decided, the controls
// otherwise.
func (g *Game) footer() string {
	if g.solo == nil {
		switch g.outcome() {
		case core.Player1Wins:
			return "P1 WINS"
		case core.Player2Wins:
			return "P2 WINS"
		case core.Draw:
			return "DRAW"
		}
	}

	c := g.cfg.Controls
	hint := "P1 " + playerHint(c.Player1)
	if g.solo == nil {
		hint += "   P2 " + playerHint(c.Player2)
	}
	return hint + "   " + keyLabel(c.Global.Pause) + " pause"
}

func (g *Game) restartKeys(idx int) []string {
	if idx == int(core.Player2) {
		return g.cfg.Controls.Player2.Restart
	}
	return g.cfg.Controls.Player1.Restart
}

func playerHint(pc config.PlayerControls) string {
	return strings.Join([]string{
		keyLabel(pc.Left),
		keyLabel(pc.Right),
		keyLabel(pc.Rotate),
		keyLabel(pc.SoftDrop),
		keyLabel(pc.HardDrop),
	}, "/")
}

// keyLabel returns a printable name for the first key of a binding.
func keyLabel(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := platformcore.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := platformcore.Max((w-boxW)/2, 0)
	boxY := platformcore.Max((h-boxH)/2, 0)

	// Draw box
	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
