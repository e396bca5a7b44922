package game

import (
	"fmt"
	"strconv"

	"github.com/ajai-sharma-backup/2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColor picks a display color for a tile value. The palette brightens
// with the tile rank so big merges stand out.
func tileColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorGray
	case 4:
		return core.ColorWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorBrightYellow
	case 32:
		return core.ColorOrange
	case 64:
		return core.ColorBrightRed
	case 128, 256:
		return core.ColorBrightGreen
	case 512, 1024:
		return core.ColorBrightCyan
	case 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightWhite
	}
}

// Render draws the session to the screen buffer.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	n := s.grid.Size()
	boardW := n*cellWidth + 1
	boardH := n*cellHeight + 1

	if dst.Width() < boardW+2 || dst.Height() < boardH+hudHeight+2 {
		s.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	s.renderHUD(dst, boardX, boardW)
	s.renderGridLines(dst, boardX, boardY)
	s.renderTiles(dst, boardX, boardY)
	s.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (s *Session) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and the score line.
func (s *Session) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", s.score)
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", s.maxScore)
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX+len(scoreStr)+2 {
		bestX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(bestX, 1, bestStr)

	maxStr := fmt.Sprintf("Max tile: %d", s.grid.MaxTile())
	dst.DrawText(boardX, 2, maxStr)
}

// renderGridLines draws the board frame with box-drawing characters.
func (s *Session) renderGridLines(dst *core.Screen, boardX, boardY int) {
	n := s.grid.Size()
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// renderTiles draws the tiles. While an animation is running, cells the
// engine reported as event destinations are hidden and the moving tiles
// are drawn at their interpolated positions instead.
func (s *Session) renderTiles(dst *core.Screen, boardX, boardY int) {
	n := s.grid.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if s.animating && s.suppressed[[2]int{r, c}] {
				continue
			}
			v := s.grid.At(r, c)
			if v == 0 {
				continue
			}
			s.drawTile(dst, boardX, boardY, float64(r), float64(c), v, false)
		}
	}

	if !s.animating {
		return
	}
	for i := range s.animations {
		a := &s.animations[i]
		if a.IsNew && a.Progress < 0.3 {
			continue // pop-in delay
		}
		row, col := a.interpolate()
		s.drawTile(dst, boardX, boardY, row, col, a.Value, a.Merged && a.Progress >= 0.8)
	}
}

// drawTile renders one tile value centered in its (possibly fractional)
// cell position.
func (s *Session) drawTile(dst *core.Screen, boardX, boardY int, row, col float64, value int, emphasized bool) {
	cellX := boardX + int(col*cellWidth+0.5) + 1
	cellY := boardY + int(row*cellHeight+0.5) + 1

	valStr := strconv.Itoa(value)
	padLeft := (cellWidth - 1 - len(valStr)) / 2
	if padLeft < 0 {
		padLeft = 0
	}

	color := tileColor(value)
	if emphasized {
		color = core.ColorBrightWhite
	}
	dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
}

// renderOverlays draws the paused and game-over overlays.
func (s *Session) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if s.paused {
		s.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if s.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", s.grid.MaxTile())
		s.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press N for a new game")
	}
}

// drawOverlay draws a centered boxed message.
func (s *Session) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
