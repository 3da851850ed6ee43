package model

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws boards to a terminal
type TerminalRenderer struct {
	out  io.Writer
	live string
	dead string
}

// NewTerminalRenderer renders to out, colouring live cells unless plain is set
func NewTerminalRenderer(out io.Writer, plain bool) *TerminalRenderer {
	au := aurora.NewAurora(!plain)
	return &TerminalRenderer{
		out:  out,
		live: au.Green(gridPosBlock).BgBrightGreen().String(),
		dead: gridPosEmpty,
	}
}

// Display renders the board, one terminal line per row
func (r *TerminalRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.out)
	for row := range b.rows {
		for col := range b.cols {
			if b.cells[row][col] {
				w.WriteString(r.live)
			} else {
				w.WriteString(r.dead)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, clearScreen)
	return err
}
