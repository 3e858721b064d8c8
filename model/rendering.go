package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosYoung = "██"
	gridPosOld   = "▓▓"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid to the terminal, newborn cells brighter than old ones
func (r *TerminalRenderer) Display(g *Grid) {
	w := r.out()
	for row := range g.dimension {
		for col := range g.dimension {
			switch g.cells[row*g.dimension+col].Age() {
			case "young":
				fmt.Fprint(w, gridPosYoung)
			case "old":
				fmt.Fprint(w, gridPosOld)
			default:
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen. It does nothing when Out is not standard output.
func (r *TerminalRenderer) Clear() {
	if r.out() != io.Writer(os.Stdout) {
		return
	}
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
