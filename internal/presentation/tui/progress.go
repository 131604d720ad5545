package tui

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders a progress bar like: ■■■■□□□□ 2/4
type Progress struct {
	Current int
	Total   int
	Width   int // character width of the bar portion
}

// View returns the rendered progress bar string.
func (p Progress) View() string {
	if p.Total <= 0 || p.Width <= 0 {
		return ""
	}

	current := min(max(p.Current, 0), p.Total)
	filled := (current * p.Width) / p.Total

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)
	return fmt.Sprintf("%s %d/%d", bar, current, p.Total)
}
