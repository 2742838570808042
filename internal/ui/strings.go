package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given cell width, adding an ellipsis if
// needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	return runewidth.Truncate(value, limit, "…")
}

// formatCells renders a pixel quantity in terminal cells.
func formatCells(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
