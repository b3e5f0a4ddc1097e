package status

import (
	"fmt"

	"github.com/miosa/osa-wheel/style"
)

// PositionPill renders where the focused column stands, e.g. "4/12".
// Rows are shown 1-based. Returns "" for an empty column.
func PositionPill(row, rows int) string {
	if rows <= 0 || row < 0 {
		return ""
	}
	at := style.StatusValue.Render(fmt.Sprintf("%d", row+1))
	total := style.Faint.Render(fmt.Sprintf("%d", rows))
	return at + style.Faint.Render("/") + total
}
