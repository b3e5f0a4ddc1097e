// Package common provides shared rendering helpers used across the picker
// and the demo app.
package common

import (
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/miosa/osa-wheel/style"
)

const ellipsis = "…"

// Truncate shortens s to at most maxWidth cells, ending in "…" when cut.
// Styled input keeps its escape sequences.
func Truncate(s string, maxWidth int) string {
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return ellipsis
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}

// TruncatePath fits path into maxWidth cells by dropping leading directories
// ("…/dir/file"), then by cutting the file name itself.
func TruncatePath(path string, maxWidth int) string {
	if ansi.StringWidth(path) <= maxWidth {
		return path
	}
	sep := string(filepath.Separator)
	parts := strings.Split(filepath.Clean(path), sep)
	for i := 1; i < len(parts); i++ {
		short := ellipsis + sep + strings.Join(parts[i:], sep)
		if ansi.StringWidth(short) <= maxWidth {
			return short
		}
	}
	return Truncate(ellipsis+sep+parts[len(parts)-1], maxWidth)
}

// PrettyPath writes paths under the home directory as ~/...
func PrettyPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join("~", rel)
}

// Divider is a horizontal rule width cells wide in the border color.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(style.Border).Render(strings.Repeat("─", width))
}
