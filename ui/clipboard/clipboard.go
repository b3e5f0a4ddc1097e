// Package clipboard copies the picker's selection out of the terminal. The
// platform's clipboard command is preferred; without one the text goes out as
// an OSC 52 sequence, which also works over SSH.
package clipboard

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// CopiedMsg reports a finished copy. Err is nil on success.
type CopiedMsg struct {
	Text string
	Err  error
}

// Copy returns a command that copies text and reports a CopiedMsg.
func Copy(text string) tea.Cmd {
	name, args := Command(runtime.GOOS, exec.LookPath)
	if name == "" {
		return tea.Sequence(
			tea.SetClipboard(text),
			func() tea.Msg { return CopiedMsg{Text: text} },
		)
	}
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: run(name, args, text)}
	}
}

func run(name string, args []string, text string) error {
	c := exec.Command(name, args...)
	c.Stdin = strings.NewReader(text)
	c.Stdout = io.Discard
	if err := c.Run(); err != nil {
		return fmt.Errorf("clipboard: %s: %w", name, err)
	}
	return nil
}

// Command picks the clipboard command for goos, or "" when there is none
// and OSC 52 has to do.
func Command(goos string, lookPath func(string) (string, error)) (string, []string) {
	switch goos {
	case "darwin":
		return "pbcopy", nil

	case "windows":
		return "clip", nil

	case "linux", "freebsd", "openbsd", "netbsd":
		candidates := []struct {
			name string
			args []string
		}{
			{"wl-copy", nil},
			{"xclip", []string{"-in", "-selection", "clipboard"}},
			{"xsel", []string{"--clipboard", "--input"}},
		}
		for _, c := range candidates {
			if path, err := lookPath(c.name); err == nil {
				return path, c.args
			}
		}
	}
	return "", nil
}
