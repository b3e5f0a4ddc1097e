package clipboard

import (
	"errors"
	"testing"
)

func lookup(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		found    []string
		wantName string
		wantArgs int
	}{
		{"mac", "darwin", nil, "pbcopy", 0},
		{"windows", "windows", nil, "clip", 0},
		{"wayland first", "linux", []string{"xclip", "wl-copy"}, "/usr/bin/wl-copy", 0},
		{"xclip", "linux", []string{"xclip", "xsel"}, "/usr/bin/xclip", 3},
		{"xsel", "freebsd", []string{"xsel"}, "/usr/bin/xsel", 2},
		{"nothing on linux", "linux", nil, "", 0},
		{"unknown os", "plan9", []string{"xclip"}, "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, args := Command(tc.goos, lookup(tc.found...))
			if name != tc.wantName {
				t.Errorf("command: want %q, got %q", tc.wantName, name)
			}
			if len(args) != tc.wantArgs {
				t.Errorf("args: want %d, got %v", tc.wantArgs, args)
			}
		})
	}
}

func TestCopy_ReturnsCommand(t *testing.T) {
	if Copy("hour 13") == nil {
		t.Fatal("want a command")
	}
}
