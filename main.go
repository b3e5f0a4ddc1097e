package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-wheel/app"
	"github.com/miosa/osa-wheel/config"
	"github.com/miosa/osa-wheel/source"
	"github.com/miosa/osa-wheel/style"
)

var version = "dev"

func main() {
	profileFlag := flag.String("profile", "", "Named profile for settings isolation (~/.osa-wheel/profiles/<name>)")
	themeFlag := flag.String("theme", "", "Color theme ("+strings.Join(style.ThemeNames, ", ")+")")
	presetFlag := flag.String("preset", "", "Built-in columns ("+strings.Join(source.PresetNames(), ", ")+")")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	noWatch := flag.Bool("no-watch", false, "Do not reload the column file when it changes")
	logFile := flag.String("log", "", "Append debug log to this file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "V", false, "Show version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: wheel [flags] [columns.yaml|columns.json]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("wheel %s\n", version)
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "wheel")
		if err != nil {
			fmt.Fprintf(os.Stderr, "wheel: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	home, _ := os.UserHomeDir()
	app.ProfileDir = filepath.Join(home, ".osa-wheel")
	if *profileFlag != "" {
		app.ProfileDir = filepath.Join(home, ".osa-wheel", "profiles", *profileFlag)
	}
	cfg := config.Load(app.ProfileDir)

	// Theme precedence: --no-color, --theme, saved setting, then the terminal
	// background. Detection must happen before any rendering.
	switch {
	case *noColor || os.Getenv("NO_COLOR") != "":
		style.SetTheme("mono")
	case *themeFlag != "":
		if !style.SetTheme(*themeFlag) {
			fmt.Fprintf(os.Stderr, "wheel: unknown theme %q\n", *themeFlag)
			os.Exit(2)
		}
	case cfg.Theme != "" && style.SetTheme(cfg.Theme):
	case lipgloss.HasDarkBackground(os.Stdin, os.Stdout):
		style.SetTheme("dark")
	default:
		style.SetTheme("light")
	}

	m := app.New(app.Options{
		Path:    flag.Arg(0),
		Preset:  *presetFlag,
		Config:  cfg,
		NoWatch: *noWatch,
	})

	final, err := tea.NewProgram(m).Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wheel: %v\n", err)
		os.Exit(1)
	}
}
