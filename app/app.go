// Package app is the root Bubble Tea model of the wheel demo: a framed
// picker over a column file or preset, with a status line, toasts and a help
// overlay.
package app

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-wheel/config"
	"github.com/miosa/osa-wheel/markdown"
	"github.com/miosa/osa-wheel/msg"
	"github.com/miosa/osa-wheel/source"
	"github.com/miosa/osa-wheel/style"
	"github.com/miosa/osa-wheel/ui/clipboard"
	"github.com/miosa/osa-wheel/ui/common"
	"github.com/miosa/osa-wheel/ui/picker"
	"github.com/miosa/osa-wheel/ui/status"
	"github.com/miosa/osa-wheel/ui/toast"
)

// ProfileDir is set by main to the user's profile directory path.
var ProfileDir string

// DefaultPreset is shown when neither a column file nor a preset is given.
const DefaultPreset = "clock"

// Options selects what the demo shows.
type Options struct {
	Path    string // column file; takes precedence over Preset
	Preset  string
	Config  config.Config
	NoWatch bool             // do not follow changes to Path
	Now     func() time.Time // seeds time-based presets
}

// Model is the root Bubble Tea model.
type Model struct {
	picker  picker.Model
	set     *source.Set
	watcher *source.Watcher
	toasts  toast.Model

	state  State
	layout Layout
	keys   KeyMap
	cfg    config.Config
	opts   Options

	width  int
	height int
	err    error
	last   *msg.RowSelected
}

// New loads the columns and builds the picker. A load failure leaves the
// model in StateError with an empty picker; ctrl+r retries.
func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Path == "" && opts.Preset == "" {
		opts.Preset = DefaultPreset
	}
	cfg := opts.Config

	m := Model{
		toasts: toast.New(),
		state:  StateLoading,
		keys:   DefaultKeyMap(),
		cfg:    cfg,
		opts:   opts,
		width:  80,
		height: 24,
	}

	set, err := m.loadSet()
	if err != nil {
		log.Printf("warning: %v", err)
		m.err = err
	}
	m.set = set

	popts := []picker.Option{
		picker.WithOverscan(cfg.Overscan),
		picker.WithAnimationDuration(time.Duration(cfg.AnimationMillis) * time.Millisecond),
		picker.WithFriction(cfg.Friction),
		picker.WithFPS(cfg.FPS),
		picker.WithShowsSelectionIndicator(cfg.ShowsSelectionIndicator),
		picker.WithColumnGap(cfg.ColumnGap),
		picker.WithDefaultColumnWidth(cfg.DefaultColumnWidth),
		picker.WithRail(cfg.Rail),
	}
	if set != nil {
		m.picker = picker.New(set, append(popts, picker.WithDelegate(set))...)
		m.applyInitial()
	} else {
		m.picker = picker.New(nil, popts...)
	}
	m.picker.Focus()

	if opts.Path != "" && !opts.NoWatch {
		w, err := source.Watch(opts.Path)
		if err != nil {
			log.Printf("warning: %v", err)
		} else {
			m.watcher = w
		}
	}
	return m
}

// Close stops the file watcher.
func (m Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

// State is the current application state.
func (m Model) State() State { return m.state }

// Picker exposes the hosted picker.
func (m Model) Picker() picker.Model { return m.picker }

// Set is the loaded column set, or nil after a failed first load.
func (m Model) Set() *source.Set { return m.set }

// Config is the settings as changed by the toggles.
func (m Model) Config() config.Config { return m.cfg }

// Err is the last load or watch error, cleared by a successful reload.
func (m Model) Err() error { return m.err }

// -- Init ---------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.watchCmd(), func() tea.Msg { return tea.RequestWindowSize() })
}

func (m Model) watchCmd() tea.Cmd {
	if m.watcher == nil || m.watcher.IsClosed() {
		return nil
	}
	return m.watcher.WaitCmd()
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.relayout()
		if m.state == StateLoading {
			m.state = m.settledState()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(v)

	case msg.RowSelected:
		m.last = &v
		return m, nil

	case msg.SourceChanged:
		cmd := m.reload()
		return m, tea.Batch(cmd, m.watchCmd())

	case msg.SourceError:
		log.Printf("warning: watching %s: %v", v.Path, v.Err)
		m.err = v.Err
		return m, tea.Batch(m.toasts.Add("watch failed: "+v.Err.Error(), toast.Warning), m.watchCmd())

	case clipboard.CopiedMsg:
		if v.Err != nil {
			log.Printf("warning: %v", v.Err)
			return m, m.toasts.Add("copy failed", toast.Error)
		}
		return m, m.toasts.Add("copied "+common.Truncate(v.Text, 30), toast.Info)

	case toast.ExpireMsg:
		m.toasts = m.toasts.Update(v)
		return m, nil

	case tea.MouseMsg:
		// The help overlay and the error text hide the picker.
		if m.state != StateReady {
			return m, nil
		}
	}

	// Frame ticks and mouse gestures belong to the picker.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(rawMsg)
	return m, cmd
}

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches[tea.KeyPressMsg](k, m.keys.Quit) {
		if err := m.Close(); err != nil {
			log.Printf("warning: closing watcher: %v", err)
		}
		return m, tea.Quit
	}

	if m.state == StateHelp {
		// Any other key dismisses the overlay.
		m.state = m.settledState()
		return m, nil
	}

	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.Reload):
		return m, m.reload()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Copy):
		if text := m.statusBar().Plain(); text != "" {
			return m, clipboard.Copy(text)
		}
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.Save):
		if err := config.Save(ProfileDir, m.cfg); err != nil {
			log.Printf("warning: saving settings: %v", err)
			return m, m.toasts.Add("save failed: "+err.Error(), toast.Error)
		}
		return m, m.toasts.Add("saved "+common.PrettyPath(config.Path(ProfileDir)), toast.Info)

	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleIndicator):
		m.cfg.ShowsSelectionIndicator = !m.picker.ShowsSelectionIndicator()
		m.picker.SetShowsSelectionIndicator(m.cfg.ShowsSelectionIndicator)
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleRail):
		m.cfg.Rail = !m.picker.Rail()
		m.picker.SetRail(m.cfg.Rail)
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.CycleTheme):
		name := nextTheme(style.CurrentThemeName)
		style.SetTheme(name)
		m.cfg.Theme = name
		return m, m.toasts.Add("theme "+name, toast.Info)
	}

	if m.state != StateReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(k)
	return m, cmd
}

// -- Columns ------------------------------------------------------------------

func (m Model) loadSet() (*source.Set, error) {
	if m.opts.Path != "" {
		return source.Load(m.opts.Path)
	}
	return source.Preset(m.opts.Preset, m.opts.Now())
}

// reload re-reads the columns and rebuilds every wheel. On failure the old
// columns stay on screen.
func (m *Model) reload() tea.Cmd {
	set, err := m.loadSet()
	if err != nil {
		log.Printf("warning: reloading columns: %v", err)
		m.err = err
		if m.state != StateHelp && m.set == nil {
			m.state = StateError
		}
		return m.toasts.Add("reload failed", toast.Error)
	}
	m.set = set
	m.err = nil
	m.last = nil
	m.picker.SetSource(set)
	m.picker.SetDelegate(set)
	m.picker.ReloadAllComponents()
	m.applyInitial()
	if m.state == StateError {
		m.state = StateReady
	}
	return m.toasts.Add("reloaded "+m.sourceName(), toast.Info)
}

// applyInitial moves every column to the row its definition asks for.
func (m *Model) applyInitial() {
	for c := range m.picker.NumberOfComponents() {
		row := m.set.Initial(c)
		if row == 0 {
			continue
		}
		if err := m.picker.SelectRow(row, c, false); err != nil {
			log.Printf("warning: column %q: %v", m.set.Header(c), err)
		}
	}
}

func (m Model) sourceName() string {
	if m.opts.Path != "" {
		return filepath.Base(m.opts.Path)
	}
	return m.opts.Preset
}

func (m Model) settledState() State {
	if m.set == nil {
		return StateError
	}
	return StateReady
}

func (m *Model) relayout() {
	m.layout = ComputeLayout(m.width, m.height)
	m.picker.SetSize(m.layout.PickerWidth, m.layout.PickerHeight)
	m.picker.SetOrigin(m.layout.PickerX, m.layout.PickerY)
}

func nextTheme(current string) string {
	for i, n := range style.ThemeNames {
		if n == current {
			return style.ThemeNames[(i+1)%len(style.ThemeNames)]
		}
	}
	return style.ThemeNames[0]
}

// -- View ---------------------------------------------------------------------

// View renders the current model state as a tea.View.
// AltScreen and MouseMode are set on every frame.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) renderView() string {
	switch m.state {
	case StateLoading:
		return style.Faint.Render("loading…")
	case StateHelp:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderHelp())
	}

	sections := []string{m.renderHeader(), m.renderFrame()}
	if t := m.toasts.View(m.width); t != "" {
		sections = append(sections, t)
	}
	body := strings.Join(sections, "\n")

	// Pin the status lines to the bottom.
	used := lipgloss.Height(body)
	if gap := m.height - used - m.layout.StatusHeight; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + m.renderStatus()
}

func (m Model) renderHeader() string {
	title := style.ApplyBoldForegroundGrad("wheel")
	parts := []string{title}
	if m.set != nil && m.set.Name != "" {
		parts = append(parts, style.BannerDetail.Render(m.set.Name))
	}
	if m.opts.Path != "" {
		parts = append(parts, style.Faint.Render(common.TruncatePath(common.PrettyPath(m.opts.Path), max(m.width/2, 10))))
	}
	return " " + strings.Join(parts, "  ") + "\n" + common.Divider(m.width)
}

func (m Model) renderFrame() string {
	var inner string
	if m.state == StateError {
		inner = style.ErrorText.Render("no columns loaded") + "\n" +
			style.Hint.Render("fix the file and press ctrl+r")
	} else {
		inner = m.picker.View()
	}
	inner = lipgloss.Place(m.layout.PickerWidth, m.layout.PickerHeight, lipgloss.Left, lipgloss.Top, inner)
	return style.PickerFrame.Render(inner)
}

func (m Model) renderStatus() string {
	return m.statusBar().View(m.width)
}

// statusBar lists "column value" for every column, highlighting the column
// that settled last.
func (m Model) statusBar() status.Model {
	sb := status.New()
	sb.SetError(m.err)
	sb.SetKeys(append(m.picker.KeyMap().ShortHelp(), m.keys.ShortHelp()...)...)
	if m.set == nil {
		return sb
	}
	entries := make([]status.Entry, 0, m.picker.NumberOfComponents())
	highlight := -1
	for c := range m.picker.NumberOfComponents() {
		row, err := m.picker.SelectedRowInComponent(c)
		if err != nil || row < 0 {
			continue
		}
		if m.last != nil && m.last.Component == c {
			highlight = len(entries)
		}
		title, _ := m.set.TitleForRow(row, c)
		entries = append(entries, status.Entry{Label: m.set.Header(c), Value: title})
	}
	sb.SetSelection(entries, highlight)
	if c := m.picker.FocusedComponent(); c >= 0 {
		row, _ := m.picker.SelectedRowInComponent(c)
		rows, _ := m.picker.NumberOfRowsInComponent(c)
		sb.SetPosition(row, rows)
	}
	return sb
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n| key | action |\n|---|---|\n")
	rows := append(m.picker.KeyMap().FullHelp(), m.keys.FullHelp()...)
	for _, k := range rows {
		h := k.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\nDrag a column or use the mouse wheel to spin it. Click a row to select it.\n")
	return markdown.Render(b.String()) + "\n\n" + style.Hint.Render("press any key to close")
}
