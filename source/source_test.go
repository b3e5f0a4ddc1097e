package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/miosa/osa-wheel/markdown"
	"github.com/miosa/osa-wheel/msg"
	"github.com/miosa/osa-wheel/ui/picker"
)

const sampleYAML = `
name: coffee
columns:
  - title: size
    rows: [small, medium, large]
    width: 8
    selected: 1
  - title: shots
    range: {from: 1, to: 4}
  - title: notes
    format: markdown
    height: 2
    rows: ["**hot**", "_iced_"]
`

const sampleJSON = `{
  "name": "coffee",
  "columns": [
    {"title": "size", "rows": ["small", "medium", "large"], "width": 8, "selected": 1},
    {"title": "shots", "range": {"from": 1, "to": 4}},
    {"title": "notes", "format": "markdown", "height": 2, "rows": ["**hot**", "_iced_"]}
  ]
}`

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

func TestParse_YAMLAndJSONAgree(t *testing.T) {
	for _, tc := range []struct{ format, body string }{
		{".yaml", sampleYAML},
		{"yml", sampleYAML},
		{".json", sampleJSON},
	} {
		t.Run(tc.format, func(t *testing.T) {
			s, err := Parse([]byte(tc.body), tc.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if s.Name != "coffee" || s.NumberOfComponents() != 3 {
				t.Fatalf("unexpected set %+v", s)
			}
			if s.NumberOfRows(1) != 4 {
				t.Errorf("range should expand to 4 rows, got %d", s.NumberOfRows(1))
			}
			if s.Initial(0) != 1 {
				t.Errorf("want initial 1, got %d", s.Initial(0))
			}
			if s.Header(2) != "notes" {
				t.Errorf("want header notes, got %q", s.Header(2))
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name, format, body string
	}{
		{"bad yaml", "yaml", "columns: [\n"},
		{"bad json", "json", "{"},
		{"unknown format", "yaml", "columns: [{title: a, format: html}]"},
		{"rows and range", "yaml", "columns: [{rows: [a], range: {from: 1, to: 2}}]"},
		{"empty range", "yaml", "columns: [{range: {from: 5, to: 1}}]"},
		{"selected out of range", "yaml", "columns: [{rows: [a, b], selected: 2}]"},
		{"selected on empty column", "yaml", "columns: [{title: x, selected: 1}]"},
		{"range too large", "yaml", "columns: [{range: {from: 0, to: 100000}}]"},
		{"span wider than int", "yaml", "columns: [{range: {from: -9223372036854775808, to: 9223372036854775807}}]"},
		{"huge span in json", "json", `{"columns": [{"range": {"from": -9223372036854775807, "to": 9223372036854775807, "step": 2}}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.body), c.format); err == nil {
				t.Error("want an error")
			}
		})
	}
	if _, err := Parse([]byte("x"), ".toml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestRange_Padding(t *testing.T) {
	rows, err := Range{From: 0, To: 10, Step: 5, Pad: 2}.rows()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"00", "05", "10"}
	if len(rows) != len(want) {
		t.Fatalf("want %v, got %v", want, rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: want %q, got %q", i, want[i], rows[i])
		}
	}
}

func TestRange_EndsAtMaxInt(t *testing.T) {
	s, err := Parse([]byte("columns: [{title: x, range: {from: 9223372036854775806, to: 9223372036854775807}}]"), "yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"9223372036854775806", "9223372036854775807"}
	if got := s.Columns[0].Rows; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestRange_StepStopsAtTo(t *testing.T) {
	rows, err := Range{From: 1, To: 10, Step: 4}.rows()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "5", "9"}
	if len(rows) != len(want) {
		t.Fatalf("want %v, got %v", want, rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: want %q, got %q", i, want[i], rows[i])
		}
	}
}

func TestValidate_EmptyColumnDefaultSelection(t *testing.T) {
	if _, err := Parse([]byte("columns: [{title: x}]"), "yaml"); err != nil {
		t.Errorf("an empty column with no selection should parse: %v", err)
	}
}

func TestLoad_NameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drinks.yaml")
	if err := os.WriteFile(path, []byte("columns: [{rows: [a]}]"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "drinks" {
		t.Errorf("want name from file, got %q", s.Name)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

// ---------------------------------------------------------------------------
// Delegate capabilities
// ---------------------------------------------------------------------------

func TestSet_ImplementsPickerCapabilities(t *testing.T) {
	var s any = &Set{}
	if _, ok := s.(picker.DataSource); !ok {
		t.Error("not a DataSource")
	}
	if _, ok := s.(picker.WidthProvider); !ok {
		t.Error("not a WidthProvider")
	}
	if _, ok := s.(picker.RowHeightProvider); !ok {
		t.Error("not a RowHeightProvider")
	}
	if _, ok := s.(picker.TitleProvider); !ok {
		t.Error("not a TitleProvider")
	}
	if _, ok := s.(picker.ViewProvider); !ok {
		t.Error("not a ViewProvider")
	}
	if _, ok := s.(picker.SelectionObserver); !ok {
		t.Error("not a SelectionObserver")
	}
}

func TestSet_ViewForRowRefurbishes(t *testing.T) {
	s, err := Parse([]byte(sampleYAML), "yaml")
	if err != nil {
		t.Fatal(err)
	}
	v := s.ViewForRow(0, 0, nil)
	l, ok := v.(*picker.Label)
	if !ok || l.Text != "small" {
		t.Fatalf("want label small, got %#v", v)
	}
	if again := s.ViewForRow(2, 0, l); again != l || l.Text != "large" {
		t.Errorf("want the offered label refurbished, got %#v", again)
	}

	b, ok := s.ViewForRow(1, 2, l).(*markdown.Block)
	if !ok {
		t.Fatal("markdown column should render blocks")
	}
	if b.Source() != "_iced_" {
		t.Errorf("want _iced_, got %q", b.Source())
	}
	if again := s.ViewForRow(0, 2, b); again != b || b.Source() != "**hot**" {
		t.Error("want the offered block refurbished")
	}
}

func TestSet_OutOfRangeQueries(t *testing.T) {
	s := &Set{Columns: []Column{{Rows: []string{"a"}}}}
	if s.NumberOfRows(3) != 0 || s.WidthForComponent(-1) != 0 {
		t.Error("unknown columns should report zero")
	}
	if _, ok := s.TitleForRow(5, 0); ok {
		t.Error("unknown rows have no title")
	}
}

func TestSet_RecordsSelection(t *testing.T) {
	s := &Set{}
	if _, ok := s.Selected(0); ok {
		t.Error("nothing selected yet")
	}
	s.DidSelectRow(4, 1)
	if row, ok := s.Selected(1); !ok || row != 4 {
		t.Errorf("want 4, got %d %v", row, ok)
	}
}

// ---------------------------------------------------------------------------
// Presets
// ---------------------------------------------------------------------------

func TestPreset_Clock(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	s, err := Preset("clock", now)
	if err != nil {
		t.Fatal(err)
	}
	if s.NumberOfRows(0) != 24 || s.NumberOfRows(1) != 60 {
		t.Errorf("want 24/60 rows, got %d/%d", s.NumberOfRows(0), s.NumberOfRows(1))
	}
	if title, _ := s.TitleForRow(s.Initial(0), 0); title != "15" {
		t.Errorf("want hour 15, got %q", title)
	}
	if title, _ := s.TitleForRow(s.Initial(2), 2); title != "26" {
		t.Errorf("want second 26, got %q", title)
	}
}

func TestPreset_Dates(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	s, err := Preset("dates", now)
	if err != nil {
		t.Fatal(err)
	}
	if m, _ := s.TitleForRow(s.Initial(0), 0); m != "October" {
		t.Errorf("want October, got %q", m)
	}
	if y, _ := s.TitleForRow(s.Initial(2), 2); y != "2026" {
		t.Errorf("want 2026, got %q", y)
	}
}

func TestPreset_DemoShape(t *testing.T) {
	s, err := Preset("demo", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	got := []int{s.NumberOfRows(0), s.NumberOfRows(1), s.NumberOfRows(2)}
	if got[0] != 5 || got[1] != 1 || got[2] != 0 {
		t.Errorf("want rows {5,1,0}, got %v", got)
	}
}

func TestPreset_Unknown(t *testing.T) {
	if _, err := Preset("nope", time.Now()); err == nil {
		t.Error("want an error")
	}
	if len(PresetNames()) != 3 {
		t.Errorf("want 3 presets, got %v", PresetNames())
	}
}

// ---------------------------------------------------------------------------
// Watcher
// ---------------------------------------------------------------------------

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cols.yaml")
	if err := os.WriteFile(path, []byte("columns: []"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()
	w.debounce = 10 * time.Millisecond

	got := make(chan any, 1)
	go func() { got <- w.WaitCmd()() }()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("columns: [{rows: [a]}]"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case m := <-got:
		changed, ok := m.(msg.SourceChanged)
		if !ok {
			t.Fatalf("want SourceChanged, got %#v", m)
		}
		if changed.Path != w.Path() {
			t.Errorf("want path %q, got %q", w.Path(), changed.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_CloseUnblocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cols.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	got := make(chan any, 1)
	go func() { got <- w.WaitCmd()() }()
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !w.IsClosed() {
		t.Error("want closed")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	select {
	case m := <-got:
		if m != nil {
			t.Errorf("want nil after close, got %#v", m)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WaitCmd did not return after Close")
	}
}
