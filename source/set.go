// Package source loads picker columns from YAML or JSON files and built-in
// presets, and serves them to the picker as data source and delegate.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/miosa/osa-wheel/markdown"
	"github.com/miosa/osa-wheel/ui/picker"
	"github.com/miosa/osa-wheel/ui/wheel"
)

// Column formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("source: unsupported file format")

// Range generates numeric rows From..To inclusive. Pad left-pads each number
// with zeros to that many digits.
type Range struct {
	From int `yaml:"from" json:"from"`
	To   int `yaml:"to" json:"to"`
	Step int `yaml:"step,omitempty" json:"step,omitempty"`
	Pad  int `yaml:"pad,omitempty" json:"pad,omitempty"`
}

// Column is one picker component.
type Column struct {
	Title    string   `yaml:"title" json:"title"`
	Rows     []string `yaml:"rows,omitempty" json:"rows,omitempty"`
	Range    *Range   `yaml:"range,omitempty" json:"range,omitempty"`
	Width    float64  `yaml:"width,omitempty" json:"width,omitempty"`
	Height   float64  `yaml:"height,omitempty" json:"height,omitempty"`
	Format   string   `yaml:"format,omitempty" json:"format,omitempty"`
	Selected int      `yaml:"selected,omitempty" json:"selected,omitempty"`
}

// Set is a list of columns plus the selections reported back by the picker.
type Set struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []Column `yaml:"columns" json:"columns"`

	selected map[int]int
}

// Load reads a column file. The format follows the extension: .yaml/.yml or
// .json.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading column file: %w", err)
	}
	s, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a column set. format is a file extension with or without
// the leading dot.
func Parse(data []byte, format string) (*Set, error) {
	var s Set
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := s.expand(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid column set: %w", err)
	}
	return &s, nil
}

// Validate checks every column.
func (s *Set) Validate() error {
	for i, c := range s.Columns {
		switch c.Format {
		case "", FormatText, FormatMarkdown:
		default:
			return fmt.Errorf("column[%d]: unknown format %q", i, c.Format)
		}
		// An empty column only accepts the zero default.
		if c.Selected < 0 || (c.Selected > 0 && c.Selected >= len(c.Rows)) {
			return fmt.Errorf("column[%d]: selected %d out of range", i, c.Selected)
		}
	}
	return nil
}

// expand turns ranges into rows.
func (s *Set) expand() error {
	for i := range s.Columns {
		c := &s.Columns[i]
		if c.Range == nil {
			continue
		}
		if len(c.Rows) > 0 {
			return fmt.Errorf("column[%d]: rows and range are exclusive", i)
		}
		rows, err := c.Range.rows()
		if err != nil {
			return fmt.Errorf("column[%d]: %w", i, err)
		}
		c.Rows = rows
		c.Range = nil
	}
	return nil
}

const maxRangeRows = 100_000

func (r Range) rows() ([]string, error) {
	step := r.Step
	if step == 0 {
		step = 1
	}
	if step < 0 || r.To < r.From {
		return nil, fmt.Errorf("range %d..%d step %d is empty", r.From, r.To, step)
	}
	// Unsigned so a span wider than MaxInt neither wraps nor loops forever.
	n := (uint64(r.To)-uint64(r.From))/uint64(step) + 1
	if n > maxRangeRows {
		return nil, fmt.Errorf("range %d..%d step %d has more than %d rows", r.From, r.To, step, maxRangeRows)
	}
	rows := make([]string, 0, n)
	for i := uint64(0); i < n; i++ {
		v := int(uint64(r.From) + i*uint64(step))
		s := strconv.Itoa(v)
		if pad := r.Pad - len(s); pad > 0 {
			s = strings.Repeat("0", pad) + s
		}
		rows = append(rows, s)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Data source
// ---------------------------------------------------------------------------

func (s *Set) column(c int) (Column, bool) {
	if c < 0 || c >= len(s.Columns) {
		return Column{}, false
	}
	return s.Columns[c], true
}

// NumberOfComponents is the column count.
func (s *Set) NumberOfComponents() int { return len(s.Columns) }

// NumberOfRows is the row count of column c.
func (s *Set) NumberOfRows(c int) int {
	col, _ := s.column(c)
	return len(col.Rows)
}

// ---------------------------------------------------------------------------
// Delegate
// ---------------------------------------------------------------------------

// WidthForComponent is the configured column width, or 0 for the default.
func (s *Set) WidthForComponent(c int) float64 {
	col, _ := s.column(c)
	return col.Width
}

// RowHeightForComponent is the configured row height, or 0 for one line.
func (s *Set) RowHeightForComponent(c int) float64 {
	col, _ := s.column(c)
	return col.Height
}

// TitleForRow is the row text.
func (s *Set) TitleForRow(row, c int) (string, bool) {
	col, ok := s.column(c)
	if !ok || row < 0 || row >= len(col.Rows) {
		return "", false
	}
	return col.Rows[row], true
}

// ViewForRow renders markdown columns through glamour and everything else as
// plain labels, refurbishing the offered view when it has the right type.
func (s *Set) ViewForRow(row, c int, reusing wheel.View) wheel.View {
	text, _ := s.TitleForRow(row, c)
	col, _ := s.column(c)
	if col.Format == FormatMarkdown {
		if b, ok := reusing.(*markdown.Block); ok {
			b.SetSource(text)
			return b
		}
		return markdown.NewBlock(text)
	}
	if l, ok := reusing.(*picker.Label); ok {
		l.Text = text
		return l
	}
	return &picker.Label{Text: text}
}

// DidSelectRow records the selection of column c.
func (s *Set) DidSelectRow(row, c int) {
	if s.selected == nil {
		s.selected = make(map[int]int)
	}
	s.selected[c] = row
}

// Selected reports the last row recorded for column c.
func (s *Set) Selected(c int) (int, bool) {
	row, ok := s.selected[c]
	return row, ok
}

// Initial is the row column c should start on.
func (s *Set) Initial(c int) int {
	col, _ := s.column(c)
	return col.Selected
}

// Header is the title of column c.
func (s *Set) Header(c int) string {
	col, _ := s.column(c)
	return col.Title
}
