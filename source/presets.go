package source

import (
	"fmt"
	"sort"
	"time"
)

// presets build column sets that need no file. now seeds the initial
// selection of time-based presets.
var presets = map[string]func(now time.Time) *Set{
	"clock": clockPreset,
	"dates": datesPreset,
	"demo":  demoPreset,
}

// PresetNames lists the built-in presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of a built-in column set.
func Preset(name string, now time.Time) (*Set, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	s := build(now)
	if err := s.expand(); err != nil {
		return nil, err
	}
	return s, nil
}

func clockPreset(now time.Time) *Set {
	return &Set{
		Name: "clock",
		Columns: []Column{
			{Title: "hour", Range: &Range{From: 0, To: 23, Pad: 2}, Width: 6, Selected: now.Hour()},
			{Title: "min", Range: &Range{From: 0, To: 59, Pad: 2}, Width: 6, Selected: now.Minute()},
			{Title: "sec", Range: &Range{From: 0, To: 59, Pad: 2}, Width: 6, Selected: now.Second()},
		},
	}
}

func datesPreset(now time.Time) *Set {
	months := make([]string, 12)
	for i := range months {
		months[i] = time.Month(i + 1).String()
	}
	year := now.Year()
	from := year - 50
	return &Set{
		Name: "dates",
		Columns: []Column{
			{Title: "month", Rows: months, Width: 11, Selected: int(now.Month()) - 1},
			{Title: "day", Range: &Range{From: 1, To: 31}, Width: 4, Selected: now.Day() - 1},
			{Title: "year", Range: &Range{From: from, To: year + 50}, Width: 6, Selected: year - from},
		},
	}
}

// demoPreset shows every kind of column: markdown rows two lines tall, a
// single-row column and an empty one.
func demoPreset(time.Time) *Set {
	return &Set{
		Name: "demo",
		Columns: []Column{
			{
				Title:  "notes",
				Format: FormatMarkdown,
				Width:  18,
				Height: 2,
				Rows: []string{
					"**alpha**  \n_first_",
					"**beta**  \n_second_",
					"**gamma**  \n_third_",
					"**delta**  \n_fourth_",
					"**epsilon**  \n_fifth_",
				},
			},
			{Title: "only", Rows: []string{"solo"}, Width: 8},
			{Title: "empty", Width: 8},
		},
	}
}
