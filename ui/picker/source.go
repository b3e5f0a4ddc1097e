package picker

import "github.com/miosa/osa-wheel/ui/wheel"

// ---------------------------------------------------------------------------
// Data source
// ---------------------------------------------------------------------------

// DataSource supplies the shape of the picker. It is required.
type DataSource interface {
	NumberOfComponents() int
	NumberOfRows(component int) int
}

// ---------------------------------------------------------------------------
// Delegate capabilities
// ---------------------------------------------------------------------------
//
// The delegate is any value. Each capability below is probed on its own, so a
// delegate implements only what it cares about and the picker falls back to
// a documented default for the rest.

// WidthProvider reports the column width in cells. Default 0.
type WidthProvider interface {
	WidthForComponent(component int) float64
}

// RowHeightProvider reports the row height in lines. Default 0.
type RowHeightProvider interface {
	RowHeightForComponent(component int) float64
}

// TitleProvider supplies plain text for a row. ok is false for "no title".
type TitleProvider interface {
	TitleForRow(row, component int) (title string, ok bool)
}

// ViewProvider supplies custom row content. reusing is a view released
// earlier by the same component, or nil.
type ViewProvider interface {
	ViewForRow(row, component int, reusing wheel.View) wheel.View
}

// SelectionObserver is told when a component settles on a new row.
type SelectionObserver interface {
	DidSelectRow(row, component int)
}
