package app

const (
	// Frame border plus horizontal padding on each side of the picker.
	frameBorder  = 1
	framePadding = 1

	// The picker never gets fewer lines than this, even if the frame is
	// clipped by a tiny terminal.
	pickerMinHeight = 3

	// Wheels look odd when very tall; extra lines go below the frame.
	pickerMaxHeight = 15
)

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth    int
	TermHeight   int
	HeaderHeight int // title line + separator
	StatusHeight int // selection/error line + help line
	PickerWidth  int // inside the frame
	PickerHeight int
	PickerX      int // screen cell of the picker's top-left corner
	PickerY      int
}

// ComputeLayout places the framed picker under the header, spanning the
// terminal width. The picker gets the lines left after the header and
// status, clamped to [pickerMinHeight, pickerMaxHeight]; an odd height keeps
// the selection line centered. Toasts use whatever is left below the frame.
func ComputeLayout(termW, termH int) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		HeaderHeight: 2,
		StatusHeight: 2,
	}

	inset := frameBorder + framePadding
	l.PickerWidth = max(termW-2*inset, 1)

	h := termH - l.HeaderHeight - l.StatusHeight - 2*frameBorder
	h = min(max(h, pickerMinHeight), pickerMaxHeight)
	if h%2 == 0 {
		h--
	}
	l.PickerHeight = h

	l.PickerX = inset
	l.PickerY = l.HeaderHeight + frameBorder
	return l
}
