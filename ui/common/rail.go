package common

import (
	"math"
	"strings"

	"github.com/miosa/osa-wheel/style"
)

const (
	railTrackChar = "│"
	railThumbChar = "┃"
)

// Rail renders a one-cell-wide position indicator for a cyclic column of
// rows rows of the given extent, scrolled to offset.
//
// Unlike a scrollbar the track has no ends: the thumb shows the phase of the
// offset within one turn of the wheel and wraps from the bottom of the track
// back to the top. The thumb is sized like a scrollbar's, viewport over
// content, with a minimum of one line.
func Rail(height, rows int, offset, extent float64) string {
	if height <= 0 {
		return ""
	}
	track := make([]string, height)
	for i := range track {
		track[i] = style.RailTrack.Render(railTrackChar)
	}
	period := float64(rows) * extent
	if rows <= 0 || period <= 0 {
		return strings.Join(track, "\n")
	}

	thumbH := min(max(int(float64(height)*float64(height)/period), 1), height)
	phase := math.Mod(offset, period) / period
	if phase < 0 {
		phase++
	}
	thumbTop := int(phase * float64(height))

	for i := 0; i < thumbH; i++ {
		track[(thumbTop+i)%height] = style.RailThumb.Render(railThumbChar)
	}
	return strings.Join(track, "\n")
}
