package style

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// LerpColor mixes a and b at t, clamped to [0,1]. The result is opaque
// color.NRGBA, except that t <= 0 and t >= 1 return a and b unchanged.
func LerpColor(a, b color.Color, t float64) color.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	mix := func(x, y uint32) uint8 {
		v := float64(x>>8) + (float64(y>>8)-float64(x>>8))*t
		return uint8(min(max(v, 0), 255))
	}
	return color.NRGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: 0xff}
}

// GradientTextBold renders text in bold, fading from one color to the other
// across its runes.
func GradientTextBold(text string, from, to color.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	base := lipgloss.NewStyle().Bold(true)
	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		sb.WriteString(base.Foreground(LerpColor(from, to, t)).Render(string(r)))
	}
	return sb.String()
}

// ApplyBoldForegroundGrad renders s bold in the theme gradient, or plain
// bold in the mono theme.
func ApplyBoldForegroundGrad(s string) string {
	if IsMono() {
		return Bold.Render(s)
	}
	return GradientTextBold(s, GradColorA, GradColorB)
}
