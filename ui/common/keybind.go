package common

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/miosa/osa-wheel/style"
)

// KeyHelp renders enabled bindings as "[key] description" pairs joined by
// dots. The help label is shown when set, the raw keys otherwise.
func KeyHelp(bindings ...key.Binding) string {
	sep := style.HelpSeparator.Render("  ·  ")
	var sb strings.Builder
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(style.HelpKey.Render("[" + keyLabel(b) + "]"))
		sb.WriteString(style.HelpDesc.Render(" " + b.Help().Desc))
	}
	return sb.String()
}

func keyLabel(b key.Binding) string {
	if k := b.Help().Key; k != "" {
		return k
	}
	return strings.Join(b.Keys(), "/")
}

// ShortcutLabel is the first key of b, or "" when it has none.
func ShortcutLabel(b key.Binding) string {
	if keys := b.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}
