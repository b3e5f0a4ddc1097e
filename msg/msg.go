// Package msg defines the tea.Msg types dispatched within the wheel picker.
// It has no upstream imports (picker, source) to avoid import cycles.
package msg

// -- Selection --

// RowSelected is emitted when a component settles on a row different from the
// one it last reported.
type RowSelected struct {
	Component int
	Row       int
}

// -- Column source --

// SourceChanged is emitted by the file watcher when the column file was written,
// created or replaced.
type SourceChanged struct {
	Path string
}

// SourceError reports a watcher or reload failure.
type SourceError struct {
	Path string
	Err  error
}
