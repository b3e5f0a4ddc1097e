package picker

import "errors"

// ErrInvalidArgument is returned when a component or row index is outside the
// range cached at the last reload.
var ErrInvalidArgument = errors.New("picker: invalid argument")
