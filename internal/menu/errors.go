package menu

import "errors"

var ErrNotFound = errors.New("menu item not found")

// ValidationError reports a malformed item payload: empty name, negative
// price or negative inventory.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
