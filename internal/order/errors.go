package order

import (
	"errors"
	"fmt"
)

var ErrEmptyOrder = errors.New("order must contain at least one item")

// NotFoundError names the unknown menu item id that aborted the order.
type NotFoundError struct {
	ItemID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.ItemID)
}

// InsufficientInventoryError identifies the offending item and the
// shortfall. The whole order is rejected; nothing is decremented.
type InsufficientInventoryError struct {
	ItemID    int64
	Name      string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s (id %d): requested %d, only %d left",
		e.Name, e.ItemID, e.Requested, e.Available)
}
