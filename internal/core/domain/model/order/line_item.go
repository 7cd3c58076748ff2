package order

import (
	"fmt"

	"dinepos/internal/pkg/errs"
)

// LineItem represents one entry in a table order: a menu item reference, a
// quantity, and the sent-to-kitchen flag that governs merge behavior.
//
// Beyond the required fields, a line item carries an open attributes map of
// display and pricing fields (name, price, category, department, ...). The
// merge algorithm never inspects these; they pass through to the invoice
// snapshot untouched. This keeps the merge contract independent of how menu
// items are shaped.
//
// A line item with SentToKitchen set is immutable by merge: its quantity can
// no longer be increased in place, so a repeat order of an already-fired item
// becomes a new line and is tracked and fired separately.
type LineItem struct {
	// menuItemID references a menu item; the catalog itself is not modeled here
	menuItemID string

	// quantity is the ordered count, always positive
	quantity int

	// sentToKitchen marks the line as already dispatched for preparation
	sentToKitchen bool

	// attributes carries passthrough display/price fields, never inspected
	attributes map[string]any
}

// NewLineItem creates a pending (not yet sent) line item.
// Quantity is caller-trusted beyond being positive; there is no validation
// against a menu catalog.
func NewLineItem(menuItemID string, quantity int, attributes map[string]any) (LineItem, error) {
	return RestoreLineItem(menuItemID, quantity, false, attributes)
}

// RestoreLineItem reconstructs a line item from persistence, including its
// sent-to-kitchen flag.
func RestoreLineItem(menuItemID string, quantity int, sentToKitchen bool, attributes map[string]any) (LineItem, error) {
	if menuItemID == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item id")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		menuItemID:    menuItemID,
		quantity:      quantity,
		sentToKitchen: sentToKitchen,
		attributes:    copyAttributes(attributes),
	}, nil
}

// MenuItemID returns the referenced menu item identifier.
func (li LineItem) MenuItemID() string {
	return li.menuItemID
}

// Quantity returns the ordered count.
func (li LineItem) Quantity() int {
	return li.quantity
}

// SentToKitchen reports whether the line was already dispatched for preparation.
func (li LineItem) SentToKitchen() bool {
	return li.sentToKitchen
}

// Attributes returns a copy of the passthrough display/price fields.
func (li LineItem) Attributes() map[string]any {
	return copyAttributes(li.attributes)
}

// addQuantity coalesces an incoming quantity into this line.
// Only valid for pending lines; the aggregate enforces that.
func (li *LineItem) addQuantity(n int) {
	li.quantity += n
}

// markSent flags the line as dispatched to the kitchen.
func (li *LineItem) markSent() {
	li.sentToKitchen = true
}

func copyAttributes(attributes map[string]any) map[string]any {
	if attributes == nil {
		return nil
	}
	out := make(map[string]any, len(attributes))
	for k, v := range attributes {
		out[k] = v
	}
	return out
}
