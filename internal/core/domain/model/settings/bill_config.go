package settings

// BillConfigKey is the exclusion key used to serialize read-modify-write
// access to the bill configuration singleton.
const BillConfigKey = "config/bill"

// BillConfig holds the automatic bill printing preferences.
// It is a process-wide singleton row, created with defaults on first read.
type BillConfig struct {
	autoPrintDineIn   bool
	autoPrintTakeaway bool
}

// DefaultBillConfig returns the configuration created on first read:
// no automatic printing for either order type.
func DefaultBillConfig() *BillConfig {
	return &BillConfig{autoPrintDineIn: false, autoPrintTakeaway: false}
}

// NewBillConfig creates a bill configuration.
func NewBillConfig(autoPrintDineIn, autoPrintTakeaway bool) *BillConfig {
	return &BillConfig{autoPrintDineIn: autoPrintDineIn, autoPrintTakeaway: autoPrintTakeaway}
}

// AutoPrintDineIn reports whether dine-in bills print automatically.
func (c *BillConfig) AutoPrintDineIn() bool {
	return c.autoPrintDineIn
}

// AutoPrintTakeaway reports whether take-away bills print automatically.
func (c *BillConfig) AutoPrintTakeaway() bool {
	return c.autoPrintTakeaway
}

// Patch applies partial-update semantics: nil fields leave the current value unchanged.
func (c *BillConfig) Patch(autoPrintDineIn, autoPrintTakeaway *bool) {
	if autoPrintDineIn != nil {
		c.autoPrintDineIn = *autoPrintDineIn
	}
	if autoPrintTakeaway != nil {
		c.autoPrintTakeaway = *autoPrintTakeaway
	}
}
