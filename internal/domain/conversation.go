package domain

import "strconv"

// Slot names the dialogue engine fills from conversation.
const (
	SlotBookingID  = "booking_id"
	SlotLocation   = "location"
	SlotPromoCode  = "promo_code"
	SlotPriceMin   = "price_min"
	SlotPriceMax   = "price_max"
	SlotCheckin    = "checkin"
	SlotCheckout   = "checkout"
	SlotPhone      = "phone"
	SlotEmail      = "email"
	SlotAmenity    = "amenity"
	SlotGuests     = "guests"
	SlotHomestayID = "hid"
)

// Slots is the snapshot of conversation slot values sent with each action
// invocation. Slot storage belongs to the dialogue engine; this core only
// reads values and proposes mutations. Values are untyped until a parser
// interprets them.
type Slots map[string]any

// Str renders a slot as a string, or "" when the slot is absent or empty.
// JSON numbers arrive as float64 and are rendered without an exponent.
func (s Slots) Str(name string) string {
	switch v := s[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

// Has reports whether the slot carries a non-empty value.
func (s Slots) Has(name string) bool { return s.Str(name) != "" }

// Message is one outgoing text block. Callers render blocks in emission
// order.
type Message struct {
	Text string
}

// SlotMutation proposes one slot change back to the dialogue engine. A nil
// Value clears the slot; leaving a slot out of the mutation list leaves it
// unchanged.
type SlotMutation struct {
	Name  string
	Value any
}

func SetSlot(name string, v any) SlotMutation { return SlotMutation{Name: name, Value: v} }

func ClearSlot(name string) SlotMutation { return SlotMutation{Name: name} }
