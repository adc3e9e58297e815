package domain

// BookingStatus is the backend's booking lifecycle enum. Raw values outside
// this set are carried through as their own display label, not rejected.
type BookingStatus string

const (
	StatusPending        BookingStatus = "pending"
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusPaid           BookingStatus = "paid"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
)

// BookingHeader is the top-level part of a booking record as the backend
// returns it. Records are call-scoped: fetched fresh per action, never
// cached or mutated here.
type BookingHeader struct {
	Status        string
	TotalPrice    int64
	PaymentMethod string
}

// BookingLine is one detail row of a booking (one homestay stay).
type BookingLine struct {
	HomestayName string
	CheckinDate  string
	CheckoutDate string
}

// ContactBooking is the per-booking summary returned by contact lookups.
type ContactBooking struct {
	BookingID  string
	Status     string
	TotalPrice int64
}

type Homestay struct {
	Name        string
	Address     string
	City        string
	PricePerDay int64
}

// Promotion as returned by the promotion endpoints. Type is "percent" for
// percentage discounts, anything else is a fixed VND amount.
type Promotion struct {
	Code     string
	Name     string
	Discount int64
	Type     string
	EndDate  string
}

// PriceEstimate is the breakdown returned by the estimate endpoint, in VND.
type PriceEstimate struct {
	Original int64
	Discount int64
	Final    int64
}
