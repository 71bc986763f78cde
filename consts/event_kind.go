package consts

// EventKind classifies the fragment a partial record was extracted from.
type EventKind string

const (
	EventBookingCreated   EventKind = "BOOKING_CREATED"
	EventBookingCancelled EventKind = "BOOKING_CANCELLED"
	EventPayout           EventKind = "PAYOUT"
	EventReimbursement    EventKind = "REIMBURSEMENT"
	EventBookingRequest   EventKind = "BOOKING_REQUEST"
	EventUnknown          EventKind = "UNKNOWN"
)

// DateOrder selects how ambiguous N/N/YYYY dates are read.
type DateOrder string

const (
	MonthFirst DateOrder = "MDY"
	DayFirst   DateOrder = "DMY"
)
