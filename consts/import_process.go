package consts

const (
	// Import sources
	ImportSourceCSV   = "CSV"
	ImportSourceEmail = "EMAIL"

	// Platforms
	PlatformAirbnb  = "AIRBNB"
	PlatformBooking = "BOOKING"
	PlatformOther   = "OTHER"

	// Reservation status codes
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"

	// Reservation types
	ReservationTypeBooking    = "BOOKING"
	ReservationTypeAdjustment = "ADJUSTMENT"

	// Commission types
	CommissionPercentage          = "PERCENTAGE"
	CommissionFixedPerReservation = "FIXED_PER_RESERVATION"
	CommissionFixedMonthly        = "FIXED_MONTHLY"

	// Cleaning fee recipients
	CleaningToManager = "MANAGER"
	CleaningToOwner   = "OWNER"
	CleaningSplit     = "SPLIT"

	// Notification fragment status
	FragmentStatusPending     = "PENDING"
	FragmentStatusNeedsReview = "NEEDS_REVIEW"
	FragmentStatusProcessed   = "PROCESSED"
	FragmentStatusSkipped     = "SKIPPED"
	FragmentStatusError       = "ERROR"

	// Default config
	DefaultAutoLinkThreshold = 90
	DefaultMaxImportRows     = 5000
	DefaultMaxFileSize       = 5 * 1024 * 1024
	DefaultWorkerNumber      = 1
	DefaultIntervalInSec     = 30
	DefaultCurrency          = "EUR"
	DefaultGuestName         = "Guest"

	BatchIDPrefix     = "IMP"
	SyntheticIDPrefix = "GEN"
)

const (
	// Import batch status
	ImportStatusInProgress = 1
	ImportStatusDone       = 2
	ImportStatusFailed     = 3

	// Import batch asset data types
	AssetTypeBulkFile     = 1
	AssetTypeNotification = 2

	SystemUser = "system"

	// AccountHeader carries the caller's account id; authentication happens upstream.
	AccountHeader = "X-Account-ID"
)
