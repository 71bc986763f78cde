package entity

import (
	"github.com/radhian/reservation-reconciliation/consts"
)

type BulkImportRequest struct {
	AccountID            string
	FileName             string
	Content              []byte
	PropertyID           int64
	SkipDuplicates       bool
	AutoCreateProperties bool
	DateOrder            consts.DateOrder
}

type BulkImportResult struct {
	TotalRows         int         `json:"totalRows"`
	Platform          string      `json:"platform"`
	ImportedCount     int         `json:"importedCount"`
	UpdatedCount      int         `json:"updatedCount"`
	SkippedCount      int         `json:"skippedCount"`
	ErrorCount        int         `json:"errorCount"`
	NeedsReviewCount  int         `json:"needsReviewCount"`
	Errors            []ItemError `json:"errors"`
	ImportBatchID     string      `json:"importBatchId"`
	ListingsFound     []string    `json:"listingsFound"`
	AmbiguousDateRows []int       `json:"ambiguousDateRows,omitempty"`
}

type ManualMatch struct {
	PropertyName string `json:"propertyName" validate:"required"`
	PropertyID   int64  `json:"propertyId" validate:"required,gt=0"`
}

type NotificationBatchRequest struct {
	AccountID              string        `json:"-"`
	ProcessAutoMatchedOnly bool          `json:"processAutoMatchedOnly"`
	ConfirmMatches         []ManualMatch `json:"confirmMatches" validate:"dive"`
	AutoCreateProperties   bool          `json:"autoCreateProperties"`
}

type NotificationBatchResult struct {
	Processed         int         `json:"processed"`
	Created           int         `json:"created"`
	Updated           int         `json:"updated"`
	Cancelled         int         `json:"cancelled"`
	Skipped           int         `json:"skipped"`
	NeedsReview       int         `json:"needsReview"`
	PropertiesCreated int         `json:"propertiesCreated"`
	AliasesAdded      []string    `json:"aliasesAdded"`
	Errors            []ItemError `json:"errors"`
	ImportBatchID     string      `json:"importBatchId"`
}

// NotificationFragmentInput is one pre-classified fragment pushed by the inbox extractor.
type NotificationFragmentInput struct {
	ExternalID     string   `json:"externalId" validate:"required"`
	Subject        string   `json:"subject"`
	EventKind      string   `json:"eventKind" validate:"required,oneof=BOOKING_CREATED BOOKING_CANCELLED PAYOUT REIMBURSEMENT BOOKING_REQUEST UNKNOWN"`
	Platform       string   `json:"platform" validate:"omitempty,oneof=AIRBNB BOOKING OTHER"`
	BookingID      string   `json:"bookingId"`
	PropertyName   string   `json:"propertyName"`
	GuestName      string   `json:"guestName"`
	Adults         *int     `json:"adults" validate:"omitempty,gte=0"`
	Children       *int     `json:"children" validate:"omitempty,gte=0"`
	Infants        *int     `json:"infants" validate:"omitempty,gte=0"`
	CheckIn        string   `json:"checkIn" validate:"omitempty,datetime=2006-01-02"`
	CheckOut       string   `json:"checkOut" validate:"omitempty,datetime=2006-01-02"`
	Nights         *int     `json:"nights" validate:"omitempty,gte=0"`
	RoomTotal      *float64 `json:"roomTotal"`
	CleaningFee    *float64 `json:"cleaningFee"`
	HostServiceFee *float64 `json:"hostServiceFee"`
	HostEarnings   *float64 `json:"hostEarnings"`
	Currency       string   `json:"currency"`
	ReceivedAt     int64    `json:"receivedAt"`
}

type IngestFragmentsRequest struct {
	Fragments []NotificationFragmentInput `json:"fragments" validate:"required,min=1,dive"`
}

type IngestFragmentsResult struct {
	Received   int `json:"received"`
	Stored     int `json:"stored"`
	Duplicates int `json:"duplicates"`
}
