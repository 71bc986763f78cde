package adapter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
)

// Tried in order; the first capture that looks like a listing name wins.
var subjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[–—-]\s*([^–—\-]+?)\s*[–—-]`),
	regexp.MustCompile(`(?i)(?:pago|payout)\s+(?:enviado|sent)\s+(?:por|for)\s+([^–—\-]+?)(?:\s*[–—-]|\s*$)`),
	regexp.MustCompile(`(?i)(?:en|in)\s+(.+?)\s+(?:para el periodo|for the period|para|for\s+\d)`),
	regexp.MustCompile(`(?i)reserva\s+(?:de\s+.+?\s+)?en\s+(.+?)(?:\s+(?:para|del|ha\s+sido)|\s*$)`),
}

var (
	confirmationCode = regexp.MustCompile(`(?i)^HM[A-Z0-9]+$`)
	notListingNames  = map[string]bool{
		"enero": true, "febrero": true, "marzo": true, "abril": true, "mayo": true, "junio": true,
		"julio": true, "agosto": true, "septiembre": true, "octubre": true, "noviembre": true, "diciembre": true,
		"january": true, "february": true, "march": true, "april": true, "june": true, "july": true,
		"august": true, "september": true, "october": true, "november": true, "december": true,
		"airbnb": true, "pago": true, "reserva": true, "confirmada": true, "cancelada": true, "pendiente": true,
	}
)

// SkippedFragment is a fragment that produced no record.
type SkippedFragment struct {
	FragmentID int64
	ExternalID string
	Reason     string
}

type NotificationParseResult struct {
	Items   []entity.SourceItem
	Skipped []SkippedFragment
}

// NotificationAdapter turns stored notification fragments into partial records.
type NotificationAdapter struct{}

func NewNotificationAdapter() *NotificationAdapter {
	return &NotificationAdapter{}
}

func (a *NotificationAdapter) Parse(fragments []model.NotificationFragment) *NotificationParseResult {
	res := &NotificationParseResult{}
	for _, f := range fragments {
		kind := consts.EventKind(f.EventKind)
		switch {
		case kind == consts.EventBookingRequest:
			res.Skipped = append(res.Skipped, SkippedFragment{f.ID, f.ExternalID, "reservation request"})
			continue
		case kind == consts.EventUnknown || kind == "":
			res.Skipped = append(res.Skipped, SkippedFragment{f.ID, f.ExternalID, "unclassified notification"})
			continue
		case strings.TrimSpace(f.BookingID) == "":
			res.Skipped = append(res.Skipped, SkippedFragment{f.ID, f.ExternalID, "no booking id"})
			continue
		}
		res.Items = append(res.Items, entity.SourceItem{ItemID: f.ExternalID, Record: fragmentRecord(f)})
	}
	return res
}

func fragmentRecord(f model.NotificationFragment) entity.PartialReservationRecord {
	rec := entity.PartialReservationRecord{
		BookingID:      strings.TrimSpace(f.BookingID),
		Platform:       f.Platform,
		GuestName:      strings.TrimSpace(f.GuestName),
		Adults:         f.Adults,
		Children:       f.Children,
		Infants:        f.Infants,
		Nights:         f.Nights,
		CheckIn:        f.CheckIn,
		CheckOut:       f.CheckOut,
		RoomTotal:      f.RoomTotal,
		CleaningFee:    f.CleaningFee,
		HostServiceFee: f.HostServiceFee,
		HostEarnings:   f.HostEarnings,
		Currency:       strings.ToUpper(f.Currency),
		EventKind:      consts.EventKind(f.EventKind),
		ListingName:    strings.TrimSpace(f.PropertyName),
	}
	if rec.Platform == "" || rec.Platform == consts.PlatformOther {
		rec.Platform = consts.PlatformAirbnb
	}
	if rec.EventKind == consts.EventBookingCancelled {
		rec.StatusHint = consts.StatusCancelled
	}
	if rec.ListingName == "" {
		rec.ListingName = PropertyFromSubject(f.Subject)
	}
	return rec
}

// PropertyFromSubject extracts a listing name from a notification subject line.
func PropertyFromSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	for _, re := range subjectPatterns {
		if m := re.FindStringSubmatch(subject); m != nil && isListingName(m[1]) {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func isListingName(s string) bool {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < 3 || n > 80 {
		return false
	}
	if notListingNames[strings.ToLower(s)] || confirmationCode.MatchString(s) {
		return false
	}
	return !unicode.IsDigit([]rune(s)[0])
}
