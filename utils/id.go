package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/radhian/reservation-reconciliation/consts"
)

var syntheticNamespace = uuid.MustParse("6f1c1d2e-3b1a-4f8e-9a59-2f4b7d1c9e01")

// NewBatchID returns an import batch identifier of the form IMP-<unix millis>-<6 chars>.
func NewBatchID(now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", consts.BatchIDPrefix, now.UnixNano()/int64(time.Millisecond), shortHex(uuid.New()))
}

// SyntheticBookingID builds an identifier for a row that carries none. The suffix is a
// name-based UUID of the raw row, so re-importing the same row yields the same id.
func SyntheticBookingID(checkIn time.Time, guestName string, raw []string) string {
	suffix := shortHex(uuid.NewSHA1(syntheticNamespace, []byte(strings.Join(raw, "\x1f"))))
	return fmt.Sprintf("%s-%s-%s-%s", consts.SyntheticIDPrefix, checkIn.Format("20060102"), slug(guestName, 10), suffix)
}

func IsSyntheticBookingID(id string) bool {
	return strings.HasPrefix(id, consts.SyntheticIDPrefix+"-")
}

func shortHex(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
}

func slug(s string, max int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "GUEST"
	}
	return b.String()
}
