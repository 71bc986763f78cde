package adapter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/radhian/reservation-reconciliation/consts"
)

var (
	isoDate   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashDate = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)
)

// ParseDate reads YYYY-MM-DD or N/N/YYYY (also N-N-YYYY). When both leading tokens are
// 12 or less the order cannot be told from the value; order decides and ambiguous is
// reported so the caller can flag the row.
func ParseDate(raw string, order consts.DateOrder) (t time.Time, ambiguous bool, err error) {
	s := strings.TrimSpace(raw)

	if m := isoDate.FindStringSubmatch(s); m != nil {
		t, err = buildDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		return t, false, err
	}

	m := slashDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false, fmt.Errorf("unrecognized date %q", raw)
	}
	first, second, year := atoi(m[1]), atoi(m[2]), atoi(m[3])

	switch {
	case second > 12:
		t, err = buildDate(year, first, second)
	case first > 12:
		t, err = buildDate(year, second, first)
	default:
		ambiguous = first != second
		if order == consts.DayFirst {
			t, err = buildDate(year, second, first)
		} else {
			t, err = buildDate(year, first, second)
		}
	}
	return t, ambiguous, err
}

func buildDate(year, month, day int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, month, day)
	}
	return t, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
