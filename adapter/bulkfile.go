// Package adapter converts source-specific input into partial reservation records.
package adapter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/utils"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyFile          = errors.New("file is empty or has no data rows")
	ErrMissingDateColumns = errors.New("check-in/check-out columns not found")
	ErrTooManyRows        = errors.New("file has too many rows")
)

// BulkFileAdapter parses platform CSV exports.
type BulkFileAdapter struct {
	DateOrder consts.DateOrder
	MaxRows   int
}

type BulkParseResult struct {
	Platform      string
	TotalRows     int
	Items         []entity.SourceItem
	Skipped       int
	Errors        []entity.ItemError
	AmbiguousRows []int
}

func NewBulkFileAdapter(order consts.DateOrder, maxRows int) *BulkFileAdapter {
	if order == "" {
		order = consts.MonthFirst
	}
	if maxRows <= 0 {
		maxRows = consts.DefaultMaxImportRows
	}
	return &BulkFileAdapter{DateOrder: order, MaxRows: maxRows}
}

type rawRow struct {
	line   int
	fields []string
}

// Parse returns one item per reservation row. Non-reservation and placeholder rows are
// counted as skipped, bad rows become ItemErrors; only an unusable file is an error.
func (a *BulkFileAdapter) Parse(content []byte) (*BulkParseResult, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = detectDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyFile, err)
	}

	res := &BulkParseResult{}
	var rows []rawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			line := 0
			if errors.As(err, &perr) {
				line = perr.StartLine
			}
			res.Errors = append(res.Errors, entity.ItemError{Row: line, Error: err.Error()})
			res.TotalRows++
			continue
		}
		if isBlank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, rawRow{line: line, fields: record})
	}

	res.TotalRows += len(rows)
	if res.TotalRows == 0 {
		return nil, ErrEmptyFile
	}
	if res.TotalRows > a.MaxRows {
		return nil, fmt.Errorf("%w: %d rows, maximum is %d", ErrTooManyRows, res.TotalRows, a.MaxRows)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = normalizeHeader(h)
	}
	res.Platform = detectPlatform(headers)

	specs := airbnbColumns
	if res.Platform == consts.PlatformBooking {
		specs = bookingColumns
	}
	cols := buildColumnIndex(headers, specs)
	if !cols.has(colCheckIn) || !cols.has(colCheckOut) {
		return nil, ErrMissingDateColumns
	}

	log.Infof("[BulkFileAdapter] platform=%s rows=%d date_order=%s", res.Platform, res.TotalRows, a.DateOrder)

	for _, row := range rows {
		rec, skip, itemErr := a.parseRow(res.Platform, cols, row)
		switch {
		case itemErr != nil:
			res.Errors = append(res.Errors, *itemErr)
		case skip:
			res.Skipped++
		default:
			if rec.AmbiguousDate {
				res.AmbiguousRows = append(res.AmbiguousRows, row.line)
			}
			res.Items = append(res.Items, entity.SourceItem{Row: row.line, Record: rec})
		}
	}
	return res, nil
}

func (a *BulkFileAdapter) parseRow(platform string, cols columnIndex, row rawRow) (entity.PartialReservationRecord, bool, *entity.ItemError) {
	f := row.fields
	rowErr := func(msg string, data interface{}) *entity.ItemError {
		return &entity.ItemError{Row: row.line, Error: msg, Data: data}
	}

	rec := entity.PartialReservationRecord{
		Platform:   consts.PlatformAirbnb,
		EventKind:  consts.EventBookingCreated,
		StatusHint: consts.StatusConfirmed,
	}

	if platform == consts.PlatformBooking {
		rec.Platform = consts.PlatformBooking
		if cols.has(colStatus) {
			status := strings.ToLower(cols.get(f, colStatus))
			switch {
			case status == "ok" || strings.Contains(status, "confirm"):
			case strings.Contains(status, "cancel"):
				rec.StatusHint = consts.StatusCancelled
				rec.EventKind = consts.EventBookingCancelled
			default:
				return rec, true, nil
			}
		}
	} else if cols.has(colRowType) {
		rowType := strings.ToLower(cols.get(f, colRowType))
		if rowType != "" && !strings.Contains(rowType, "reserv") {
			return rec, true, nil
		}
	}

	inRaw, outRaw := cols.get(f, colCheckIn), cols.get(f, colCheckOut)
	if inRaw == "" || outRaw == "" {
		return rec, true, nil
	}
	checkIn, ambIn, errIn := ParseDate(inRaw, a.DateOrder)
	checkOut, ambOut, errOut := ParseDate(outRaw, a.DateOrder)
	if errIn != nil || errOut != nil {
		return rec, false, rowErr("invalid dates", map[string]string{"checkIn": inRaw, "checkOut": outRaw})
	}
	if checkOut.Before(checkIn) {
		return rec, false, rowErr("check-out is before check-in", map[string]string{"checkIn": inRaw, "checkOut": outRaw})
	}
	rec.CheckIn, rec.CheckOut = &checkIn, &checkOut
	rec.AmbiguousDate = ambIn || ambOut

	rec.GuestName = cols.get(f, colGuestName)
	if contact := cols.get(f, colGuestContact); strings.Contains(contact, "@") {
		rec.GuestEmail = contact
	}
	rec.ListingName = cols.get(f, colListingName)
	rec.Nights = optionalInt(cols.get(f, colNights))
	rec.Adults = optionalInt(cols.get(f, colAdults))
	rec.Children = optionalInt(cols.get(f, colChildren))
	rec.Infants = optionalInt(cols.get(f, colInfants))

	if err := a.parseAmounts(platform, cols, f, &rec); err != nil {
		return rec, false, rowErr(err.Error(), f)
	}

	rec.BookingID = cols.get(f, colConfirmationCode)
	if rec.BookingID == "" {
		rec.BookingID = utils.SyntheticBookingID(checkIn, rec.GuestName, f)
		rec.Synthetic = true
	}
	return rec, false, nil
}

func (a *BulkFileAdapter) parseAmounts(platform string, cols columnIndex, f []string, rec *entity.PartialReservationRecord) error {
	amount := func(c field) (decimal.NullDecimal, error) {
		return ParseAmount(cols.get(f, c))
	}

	if platform == consts.PlatformBooking {
		price, err := amount(colPrice)
		if err != nil {
			return err
		}
		commission, err := amount(colCommissionAmount)
		if err != nil {
			return err
		}
		rec.RoomTotal = price
		rec.HostServiceFee = commission
		if price.Valid {
			rec.HostEarnings = decimal.NewNullDecimal(price.Decimal.Sub(commission.Decimal))
		}
		return nil
	}

	var err error
	if rec.HostEarnings, err = amount(colHostEarnings); err != nil {
		return err
	}
	if rec.RoomTotal, err = amount(colGrossEarnings); err != nil {
		return err
	}
	if rec.CleaningFee, err = amount(colCleaningFee); err != nil {
		return err
	}
	if rec.HostServiceFee, err = amount(colHostServiceFee); err != nil {
		return err
	}
	if !rec.RoomTotal.Valid {
		rec.RoomTotal = rec.HostEarnings
	}
	return nil
}

func detectDelimiter(content []byte) rune {
	firstLine := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
