package adapter

import (
	"strings"

	"github.com/radhian/reservation-reconciliation/consts"
)

type field string

const (
	colConfirmationCode field = "confirmationCode"
	colListingName      field = "listingName"
	colRowType          field = "rowType"
	colStatus           field = "status"
	colCheckIn          field = "checkIn"
	colCheckOut         field = "checkOut"
	colNights           field = "nights"
	colGuestName        field = "guestName"
	colGuestContact     field = "guestContact"
	colAdults           field = "adults"
	colChildren         field = "children"
	colInfants          field = "infants"
	colGrossEarnings    field = "grossEarnings"
	colCleaningFee      field = "cleaningFee"
	colHostServiceFee   field = "hostServiceFee"
	colHostEarnings     field = "hostEarnings"
	colPrice            field = "price"
	colCommissionAmount field = "commissionAmount"
)

type columnSpec struct {
	field field
	names []string
}

// Historical header names per logical field, tried in order. Order across fields matters:
// a column claimed by an earlier field is not offered to later ones.
var airbnbColumns = []columnSpec{
	{colConfirmationCode, []string{"código de confirmación", "confirmation code", "codigo confirmacion", "conf code", "código", "code"}},
	{colRowType, []string{"tipo", "type"}},
	{colListingName, []string{"anuncio", "listing", "alojamiento", "property"}},
	{colCheckIn, []string{"fecha de inicio", "start date", "check-in", "checkin", "fecha entrada", "entrada"}},
	{colCheckOut, []string{"fecha de finalización", "end date", "check-out", "checkout", "fecha salida", "salida", "departure"}},
	{colNights, []string{"noches", "nights", "# nights", "numero noches"}},
	{colGuestName, []string{"nombre del viajero", "guest name", "huésped", "huesped", "viajero", "guest"}},
	{colGuestContact, []string{"contacto", "contact", "email", "correo"}},
	{colAdults, []string{"adultos", "adults"}},
	{colChildren, []string{"niños", "ninos", "children"}},
	{colInfants, []string{"bebés", "bebes", "infants"}},
	{colGrossEarnings, []string{"ingresos brutos", "bruto", "gross earnings", "gross", "total bruto"}},
	{colCleaningFee, []string{"tarifa de limpieza del anfitrión", "host cleaning fee", "gastos de limpieza", "cleaning fee", "limpieza"}},
	{colHostServiceFee, []string{"comisión del servicio del anfitrión", "comisión servicio anfitrión", "host service fee", "host fee", "service fee"}},
	{colHostEarnings, []string{"tus ganancias", "your earnings", "ganancias netas", "amount", "importe", "earnings", "ganancias", "neto", "total"}},
}

var bookingColumns = []columnSpec{
	{colConfirmationCode, []string{"número de reserva", "numero de reserva", "reservation number", "booking number"}},
	{colListingName, []string{"tipo de unidad", "unit type", "room type", "accommodation"}},
	{colGuestName, []string{"nombre del cliente", "guest name", "customer name", "booker name"}},
	{colCheckIn, []string{"entrada", "check-in", "arrival"}},
	{colCheckOut, []string{"salida", "check-out", "departure"}},
	{colNights, []string{"duración (noches)", "duration", "nights"}},
	{colStatus, []string{"estado", "status"}},
	{colAdults, []string{"adultos", "adults"}},
	{colChildren, []string{"niños", "ninos", "children"}},
	{colCommissionAmount, []string{"importe de la comisión", "commission amount"}},
	{colPrice, []string{"precio", "price", "total"}},
}

var (
	bookingIndicators = []string{"número de reserva", "numero de reserva", "reservation number", "booking number", "tipo de unidad", "unit type", "importe de la comisión", "commission amount"}
	airbnbIndicators  = []string{
		"código de confirmación", "confirmation code", "nombre del viajero", "viajero",
		"fecha de inicio", "fecha de finalización", "gastos de limpieza", "fecha de llegada estimada",
		"fecha de la reserva", "ganancias netas", "start date", "end date", "gross earnings",
		"host fee", "paid out", "listing",
	}
)

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.Trim(strings.ToLower(strings.TrimSpace(h)), `"“”`)
	return strings.Join(strings.Fields(h), " ")
}

func detectPlatform(headers []string) string {
	joined := strings.Join(headers, " | ")
	for _, ind := range bookingIndicators {
		if strings.Contains(joined, ind) {
			return consts.PlatformBooking
		}
	}
	score := 0
	for _, ind := range airbnbIndicators {
		if strings.Contains(joined, ind) {
			score++
		}
	}
	if score >= 2 {
		return consts.PlatformAirbnb
	}
	return consts.PlatformOther
}

// columnIndex maps every logical field to a column, first by exact header name, then by
// substring. Fields missing from the file map to -1.
type columnIndex map[field]int

func (c columnIndex) get(row []string, f field) string {
	i, ok := c[f]
	if !ok || i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columnIndex) has(f field) bool {
	i, ok := c[f]
	return ok && i >= 0
}

func buildColumnIndex(headers []string, specs []columnSpec) columnIndex {
	idx := make(columnIndex, len(specs))
	claimed := make(map[int]bool)

	find := func(names []string, match func(h, n string) bool) int {
		for _, n := range names {
			for i, h := range headers {
				if !claimed[i] && match(h, n) {
					return i
				}
			}
		}
		return -1
	}

	for _, spec := range specs {
		i := find(spec.names, func(h, n string) bool { return h == n })
		if i < 0 {
			i = find(spec.names, strings.Contains)
		}
		idx[spec.field] = i
		if i >= 0 {
			claimed[i] = true
		}
	}
	return idx
}
