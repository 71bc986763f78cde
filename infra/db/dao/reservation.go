package dao

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
)

// GetReservationByBookingID returns nil when no reservation matches.
func (d *dao) GetReservationByBookingID(accountID, platform, bookingID string) (*model.Reservation, error) {
	var reservation model.Reservation
	err := d.db.
		Where("account_id = ? AND platform = ? AND booking_id = ?", accountID, platform, bookingID).
		First(&reservation).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", bookingID, err)
	}
	return &reservation, nil
}

func (d *dao) CreateReservation(payload *model.Reservation) error {
	if err := d.db.Create(payload).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("booking %s: %w", payload.BookingID, ErrDuplicateReservation)
		}
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (d *dao) UpdateReservation(reservation model.Reservation) error {
	if err := d.db.Save(&reservation).Error; err != nil {
		return fmt.Errorf("failed to update reservation %d: %w", reservation.ID, err)
	}
	return nil
}
