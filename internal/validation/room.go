// Package validation holds the field and cross-field rules for every entity.
// Each validator is pure and fails fast: checks run in a fixed order and the
// first violated rule is returned as a *domain.ValidationError sentinel.
package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

var roomNumberPattern = regexp.MustCompile(`^[A-Z]\d{3}$`)

const (
	minCapacity       = 1
	maxCapacity       = 6
	minPricePerNight  = 100.0
	maxPricePerNight  = 10000.0
	minFloor          = 1
	maxFloor          = 20
	maxDescriptionLen = 500
)

func ValidRoomNumber(s string) bool {
	return roomNumberPattern.MatchString(s)
}

func ValidateRoom(room domain.Room) error {
	if !ValidRoomNumber(room.RoomNumber) {
		return domain.ErrInvalidRoomNumber
	}
	if !room.Type.Valid() {
		return domain.ErrInvalidRoomType
	}
	if room.Capacity < minCapacity || room.Capacity > maxCapacity {
		return domain.ErrInvalidCapacity
	}
	if room.PricePerNight < minPricePerNight || room.PricePerNight > maxPricePerNight {
		return domain.ErrInvalidPrice
	}
	if !room.Status.Valid() {
		return domain.ErrInvalidRoomStatus
	}
	if room.SmokingAllowed != "" && !room.SmokingAllowed.Valid() {
		return domain.ErrInvalidSmokingFlag
	}
	if room.FloorNumber < minFloor || room.FloorNumber > maxFloor {
		return domain.ErrInvalidFloor
	}
	if utf8.RuneCountInString(room.Description) > maxDescriptionLen {
		return domain.ErrInvalidDescription
	}
	return nil
}
