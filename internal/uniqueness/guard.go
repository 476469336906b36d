// Package uniqueness checks candidate keys against stored records before a
// write. The check and the later save are not atomic: two concurrent
// requests may both pass and store a duplicate unless the storage layer has
// its own unique constraint.
package uniqueness

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

type RoomNumberFinder interface {
	FindByRoomNumber(ctx context.Context, number string) (*domain.Room, error)
}

type EmailFinder interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// EnsureUniqueRoomNumber fails with domain.ErrDuplicateRoomNumber when another
// room already uses candidate. current is the stored value on update (nil on
// create); when it equals candidate the lookup is skipped.
func EnsureUniqueRoomNumber(ctx context.Context, rooms RoomNumberFinder, candidate string, current *string) error {
	if current != nil && *current == candidate {
		return nil
	}
	_, err := rooms.FindByRoomNumber(ctx, candidate)
	return taken(err, domain.ErrDuplicateRoomNumber, "room number")
}

// EnsureUniqueEmail is the user email counterpart of EnsureUniqueRoomNumber.
func EnsureUniqueEmail(ctx context.Context, users EmailFinder, candidate string, current *string) error {
	if current != nil && *current == candidate {
		return nil
	}
	_, err := users.FindByEmail(ctx, candidate)
	return taken(err, domain.ErrDuplicateEmail, "email")
}

func taken(lookupErr error, duplicate error, what string) error {
	switch {
	case lookupErr == nil:
		return duplicate
	case errors.Is(lookupErr, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("look up %s: %w", what, lookupErr)
	}
}
