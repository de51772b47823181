package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyApproved = errors.New("booking has already been approved")

// Booking is a reservation of an item for a period, placed by a booker
// and decided on by the item's owner.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// Reconstruct rebuilds a Booking from persisted state.
func Reconstruct(id, itemID, bookerID uuid.UUID, period Period, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsPlacedBy(userID uuid.UUID) bool {
	return b.bookerID == userID
}

// Decide moves a booking to APPROVED or REJECTED. Only APPROVED is
// terminal: a REJECTED booking may still be flipped by the owner.
func (b *Booking) Decide(approved bool) error {
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// HasFinishedBy reports whether the rental window ended before the
// given moment, regardless of status.
func (b *Booking) HasFinishedBy(now time.Time) bool {
	return b.period.End().Before(now)
}
