//go:build unit || e2e

package builder

import (
	"time"

	"lendit/internal/domain/booking"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/pkg/clock"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder anchors all times on Now so period validation in
// tests is deterministic.
type BookingBuilder struct {
	ItemID        uuid.UUID
	ItemName      string
	ItemOwnerID   uuid.UUID
	ItemAvailable bool
	BookerID      uuid.UUID
	Now           time.Time
	Start         time.Time
	End           time.Time
	Status        booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ItemID:        uuid.New(),
		ItemName:      "Cordless Drill",
		ItemOwnerID:   uuid.New(),
		ItemAvailable: true,
		BookerID:      uuid.New(),
		Now:           now,
		Start:         now.Add(24 * time.Hour),
		End:           now.Add(48 * time.Hour),
		Status:        booking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	factory := booking.NewFactory(clock.NewMockClock(b.Now))
	return factory.NewBooking(booking.ItemSpec{
		ID:        b.ItemID,
		OwnerID:   b.ItemOwnerID,
		Available: b.ItemAvailable,
	}, b.BookerID, b.Start, b.End)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.Reconstruct(
		uuid.New(),
		b.ItemID,
		b.BookerID,
		booking.ReconstructPeriod(b.Start, b.End),
		b.Status,
		b.Now,
		b.Now,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.ItemOwnerID,
		BookerID:    b.BookerID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:       uuid.New(),
		ItemID:   b.ItemID,
		ItemName: b.ItemName,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status.String(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithBooker(bookerID uuid.UUID) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithOwner(ownerID uuid.UUID) *BookingBuilder {
	b.ItemOwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsUnavailableItem() *BookingBuilder {
	b.ItemAvailable = false
	return b
}

func (b *BookingBuilder) AsOwnItem() *BookingBuilder {
	b.ItemOwnerID = b.BookerID
	return b
}
