package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrInvalidPagination = errs.New("invalid pagination parameters")
	ErrUnsupportedState  = errs.New("unsupported state filter")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, stateRaw string, from, size int) ([]*BookingListItem, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, stateRaw string, from, size int) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, statuses []string, page Page) ([]*BookingListItem, error)
	ListByBookerCurrent(ctx context.Context, bookerID uuid.UUID, statuses []string, now time.Time, page Page) ([]*BookingListItem, error)
	ListByBookerPast(ctx context.Context, bookerID uuid.UUID, statuses []string, now time.Time, page Page) ([]*BookingListItem, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, statuses []string, page Page) ([]*BookingListItem, error)
	ListByOwnerCurrent(ctx context.Context, ownerID uuid.UUID, statuses []string, now time.Time, page Page) ([]*BookingListItem, error)
	ListByOwnerPast(ctx context.Context, ownerID uuid.UUID, statuses []string, now time.Time, page Page) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

// GetByID returns a booking only to its booker or the item's owner.
// Anyone else gets the same answer as for a booking that does not
// exist, so the response does not leak that the ID is taken.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.BookerID != actorID && view.ItemOwnerID != actorID {
		return nil, ErrBookingNotFound
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, stateRaw string, from, size int) ([]*BookingListItem, error) {
	state, page, err := q.prepareListing(ctx, bookerID, stateRaw, from, size)
	if err != nil {
		return nil, err
	}

	statuses := statusStrings(state.Statuses())
	now := q.clock.Now()

	switch state {
	case booking.StateCurrent:
		return q.bookings.ListByBookerCurrent(ctx, bookerID, statuses, now, page)
	case booking.StatePast:
		return q.bookings.ListByBookerPast(ctx, bookerID, statuses, now, page)
	default:
		// ALL, FUTURE, WAITING and REJECTED narrow by status only
		return q.bookings.ListByBooker(ctx, bookerID, statuses, page)
	}
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, stateRaw string, from, size int) ([]*BookingListItem, error) {
	state, page, err := q.prepareListing(ctx, ownerID, stateRaw, from, size)
	if err != nil {
		return nil, err
	}

	statuses := statusStrings(state.Statuses())
	now := q.clock.Now()

	switch state {
	case booking.StateCurrent:
		return q.bookings.ListByOwnerCurrent(ctx, ownerID, statuses, now, page)
	case booking.StatePast:
		return q.bookings.ListByOwnerPast(ctx, ownerID, statuses, now, page)
	default:
		return q.bookings.ListByOwner(ctx, ownerID, statuses, page)
	}
}

func (q *bookingQueriesImpl) prepareListing(ctx context.Context, requesterID uuid.UUID, stateRaw string, from, size int) (booking.State, Page, error) {
	if _, err := q.users.FindByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", Page{}, ErrUserNotFound
		}
		return "", Page{}, err
	}

	state, err := booking.ParseState(stateRaw)
	if err != nil {
		return "", Page{}, ErrUnsupportedState
	}

	page, err := NewPage(from, size)
	if err != nil {
		return "", Page{}, err
	}

	return state, page, nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
