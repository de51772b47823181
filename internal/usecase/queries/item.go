package queries

import (
	"context"

	"github.com/google/uuid"

	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	GetByID(ctx context.Context, actorID, itemID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error)
	BookingsForItems(ctx context.Context, itemIDs []uuid.UUID) ([]*ItemBookingView, error)
	CommentsForItems(ctx context.Context, itemIDs []uuid.UUID) ([]*CommentView, error)
}

type itemQueriesImpl struct {
	items ItemReadStore
	users UserReadStore
	clock clock.Clock
}

func NewItemQueries(items ItemReadStore, users UserReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items: items,
		users: users,
		clock: clk,
	}
}

// GetByID returns the item with its comments. The last/next booking
// annotations are visible to the owner only; other users get the bare
// listing.
func (q *itemQueriesImpl) GetByID(ctx context.Context, actorID, itemID uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	ids := []uuid.UUID{itemID}

	comments, err := q.items.CommentsForItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	view.Comments = commentsForItem(comments, itemID)

	if view.OwnerID == actorID {
		bookings, err := q.items.BookingsForItems(ctx, ids)
		if err != nil {
			return nil, err
		}
		q.annotate(view, bookings)
	}

	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error) {
	if _, err := q.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.items.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	comments, err := q.items.CommentsForItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	bookings, err := q.items.BookingsForItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		v.Comments = commentsForItem(comments, v.ID)
		q.annotate(v, bookings)
	}

	return views, nil
}

// annotate picks the most recently finished and the next upcoming
// booking for the item. Status is deliberately ignored: a rejected
// booking still shows up, matching what owners see in the history.
func (q *itemQueriesImpl) annotate(view *ItemView, bookings []*ItemBookingView) {
	now := q.clock.Now()

	var last, next *ItemBookingView
	for _, b := range bookings {
		if b.ItemID != view.ID {
			continue
		}
		if b.End.Before(now) {
			if last == nil || b.End.After(last.End) {
				last = b
			}
		}
		if b.Start.After(now) {
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}

	view.LastBooking = toBrief(last)
	view.NextBooking = toBrief(next)
}

func toBrief(b *ItemBookingView) *BookingBrief {
	if b == nil {
		return nil
	}
	return &BookingBrief{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

func commentsForItem(all []*CommentView, itemID uuid.UUID) []CommentView {
	out := make([]CommentView, 0)
	for _, c := range all {
		if c.ItemID == itemID {
			out = append(out, *c)
		}
	}
	return out
}
