//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/usecase/queries"
	"lendit/tests/common/builder"
	queriesmock "lendit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	allStatuses    = []string{"WAITING", "APPROVED", "REJECTED", "CANCELED"}
	notFoundErr    = infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)
	testQueryClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type bookingQueriesFixture struct {
	queries  queries.BookingQueries
	bookings *queriesmock.MockBookingReadStore
	users    *queriesmock.MockUserReadStore
}

func newBookingQueriesFixture(t *testing.T) *bookingQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)
	users := queriesmock.NewMockUserReadStore(ctrl)

	return &bookingQueriesFixture{
		queries:  queries.NewBookingQueries(bookings, users, clock.NewMockClock(testQueryClock)),
		bookings: bookings,
		users:    users,
	}
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("booker sees the booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		view := builder.NewBookingBuilder().BuildView()
		f.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := f.queries.GetByID(ctx, view.BookerID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("item owner sees the booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		view := builder.NewBookingBuilder().BuildView()
		f.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := f.queries.GetByID(ctx, view.ItemOwnerID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("stranger gets the same answer as for a missing booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		view := builder.NewBookingBuilder().BuildView()
		f.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := f.queries.GetByID(ctx, uuid.New(), view.ID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		id := uuid.New()
		f.bookings.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr)

		_, err := f.queries.GetByID(ctx, uuid.New(), id)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueries_ListForBooker(t *testing.T) {
	ctx := context.Background()
	bookerID := uuid.New()
	page := queries.Page{Limit: 10, Offset: 0}

	expectKnownUser := func(f *bookingQueriesFixture) {
		f.users.EXPECT().FindByID(gomock.Any(), bookerID).
			Return(builder.NewUserBuilder().BuildReadModel(), nil)
	}

	t.Run("unknown requester", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(nil, notFoundErr)

		_, err := f.queries.ListForBooker(ctx, bookerID, "ALL", 0, 10)
		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("unknown state", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		expectKnownUser(f)

		_, err := f.queries.ListForBooker(ctx, bookerID, "SOMEDAY", 0, 10)
		require.ErrorIs(t, err, queries.ErrUnsupportedState)
	})

	t.Run("invalid pagination", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		expectKnownUser(f)

		_, err := f.queries.ListForBooker(ctx, bookerID, "ALL", -1, 10)
		require.ErrorIs(t, err, queries.ErrInvalidPagination)
	})

	t.Run("CURRENT uses the temporal listing", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		expectKnownUser(f)
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		f.bookings.EXPECT().
			ListByBookerCurrent(gomock.Any(), bookerID, allStatuses, testQueryClock, page).
			Return(items, nil)

		actual, err := f.queries.ListForBooker(ctx, bookerID, "CURRENT", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, items, actual)
	})

	t.Run("PAST uses the temporal listing", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		expectKnownUser(f)
		f.bookings.EXPECT().
			ListByBookerPast(gomock.Any(), bookerID, allStatuses, testQueryClock, page).
			Return([]*queries.BookingListItem{}, nil)

		_, err := f.queries.ListForBooker(ctx, bookerID, "PAST", 0, 10)
		require.NoError(t, err)
	})

	t.Run("WAITING narrows by status only", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		expectKnownUser(f)
		f.bookings.EXPECT().
			ListByBooker(gomock.Any(), bookerID, []string{"WAITING"}, page).
			Return([]*queries.BookingListItem{}, nil)

		_, err := f.queries.ListForBooker(ctx, bookerID, "WAITING", 0, 10)
		require.NoError(t, err)
	})

	t.Run("FUTURE behaves like ALL", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		expectKnownUser(f)
		f.bookings.EXPECT().
			ListByBooker(gomock.Any(), bookerID, allStatuses, page).
			Return([]*queries.BookingListItem{}, nil)

		_, err := f.queries.ListForBooker(ctx, bookerID, "FUTURE", 0, 10)
		require.NoError(t, err)
	})

	t.Run("from inside a page snaps to the page start", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		expectKnownUser(f)
		f.bookings.EXPECT().
			ListByBooker(gomock.Any(), bookerID, allStatuses, queries.Page{Limit: 10, Offset: 0}).
			Return([]*queries.BookingListItem{}, nil)

		_, err := f.queries.ListForBooker(ctx, bookerID, "ALL", 5, 10)
		require.NoError(t, err)
	})
}

func TestBookingQueries_ListForOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	page := queries.Page{Limit: 10, Offset: 0}

	t.Run("CURRENT uses the temporal listing", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), ownerID).
			Return(builder.NewUserBuilder().BuildReadModel(), nil)
		f.bookings.EXPECT().
			ListByOwnerCurrent(gomock.Any(), ownerID, allStatuses, testQueryClock, page).
			Return([]*queries.BookingListItem{}, nil)

		_, err := f.queries.ListForOwner(ctx, ownerID, "CURRENT", 0, 10)
		require.NoError(t, err)
	})

	t.Run("REJECTED narrows by status only", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), ownerID).
			Return(builder.NewUserBuilder().BuildReadModel(), nil)
		f.bookings.EXPECT().
			ListByOwner(gomock.Any(), ownerID, []string{"REJECTED"}, page).
			Return([]*queries.BookingListItem{}, nil)

		_, err := f.queries.ListForOwner(ctx, ownerID, "REJECTED", 0, 10)
		require.NoError(t, err)
	})
}
