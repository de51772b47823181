//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendit/internal/pkg/clock"
	"lendit/internal/usecase/queries"
	"lendit/tests/common/builder"
	queriesmock "lendit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemQueriesFixture struct {
	queries queries.ItemQueries
	items   *queriesmock.MockItemReadStore
	users   *queriesmock.MockUserReadStore
}

func newItemQueriesFixture(t *testing.T) *itemQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	items := queriesmock.NewMockItemReadStore(ctrl)
	users := queriesmock.NewMockUserReadStore(ctrl)

	return &itemQueriesFixture{
		queries: queries.NewItemQueries(items, users, clock.NewMockClock(testQueryClock)),
		items:   items,
		users:   users,
	}
}

func pastBooking(itemID uuid.UUID, endOffset time.Duration, status string) *queries.ItemBookingView {
	end := testQueryClock.Add(endOffset)
	return &queries.ItemBookingView{
		ID:       uuid.New(),
		ItemID:   itemID,
		BookerID: uuid.New(),
		Start:    end.Add(-24 * time.Hour),
		End:      end,
		Status:   status,
	}
}

func futureBooking(itemID uuid.UUID, startOffset time.Duration) *queries.ItemBookingView {
	start := testQueryClock.Add(startOffset)
	return &queries.ItemBookingView{
		ID:       uuid.New(),
		ItemID:   itemID,
		BookerID: uuid.New(),
		Start:    start,
		End:      start.Add(24 * time.Hour),
		Status:   "APPROVED",
	}
}

func TestItemQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing item", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		id := uuid.New()
		f.items.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr)

		_, err := f.queries.GetByID(ctx, uuid.New(), id)
		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})

	t.Run("non-owner gets comments but no booking annotations", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		view := builder.NewItemBuilder().BuildView()
		comment := &queries.CommentView{ID: uuid.New(), ItemID: view.ID, AuthorName: "Booker", Text: "Solid"}

		f.items.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		f.items.EXPECT().CommentsForItems(gomock.Any(), []uuid.UUID{view.ID}).
			Return([]*queries.CommentView{comment}, nil)

		actual, err := f.queries.GetByID(ctx, uuid.New(), view.ID)
		require.NoError(t, err)
		require.Len(t, actual.Comments, 1)
		assert.Equal(t, "Solid", actual.Comments[0].Text)
		assert.Nil(t, actual.LastBooking)
		assert.Nil(t, actual.NextBooking)
	})

	t.Run("owner sees last and next booking", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		view := builder.NewItemBuilder().BuildView()

		older := pastBooking(view.ID, -72*time.Hour, "APPROVED")
		// the most recently finished booking wins, status ignored
		last := pastBooking(view.ID, -2*time.Hour, "REJECTED")
		// the soonest upcoming booking wins
		next := futureBooking(view.ID, 6*time.Hour)
		later := futureBooking(view.ID, 48*time.Hour)
		otherItem := futureBooking(uuid.New(), time.Hour)

		f.items.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		f.items.EXPECT().CommentsForItems(gomock.Any(), []uuid.UUID{view.ID}).
			Return([]*queries.CommentView{}, nil)
		f.items.EXPECT().BookingsForItems(gomock.Any(), []uuid.UUID{view.ID}).
			Return([]*queries.ItemBookingView{older, last, next, later, otherItem}, nil)

		actual, err := f.queries.GetByID(ctx, view.OwnerID, view.ID)
		require.NoError(t, err)

		require.NotNil(t, actual.LastBooking)
		assert.Equal(t, last.ID, actual.LastBooking.ID)
		require.NotNil(t, actual.NextBooking)
		assert.Equal(t, next.ID, actual.NextBooking.ID)
	})

	t.Run("running booking is neither last nor next", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		view := builder.NewItemBuilder().BuildView()
		running := &queries.ItemBookingView{
			ID:       uuid.New(),
			ItemID:   view.ID,
			BookerID: uuid.New(),
			Start:    testQueryClock.Add(-time.Hour),
			End:      testQueryClock.Add(time.Hour),
			Status:   "APPROVED",
		}

		f.items.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		f.items.EXPECT().CommentsForItems(gomock.Any(), []uuid.UUID{view.ID}).
			Return([]*queries.CommentView{}, nil)
		f.items.EXPECT().BookingsForItems(gomock.Any(), []uuid.UUID{view.ID}).
			Return([]*queries.ItemBookingView{running}, nil)

		actual, err := f.queries.GetByID(ctx, view.OwnerID, view.ID)
		require.NoError(t, err)
		assert.Nil(t, actual.LastBooking)
		assert.Nil(t, actual.NextBooking)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("unknown owner", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(nil, notFoundErr)

		_, err := f.queries.ListByOwner(ctx, ownerID, 0, 10)
		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("annotates each item from the batch fetches", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		first := builder.NewItemBuilder().WithOwner(ownerID).BuildView()
		second := builder.NewItemBuilder().WithOwner(ownerID).BuildView()
		views := []*queries.ItemView{first, second}
		ids := []uuid.UUID{first.ID, second.ID}

		comment := &queries.CommentView{ID: uuid.New(), ItemID: second.ID, Text: "Still sharp"}
		next := futureBooking(first.ID, 12*time.Hour)

		f.users.EXPECT().FindByID(gomock.Any(), ownerID).
			Return(builder.NewUserBuilder().BuildReadModel(), nil)
		f.items.EXPECT().ListByOwner(gomock.Any(), ownerID, queries.Page{Limit: 10, Offset: 0}).
			Return(views, nil)
		f.items.EXPECT().CommentsForItems(gomock.Any(), ids).
			Return([]*queries.CommentView{comment}, nil)
		f.items.EXPECT().BookingsForItems(gomock.Any(), ids).
			Return([]*queries.ItemBookingView{next}, nil)

		actual, err := f.queries.ListByOwner(ctx, ownerID, 0, 10)
		require.NoError(t, err)
		require.Len(t, actual, 2)

		require.NotNil(t, actual[0].NextBooking)
		assert.Equal(t, next.ID, actual[0].NextBooking.ID)
		assert.Empty(t, actual[0].Comments)

		assert.Nil(t, actual[1].NextBooking)
		require.Len(t, actual[1].Comments, 1)
		assert.Equal(t, "Still sharp", actual[1].Comments[0].Text)
	})

	t.Run("empty listing skips the batch fetches", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), ownerID).
			Return(builder.NewUserBuilder().BuildReadModel(), nil)
		f.items.EXPECT().ListByOwner(gomock.Any(), ownerID, queries.Page{Limit: 10, Offset: 0}).
			Return([]*queries.ItemView{}, nil)

		actual, err := f.queries.ListByOwner(ctx, ownerID, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, actual)
	})
}
