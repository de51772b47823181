//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/shared"
	"lendit/tests/common/builder"
	queriesmock "lendit/tests/mock/queries"
	sharedmock "lendit/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	notFoundErr      = infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)
	testCommandClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type bookingCommandsFixture struct {
	commands commands.BookingCommands
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	repo     *sharedmock.MockBookingRepository
	queries  *queriesmock.MockBookingQueries
}

func newBookingCommandsFixture(t *testing.T) *bookingCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bookingCommandsFixture{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		reads:   sharedmock.NewMockCommandReads(ctrl),
		repo:    sharedmock.NewMockBookingRepository(ctrl),
		queries: queriesmock.NewMockBookingQueries(ctrl),
	}

	factory := booking.NewFactory(clock.NewMockClock(testCommandClock))
	f.commands = commands.NewBookingCommands(f.uow, factory, f.queries)
	return f
}

func (f *bookingCommandsFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func itemSnapshot(b *builder.BookingBuilder) *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:          b.ItemID,
		OwnerID:     b.ItemOwnerID,
		Name:        b.ItemName,
		Description: "18V cordless drill",
		Available:   b.ItemAvailable,
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a waiting booking and reads it back", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		view := b.BuildView()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), b.ItemID).Return(itemSnapshot(b), nil)
		f.reads.EXPECT().UserByID(gomock.Any(), b.BookerID).
			Return(&shared.UserSnapshot{ID: b.BookerID, Name: "Booker"}, nil)

		f.expectWithin()
		f.tx.EXPECT().Bookings().Return(f.repo)
		f.tx.EXPECT().DB().Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entity *booking.Booking) (uuid.UUID, error) {
				assert.Equal(t, booking.StatusWaiting, entity.Status())
				assert.Equal(t, b.ItemID, entity.ItemID())
				return bookingID, nil
			})

		f.queries.EXPECT().GetByID(gomock.Any(), b.BookerID, bookingID).Return(view, nil)

		actual, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), b.BookerID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), b.ItemID).Return(nil, notFoundErr)

		_, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), b.BookerID)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("missing booker", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), b.ItemID).Return(itemSnapshot(b), nil)
		f.reads.EXPECT().UserByID(gomock.Any(), b.BookerID).Return(nil, notFoundErr)

		_, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), b.BookerID)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder().AsUnavailableItem()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), b.ItemID).Return(itemSnapshot(b), nil)

		_, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), b.BookerID)
		require.ErrorIs(t, err, commands.ErrItemUnavailable)
	})

	t.Run("unavailable item wins over an unknown booker", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder().AsUnavailableItem()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), b.ItemID).Return(itemSnapshot(b), nil)
		f.reads.EXPECT().UserByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), b.BookerID)
		require.ErrorIs(t, err, commands.ErrItemUnavailable)
	})

	t.Run("owner booking their own item", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder().AsOwnItem()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), b.ItemID).Return(itemSnapshot(b), nil)

		_, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), b.BookerID)
		require.ErrorIs(t, err, commands.ErrBookingByOwner)
	})

	t.Run("period in the past", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder()
		b.WithPeriod(testCommandClock.Add(-48*time.Hour), testCommandClock.Add(-24*time.Hour))

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), b.ItemID).Return(itemSnapshot(b), nil)

		_, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), b.BookerID)
		require.ErrorIs(t, err, commands.ErrInvalidBookingPeriod)
	})
}

func TestBookingCommands_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a waiting booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder()
		entity := b.BuildReconstructed()
		view := b.BuildView()

		f.expectWithin()
		f.tx.EXPECT().Bookings().Return(f.repo).Times(2)
		f.tx.EXPECT().DB().Return(nil).Times(2)
		f.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), entity.ID()).
			Return(entity, b.ItemOwnerID, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusApproved).
			Return(nil)
		f.queries.EXPECT().GetByID(gomock.Any(), b.ItemOwnerID, entity.ID()).Return(view, nil)

		actual, err := f.commands.Approve(ctx, b.ItemOwnerID, entity.ID(), true)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("rejects a waiting booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder()
		entity := b.BuildReconstructed()

		f.expectWithin()
		f.tx.EXPECT().Bookings().Return(f.repo).Times(2)
		f.tx.EXPECT().DB().Return(nil).Times(2)
		f.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), entity.ID()).
			Return(entity, b.ItemOwnerID, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusRejected).
			Return(nil)
		f.queries.EXPECT().GetByID(gomock.Any(), b.ItemOwnerID, entity.ID()).
			Return(b.BuildView(), nil)

		_, err := f.commands.Approve(ctx, b.ItemOwnerID, entity.ID(), false)
		require.NoError(t, err)
	})

	t.Run("unknown booking is a silent no-op", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		id := uuid.New()

		f.expectWithin()
		f.tx.EXPECT().Bookings().Return(f.repo)
		f.tx.EXPECT().DB().Return(nil)
		f.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, uuid.Nil, notFoundErr)

		view, err := f.commands.Approve(ctx, uuid.New(), id, true)
		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("only the item owner can decide", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder()
		entity := b.BuildReconstructed()

		f.expectWithin()
		f.tx.EXPECT().Bookings().Return(f.repo)
		f.tx.EXPECT().DB().Return(nil)
		f.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), entity.ID()).
			Return(entity, b.ItemOwnerID, nil)

		_, err := f.commands.Approve(ctx, uuid.New(), entity.ID(), true)
		require.ErrorIs(t, err, commands.ErrApproveNotOwner)
	})

	t.Run("approved booking cannot be decided again", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusApproved)
		entity := b.BuildReconstructed()

		f.expectWithin()
		f.tx.EXPECT().Bookings().Return(f.repo)
		f.tx.EXPECT().DB().Return(nil)
		f.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), entity.ID()).
			Return(entity, b.ItemOwnerID, nil)

		_, err := f.commands.Approve(ctx, b.ItemOwnerID, entity.ID(), true)
		require.ErrorIs(t, err, commands.ErrAlreadyApproved)
	})

	t.Run("rejected booking can be flipped to approved", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusRejected)
		entity := b.BuildReconstructed()

		f.expectWithin()
		f.tx.EXPECT().Bookings().Return(f.repo).Times(2)
		f.tx.EXPECT().DB().Return(nil).Times(2)
		f.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), entity.ID()).
			Return(entity, b.ItemOwnerID, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusApproved).
			Return(nil)
		f.queries.EXPECT().GetByID(gomock.Any(), b.ItemOwnerID, entity.ID()).
			Return(b.BuildView(), nil)

		_, err := f.commands.Approve(ctx, b.ItemOwnerID, entity.ID(), true)
		require.NoError(t, err)
	})
}
