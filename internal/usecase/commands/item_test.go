//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lendit/internal/domain/item"
	reqdto "lendit/internal/handler/dto/request"
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

type itemCommandsFixture struct {
	commands commands.ItemCommands
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	items    *sharedmock.MockItemRepository
	comments *sharedmock.MockCommentRepository
	queries  *queriesmock.MockItemQueries
}

func newItemCommandsFixture(t *testing.T) *itemCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &itemCommandsFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		items:    sharedmock.NewMockItemRepository(ctrl),
		comments: sharedmock.NewMockCommentRepository(ctrl),
		queries:  queriesmock.NewMockItemQueries(ctrl),
	}

	f.commands = commands.NewItemCommands(f.uow, f.queries, clock.NewMockClock(testCommandClock))
	return f
}

func (f *itemCommandsFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func TestItemCommands_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("creates an item and reads it back", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		b := builder.NewItemBuilder().WithOwner(ownerID)
		view := b.BuildView()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), ownerID).
			Return(&shared.UserSnapshot{ID: ownerID}, nil)

		f.expectWithin()
		f.tx.EXPECT().Items().Return(f.items)
		f.tx.EXPECT().DB().Return(nil)
		f.items.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entity *item.Item) (uuid.UUID, error) {
				assert.Equal(t, ownerID, entity.OwnerID())
				assert.Equal(t, b.Name, entity.Name())
				return entity.ID(), nil
			})

		f.queries.EXPECT().GetByID(gomock.Any(), ownerID, gomock.Any()).Return(view, nil)

		actual, err := f.commands.Create(ctx, b.BuildCreateRequestDTO(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), ownerID).Return(nil, notFoundErr)

		_, err := f.commands.Create(ctx, builder.NewItemBuilder().BuildCreateRequestDTO(), ownerID)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		req := builder.NewItemBuilder().WithName("   ").BuildCreateRequestDTO()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), ownerID).
			Return(&shared.UserSnapshot{ID: ownerID}, nil)

		_, err := f.commands.Create(ctx, req, ownerID)
		require.ErrorIs(t, err, commands.ErrInvalidItem)
	})
}

func TestItemCommands_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	itemID := uuid.New()

	snap := &shared.ItemSnapshot{
		ID:          itemID,
		OwnerID:     ownerID,
		Name:        "Cordless Drill",
		Description: "18V cordless drill with two batteries",
		Available:   true,
	}

	t.Run("missing item", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(nil, notFoundErr)

		_, err := f.commands.Update(ctx, reqdto.UpdateItemRequest{}, ownerID, itemID)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("only the owner can edit", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(snap, nil)

		_, err := f.commands.Update(ctx, reqdto.UpdateItemRequest{}, uuid.New(), itemID)
		require.ErrorIs(t, err, commands.ErrItemEditForbidden)
	})

	t.Run("omitted fields keep their stored values", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		available := false
		view := builder.NewItemBuilder().WithOwner(ownerID).BuildView()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(snap, nil)

		f.expectWithin()
		f.tx.EXPECT().Items().Return(f.items)
		f.tx.EXPECT().DB().Return(nil)
		f.items.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entity *item.Item) error {
				assert.Equal(t, snap.Name, entity.Name())
				assert.Equal(t, snap.Description, entity.Description())
				assert.False(t, entity.Available())
				return nil
			})

		f.queries.EXPECT().GetByID(gomock.Any(), ownerID, itemID).Return(view, nil)

		_, err := f.commands.Update(ctx, reqdto.UpdateItemRequest{Available: &available}, ownerID, itemID)
		require.NoError(t, err)
	})

	t.Run("blank name in patch", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		blank := "  "

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(snap, nil)

		_, err := f.commands.Update(ctx, reqdto.UpdateItemRequest{Name: &blank}, ownerID, itemID)
		require.ErrorIs(t, err, commands.ErrInvalidItem)
	})
}

func TestItemCommands_AddComment(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	itemID := uuid.New()
	req := reqdto.CreateCommentRequest{Text: "Great drill, batteries last"}

	expectItemAndAuthor := func(f *itemCommandsFixture) {
		f.reads.EXPECT().ItemByID(gomock.Any(), itemID).
			Return(&shared.ItemSnapshot{ID: itemID, OwnerID: uuid.New(), Available: true}, nil)
		f.reads.EXPECT().UserByID(gomock.Any(), authorID).
			Return(&shared.UserSnapshot{ID: authorID, Name: "Frequent Renter"}, nil)
	}

	t.Run("author with a finished booking can comment", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		expectItemAndAuthor(f)
		// any finished booking qualifies, not just one on this item
		f.reads.EXPECT().HasFinishedBooking(gomock.Any(), authorID, testCommandClock).
			Return(true, nil)

		f.expectWithin()
		f.tx.EXPECT().Comments().Return(f.comments)
		f.tx.EXPECT().DB().Return(nil)
		f.comments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil)

		actual, err := f.commands.AddComment(ctx, req, authorID, itemID)
		require.NoError(t, err)
		assert.Equal(t, req.Text, actual.Text)
		assert.Equal(t, "Frequent Renter", actual.AuthorName)
		assert.Equal(t, testCommandClock, actual.CreatedAt)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(nil, notFoundErr)

		_, err := f.commands.AddComment(ctx, req, authorID, itemID)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("missing author", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().ItemByID(gomock.Any(), itemID).
			Return(&shared.ItemSnapshot{ID: itemID}, nil)
		f.reads.EXPECT().UserByID(gomock.Any(), authorID).Return(nil, notFoundErr)

		_, err := f.commands.AddComment(ctx, req, authorID, itemID)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("no finished booking yet", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		expectItemAndAuthor(f)
		f.reads.EXPECT().HasFinishedBooking(gomock.Any(), authorID, testCommandClock).
			Return(false, nil)

		_, err := f.commands.AddComment(ctx, req, authorID, itemID)
		require.ErrorIs(t, err, commands.ErrCommentBeforeBooking)
	})

	t.Run("blank text", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		expectItemAndAuthor(f)
		f.reads.EXPECT().HasFinishedBooking(gomock.Any(), authorID, testCommandClock).
			Return(true, nil)

		_, err := f.commands.AddComment(ctx, reqdto.CreateCommentRequest{Text: "   "}, authorID, itemID)
		require.ErrorIs(t, err, commands.ErrInvalidComment)
	})
}
