package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lendit/internal/domain/comment"
	"lendit/internal/domain/item"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/pkg/patch"
	"lendit/internal/usecase/queries"
	"lendit/internal/usecase/shared"
)

var (
	ErrInvalidItem          = errs.New("invalid item data")
	ErrItemEditForbidden    = errs.New("only the owner can edit an item")
	ErrCommentBeforeBooking = errs.New("commenting requires a finished booking")
	ErrInvalidComment       = errs.New("invalid comment")
)

type ItemCommands interface {
	Create(ctx context.Context, req reqdto.CreateItemRequest, ownerID uuid.UUID) (*queries.ItemView, error)
	Update(ctx context.Context, req reqdto.UpdateItemRequest, actorID, itemID uuid.UUID) (*queries.ItemView, error)
	AddComment(ctx context.Context, req reqdto.CreateCommentRequest, authorID, itemID uuid.UUID) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	uow         shared.UnitOfWork
	itemQueries queries.ItemQueries
	clock       clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, itemQueries queries.ItemQueries, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{
		uow:         uow,
		itemQueries: itemQueries,
		clock:       clk,
	}
}

func (i *itemCommandsImpl) Create(ctx context.Context, req reqdto.CreateItemRequest, ownerID uuid.UUID) (*queries.ItemView, error) {
	reads := i.uow.CommandReads()

	if _, err := reads.UserByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	entity, err := item.NewItem(ownerID, req.Name, req.Description, *req.Available)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItem)
	}

	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Items().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	return i.itemQueries.GetByID(ctx, ownerID, entity.ID())
}

// Update applies a partial edit. Omitted fields keep their stored
// values; only the owner may edit.
func (i *itemCommandsImpl) Update(ctx context.Context, req reqdto.UpdateItemRequest, actorID, itemID uuid.UUID) (*queries.ItemView, error) {
	reads := i.uow.CommandReads()

	snap, err := reads.ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if snap.OwnerID != actorID {
		return nil, ErrItemEditForbidden
	}

	entity := item.Reconstruct(snap.ID, snap.OwnerID, snap.Name, snap.Description, snap.Available, i.clock.Now(), i.clock.Now())
	err = entity.Update(
		patch.Coalesce(req.Name, snap.Name),
		patch.Coalesce(req.Description, snap.Description),
		patch.Coalesce(req.Available, snap.Available),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItem)
	}

	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Items().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return i.itemQueries.GetByID(ctx, actorID, itemID)
}

// AddComment requires the author to have at least one finished booking
// on any item, not necessarily the one being commented on.
func (i *itemCommandsImpl) AddComment(ctx context.Context, req reqdto.CreateCommentRequest, authorID, itemID uuid.UUID) (*queries.CommentView, error) {
	reads := i.uow.CommandReads()

	if _, err := reads.ItemByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	author, err := reads.UserByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	hasFinished, err := reads.HasFinishedBooking(ctx, authorID, i.clock.Now())
	if err != nil {
		return nil, err
	}
	if !hasFinished {
		return nil, ErrCommentBeforeBooking
	}

	text, err := comment.NewText(req.Text)
	if err != nil {
		if errors.Is(err, comment.ErrEmptyText) {
			return nil, errs.Mark(err, ErrInvalidComment)
		}
		return nil, err
	}

	entity := comment.NewComment(itemID, authorID, text)

	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Comments().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	return &queries.CommentView{
		ID:         entity.ID(),
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text.Value(),
		CreatedAt:  i.clock.Now(),
	}, nil
}
