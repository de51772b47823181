package readstore

import (
	"context"

	"github.com/google/uuid"

	"lendit/internal/infra"
	sqlc "lendit/internal/infra/sqlc/generated"
	"lendit/internal/pkg/pgconv"
	"lendit/internal/usecase/queries"
)

type ItemViewQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Item, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsByOwnerParams) ([]sqlc.Item, error)
	ListBookingsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []uuid.UUID) ([]sqlc.Booking, error)
	ListCommentsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []uuid.UUID) ([]sqlc.ListCommentsByItemIDsRow, error)
}

type ItemReadStore struct {
	queries ItemViewQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return rowToItemView(row), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, page queries.Page) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, sqlc.ListItemsByOwnerParams{
		OwnerID: ownerID,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}

	result := make([]*queries.ItemView, len(rows))
	for i, row := range rows {
		result[i] = rowToItemView(row)
	}
	return result, nil
}

func (r *ItemReadStore) BookingsForItems(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.ItemBookingView, error) {
	rows, err := r.queries.ListBookingsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for items", err)
	}

	result := make([]*queries.ItemBookingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ItemBookingView{
			ID:       row.ID,
			ItemID:   row.ItemID,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartAt),
			End:      pgconv.TimeFromPgtype(row.EndAt),
			Status:   row.Status,
		}
	}
	return result, nil
}

func (r *ItemReadStore) CommentsForItems(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments for items", err)
	}

	result := make([]*queries.CommentView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CommentView{
			ID:         row.ID,
			ItemID:     row.ItemID,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			Text:       row.Text,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func rowToItemView(row sqlc.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
