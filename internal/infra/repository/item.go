package repository

import (
	"context"

	"github.com/google/uuid"

	"lendit/internal/domain/item"
	"lendit/internal/infra"
	sqlc "lendit/internal/infra/sqlc/generated"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (uuid.UUID, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) error
}

type ItemRepository struct {
	queries ItemWriteQueries
	db      sqlc.DBTX
}

func NewItemRepository(queries *sqlc.Queries, db sqlc.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (uuid.UUID, error) {
	params := sqlc.CreateItemParams{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	}

	resultID, err := r.queries.CreateItem(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}

	return resultID, nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	err := r.queries.UpdateItem(ctx, tx, sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	return nil
}
