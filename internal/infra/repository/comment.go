package repository

import (
	"context"

	"github.com/google/uuid"

	"lendit/internal/domain/comment"
	"lendit/internal/infra"
	sqlc "lendit/internal/infra/sqlc/generated"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (uuid.UUID, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
	db      sqlc.DBTX
}

func NewCommentRepository(queries *sqlc.Queries, db sqlc.DBTX) *CommentRepository {
	return &CommentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (uuid.UUID, error) {
	params := sqlc.CreateCommentParams{
		ID:       c.ID(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Text:     c.Text().Value(),
	}

	resultID, err := r.queries.CreateComment(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}

	return resultID, nil
}
