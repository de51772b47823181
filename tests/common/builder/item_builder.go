//go:build unit || e2e

package builder

import (
	"time"

	"lendit/internal/domain/item"
	reqdto "lendit/internal/handler/dto/request"
	sqlc "lendit/internal/infra/sqlc/generated"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		OwnerID:     uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V cordless drill with two batteries",
		Available:   true,
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

// Build methods
func (i *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(i.OwnerID, i.Name, i.Description, i.Available)
}

func (i *ItemBuilder) BuildInfra() sqlc.Item {
	now := time.Now()
	return sqlc.Item{
		ID:          uuid.New(),
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (i *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := i.Available
	return reqdto.CreateItemRequest{
		Name:        i.Name,
		Description: i.Description,
		Available:   &available,
	}
}

func (i *ItemBuilder) BuildView() *queries.ItemView {
	now := time.Now()
	return &queries.ItemView{
		ID:          uuid.New(),
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		Comments:    []queries.CommentView{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fluent builder methods
func (i *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	i.OwnerID = ownerID
	return i
}

func (i *ItemBuilder) WithName(name string) *ItemBuilder {
	i.Name = name
	return i
}

func (i *ItemBuilder) WithDescription(description string) *ItemBuilder {
	i.Description = description
	return i
}

func (i *ItemBuilder) AsUnavailable() *ItemBuilder {
	i.Available = false
	return i
}
