package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lendit/internal/infra"
	sqlc "lendit/internal/infra/sqlc/generated"
	"lendit/internal/pkg/pgconv"
	"lendit/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	ListBookingsByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByBookerParams) ([]sqlc.ListBookingsByBookerRow, error)
	ListBookingsByBookerCurrent(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByBookerCurrentParams) ([]sqlc.ListBookingsByBookerCurrentRow, error)
	ListBookingsByBookerPast(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByBookerPastParams) ([]sqlc.ListBookingsByBookerPastRow, error)
	ListBookingsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByOwnerParams) ([]sqlc.ListBookingsByOwnerRow, error)
	ListBookingsByOwnerCurrent(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByOwnerCurrentParams) ([]sqlc.ListBookingsByOwnerCurrentRow, error)
	ListBookingsByOwnerPast(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByOwnerPastParams) ([]sqlc.ListBookingsByOwnerPastRow, error)
	HasFinishedBookingByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.HasFinishedBookingByBookerParams) (bool, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:          row.ID,
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		ItemOwnerID: row.ItemOwnerID,
		BookerID:    row.BookerID,
		Start:       pgconv.TimeFromPgtype(row.StartAt),
		End:         pgconv.TimeFromPgtype(row.EndAt),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID uuid.UUID, statuses []string, page queries.Page) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByBooker(ctx, r.db, sqlc.ListBookingsByBookerParams{
		BookerID: bookerID,
		Statuses: statuses,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:       row.ID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartAt),
			End:      pgconv.TimeFromPgtype(row.EndAt),
			Status:   row.Status,
		}
	}
	return result, nil
}

func (r *BookingReadStore) ListByBookerCurrent(ctx context.Context, bookerID uuid.UUID, statuses []string, now time.Time, page queries.Page) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByBookerCurrent(ctx, r.db, sqlc.ListBookingsByBookerCurrentParams{
		BookerID: bookerID,
		Statuses: statuses,
		Now:      pgconv.TimeToPgtype(now),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list current bookings by booker", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:       row.ID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartAt),
			End:      pgconv.TimeFromPgtype(row.EndAt),
			Status:   row.Status,
		}
	}
	return result, nil
}

func (r *BookingReadStore) ListByBookerPast(ctx context.Context, bookerID uuid.UUID, statuses []string, now time.Time, page queries.Page) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByBookerPast(ctx, r.db, sqlc.ListBookingsByBookerPastParams{
		BookerID: bookerID,
		Statuses: statuses,
		Now:      pgconv.TimeToPgtype(now),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list past bookings by booker", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:       row.ID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartAt),
			End:      pgconv.TimeFromPgtype(row.EndAt),
			Status:   row.Status,
		}
	}
	return result, nil
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, statuses []string, page queries.Page) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByOwner(ctx, r.db, sqlc.ListBookingsByOwnerParams{
		OwnerID:  ownerID,
		Statuses: statuses,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:       row.ID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartAt),
			End:      pgconv.TimeFromPgtype(row.EndAt),
			Status:   row.Status,
		}
	}
	return result, nil
}

func (r *BookingReadStore) ListByOwnerCurrent(ctx context.Context, ownerID uuid.UUID, statuses []string, now time.Time, page queries.Page) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByOwnerCurrent(ctx, r.db, sqlc.ListBookingsByOwnerCurrentParams{
		OwnerID:  ownerID,
		Statuses: statuses,
		Now:      pgconv.TimeToPgtype(now),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list current bookings by owner", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:       row.ID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartAt),
			End:      pgconv.TimeFromPgtype(row.EndAt),
			Status:   row.Status,
		}
	}
	return result, nil
}

func (r *BookingReadStore) ListByOwnerPast(ctx context.Context, ownerID uuid.UUID, statuses []string, now time.Time, page queries.Page) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByOwnerPast(ctx, r.db, sqlc.ListBookingsByOwnerPastParams{
		OwnerID:  ownerID,
		Statuses: statuses,
		Now:      pgconv.TimeToPgtype(now),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list past bookings by owner", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:       row.ID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartAt),
			End:      pgconv.TimeFromPgtype(row.EndAt),
			Status:   row.Status,
		}
	}
	return result, nil
}

// HasFinishedBooking reports whether the booker has at least one
// booking whose rental window already ended, on any item.
func (r *BookingReadStore) HasFinishedBooking(ctx context.Context, bookerID uuid.UUID, now time.Time) (bool, error) {
	has, err := r.queries.HasFinishedBookingByBooker(ctx, r.db, sqlc.HasFinishedBookingByBookerParams{
		BookerID: bookerID,
		Now:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return has, nil
}
