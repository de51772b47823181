package converter

import (
	"lendit/internal/domain/booking"
	sqlc "lendit/internal/infra/sqlc/generated"
	"lendit/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:       b.ID(),
		ItemID:   b.ItemID(),
		BookerID: b.BookerID(),
		StartAt:  pgconv.TimeToPgtype(b.Period().Start()),
		EndAt:    pgconv.TimeToPgtype(b.Period().End()),
		Status:   b.Status().String(),
	}
}

// BookingFromLockedRow rebuilds the aggregate from a row locked with
// SELECT ... FOR UPDATE so approval decisions run on current state.
func BookingFromLockedRow(row sqlc.GetBookingForUpdateRow) *booking.Booking {
	period := booking.ReconstructPeriod(
		pgconv.TimeFromPgtype(row.StartAt),
		pgconv.TimeFromPgtype(row.EndAt),
	)
	return booking.Reconstruct(
		row.ID,
		row.ItemID,
		row.BookerID,
		period,
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
