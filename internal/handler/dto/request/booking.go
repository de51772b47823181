package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var errMissingPeriod = errors.New("start and end are required")

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

func (r CreateBookingRequest) ToDomain() (uuid.UUID, time.Time, time.Time, error) {
	if r.Start.IsZero() || r.End.IsZero() {
		return uuid.Nil, time.Time{}, time.Time{}, errMissingPeriod
	}
	return r.ItemID, r.Start, r.End, nil
}
