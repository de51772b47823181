package response

import (
	"time"

	"github.com/google/uuid"

	"lendit/internal/usecase/queries"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"itemId"`
	ItemName  string    `json:"itemName"`
	BookerID  uuid.UUID `json:"bookerId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID       uuid.UUID `json:"id"`
	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        rm.ID,
		ItemID:    rm.ItemID,
		ItemName:  rm.ItemName,
		BookerID:  rm.BookerID,
		Start:     rm.Start,
		End:       rm.End,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:       rm.ID,
		ItemID:   rm.ItemID,
		ItemName: rm.ItemName,
		BookerID: rm.BookerID,
		Start:    rm.Start,
		End:      rm.End,
		Status:   rm.Status,
	}
}
