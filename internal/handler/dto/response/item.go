package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"lendit/internal/usecase/queries"
)

type ItemResponse struct {
	ID          uuid.UUID             `json:"id"`
	OwnerID     uuid.UUID             `json:"ownerId"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	LastBooking *BookingBriefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingBriefResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse     `json:"comments"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

type BookingBriefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	resp := &ItemResponse{
		ID:          rm.ID,
		OwnerID:     rm.OwnerID,
		Name:        rm.Name,
		Description: rm.Description,
		Available:   rm.Available,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}

	comments := make([]CommentResponse, len(rm.Comments))
	for i := range rm.Comments {
		_ = copier.Copy(&comments[i], &rm.Comments[i])
	}
	resp.Comments = comments

	if rm.LastBooking != nil {
		resp.LastBooking = &BookingBriefResponse{}
		_ = copier.Copy(resp.LastBooking, rm.LastBooking)
	}
	if rm.NextBooking != nil {
		resp.NextBooking = &BookingBriefResponse{}
		_ = copier.Copy(resp.NextBooking, rm.NextBooking)
	}

	return resp
}

func FromCommentView(rm *queries.CommentView) *CommentResponse {
	resp := &CommentResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
