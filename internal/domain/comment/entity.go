package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyText = errors.New("comment text cannot be blank")

const MaxTextLength = 2000

type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	if strings.TrimSpace(s) == "" {
		return Text{}, ErrEmptyText
	}
	if len(s) > MaxTextLength {
		return Text{}, ErrEmptyText
	}
	return Text{value: s}, nil
}

func (t Text) Value() string {
	return t.value
}

// Comment is post-rental feedback a booker leaves on an item.
type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      Text
	createdAt time.Time
}

func NewComment(itemID, authorID uuid.UUID, text Text) *Comment {
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     text,
	}
}

func Reconstruct(id, itemID, authorID uuid.UUID, text Text, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() Text           { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
