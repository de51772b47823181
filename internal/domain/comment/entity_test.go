//go:build unit

package comment_test

import (
	"strings"
	"testing"

	"lendit/internal/domain/comment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	t.Run("accepts plain text", func(t *testing.T) {
		text, err := comment.NewText("Great drill, worked like new")
		require.NoError(t, err)
		assert.Equal(t, "Great drill, worked like new", text.Value())
	})

	t.Run("accepts text at the maximum length", func(t *testing.T) {
		_, err := comment.NewText(strings.Repeat("a", comment.MaxTextLength))
		require.NoError(t, err)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := comment.NewText(raw)
			require.ErrorIs(t, err, comment.ErrEmptyText)
		}
	})

	t.Run("rejects text over the maximum length", func(t *testing.T) {
		_, err := comment.NewText(strings.Repeat("a", comment.MaxTextLength+1))
		require.ErrorIs(t, err, comment.ErrEmptyText)
	})
}

func TestNewComment(t *testing.T) {
	itemID := uuid.New()
	authorID := uuid.New()

	text, err := comment.NewText("Handy and well maintained")
	require.NoError(t, err)

	c := comment.NewComment(itemID, authorID, text)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, itemID, c.ItemID())
	assert.Equal(t, authorID, c.AuthorID())
	assert.Equal(t, text, c.Text())
}
