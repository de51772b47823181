//go:build unit

package queries_test

import (
	"testing"

	"lendit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("snaps from to the page it falls into", func(t *testing.T) {
		cases := []struct {
			name       string
			from, size int
			limit      int32
			offset     int32
		}{
			{name: "first page", from: 0, size: 10, limit: 10, offset: 0},
			{name: "mid-page from snaps back", from: 5, size: 10, limit: 10, offset: 0},
			{name: "exact page boundary", from: 10, size: 10, limit: 10, offset: 10},
			{name: "second page with remainder", from: 25, size: 10, limit: 10, offset: 20},
			{name: "size one", from: 3, size: 1, limit: 1, offset: 3},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				page, err := queries.NewPage(c.from, c.size)
				require.NoError(t, err)
				assert.Equal(t, c.limit, page.Limit)
				assert.Equal(t, c.offset, page.Offset)
			})
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, c := range []struct {
			name       string
			from, size int
		}{
			{name: "negative from", from: -1, size: 10},
			{name: "zero size", from: 0, size: 0},
			{name: "negative size", from: 0, size: -5},
		} {
			t.Run(c.name, func(t *testing.T) {
				_, err := queries.NewPage(c.from, c.size)
				require.ErrorIs(t, err, queries.ErrInvalidPagination)
			})
		}
	})
}
