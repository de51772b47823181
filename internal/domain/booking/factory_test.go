//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lendit/internal/domain/booking"
	"lendit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factoryCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestFactory_NewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.Start, actual.Period().Start())
		assert.Equal(t, b.End, actual.Period().End())
	})

	t.Run("item checks", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "unavailable item",
				mutate: func(b *builder.BookingBuilder) { b.AsUnavailableItem() },
				errIs:  booking.ErrItemUnavailable,
			},
			{
				name:   "booker owns the item",
				mutate: func(b *builder.BookingBuilder) { b.AsOwnItem() },
				errIs:  booking.ErrBookedByOwner,
			},
			{
				// availability is checked before ownership
				name: "unavailable own item reports unavailability",
				mutate: func(b *builder.BookingBuilder) {
					b.AsUnavailableItem()
					b.AsOwnItem()
				},
				errIs: booking.ErrItemUnavailable,
			},
		})
	})

	t.Run("period validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name: "start exactly at now is accepted",
				mutate: func(b *builder.BookingBuilder) {
					b.WithPeriod(b.Now, b.Now.Add(time.Hour))
				},
			},
			{
				name: "start in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.WithPeriod(b.Now.Add(-time.Minute), b.Now.Add(time.Hour))
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "end equals start",
				mutate: func(b *builder.BookingBuilder) {
					b.WithPeriod(b.Start, b.Start)
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "end before start",
				mutate: func(b *builder.BookingBuilder) {
					b.WithPeriod(b.End, b.Start)
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				// ownership is checked before dates
				name: "own item with bad period reports ownership",
				mutate: func(b *builder.BookingBuilder) {
					b.AsOwnItem()
					b.WithPeriod(b.End, b.Start)
				},
				errIs: booking.ErrBookedByOwner,
			},
		})
	})
}

func runFactoryCases(t *testing.T, cases []factoryCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
