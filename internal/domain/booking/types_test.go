//go:build unit

package booking_test

import (
	"testing"

	"lendit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	t.Run("empty value defaults to ALL", func(t *testing.T) {
		state, err := booking.ParseState("")
		require.NoError(t, err)
		assert.Equal(t, booking.StateAll, state)
	})

	t.Run("every named state parses", func(t *testing.T) {
		for _, raw := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
			state, err := booking.ParseState(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, booking.State(raw), state)
		}
	})

	t.Run("unknown value is rejected", func(t *testing.T) {
		for _, raw := range []string{"all", "APPROVED", "CANCELED", "bogus"} {
			_, err := booking.ParseState(raw)
			require.ErrorIs(t, err, booking.ErrUnsupportedState, raw)
		}
	})
}

func TestState_Statuses(t *testing.T) {
	all := []booking.Status{
		booking.StatusWaiting,
		booking.StatusApproved,
		booking.StatusRejected,
		booking.StatusCancelled,
	}

	t.Run("WAITING narrows to waiting only", func(t *testing.T) {
		assert.Equal(t, []booking.Status{booking.StatusWaiting}, booking.StateWaiting.Statuses())
	})

	t.Run("REJECTED narrows to rejected only", func(t *testing.T) {
		assert.Equal(t, []booking.Status{booking.StatusRejected}, booking.StateRejected.Statuses())
	})

	t.Run("temporal states match every status", func(t *testing.T) {
		for _, state := range []booking.State{
			booking.StateAll,
			booking.StateCurrent,
			booking.StatePast,
			booking.StateFuture,
		} {
			assert.Equal(t, all, state.Statuses(), string(state))
		}
	})
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusWaiting,
		booking.StatusApproved,
		booking.StatusRejected,
		booking.StatusCancelled,
	} {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, booking.Status("PENDING").IsValid())
	assert.False(t, booking.Status("").IsValid())
}
