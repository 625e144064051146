package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/models"
)

func bookingAt(t *testing.T, loc *time.Location, hour, minute int) models.Booking {
	t.Helper()
	return models.Booking{
		ScheduledAt: time.Date(2026, 3, 10, hour, minute, 0, 0, loc).UTC(),
	}
}

func TestAvailableIdentityWithoutBookings(t *testing.T) {
	loc := time.UTC
	slots := fullDay().Slots()

	assert.Equal(t, slots, Available(slots, nil, loc))
	assert.Equal(t, slots, Available(slots, []models.Booking{}, loc))
}

func TestAvailableRemovesBookedSlot(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	slots := fullDay().Slots()
	free := Available(slots, []models.Booking{bookingAt(t, loc, 10, 0)}, loc)

	require.Len(t, free, 19)
	for _, s := range free {
		assert.NotEqual(t, "10:00", s.String())
	}

	// order of the survivors is unchanged
	assert.Equal(t, "09:00", free[0].String())
	assert.Equal(t, "09:30", free[1].String())
	assert.Equal(t, "10:30", free[2].String())
	assert.Equal(t, "18:30", free[len(free)-1].String())
}

func TestAvailableFullyBookedDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	slots := fullDay().Slots()

	bookings := make([]models.Booking, 0, len(slots))
	for _, s := range slots {
		bookings = append(bookings, bookingAt(t, loc, s.Hour, s.Minute))
	}

	assert.Empty(t, Available(slots, bookings, loc))
}

func TestAvailableIgnoresOffGridBookings(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	slots := fullDay().Slots()

	// a booking at 10:15 matches no slot, so nothing is removed
	free := Available(slots, []models.Booking{bookingAt(t, loc, 10, 15)}, loc)
	assert.Equal(t, slots, free)
}
