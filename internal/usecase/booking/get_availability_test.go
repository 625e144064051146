package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

// a Wednesday, far enough out that nothing about "now" matters here
func testDay(t *testing.T) time.Time {
	t.Helper()
	loc := timezone.Location(timezone.Default)
	return time.Date(2027, time.March, 10, 0, 0, 0, 0, loc)
}

func TestGetAvailabilityFullDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, newFakeCache())

	slots, err := uc.Execute(context.Background(), 1, testDay(t))
	require.NoError(t, err)

	require.Len(t, slots, 20)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "18:30", slots[len(slots)-1].String())
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.hours[3].Closed = true
	uc := NewGetAvailability(repo, newFakeCache())

	slots, err := uc.Execute(context.Background(), 1, testDay(t))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityMissingSchedule(t *testing.T) {
	repo := newFakeRepo()
	delete(repo.hours, 3)
	uc := NewGetAvailability(repo, newFakeCache())

	slots, err := uc.Execute(context.Background(), 1, testDay(t))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityFiltersBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	loc := timezone.Location(timezone.Default)
	day := testDay(t)

	repo.bookings = append(repo.bookings, models.Booking{
		ID:           1,
		BarbershopID: 1,
		ScheduledAt:  time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, loc).UTC(),
	})

	uc := NewGetAvailability(repo, newFakeCache())
	slots, err := uc.Execute(context.Background(), 1, day)
	require.NoError(t, err)

	require.Len(t, slots, 19)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.String())
	}
}

func TestGetAvailabilityUsesCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	uc := NewGetAvailability(repo, cache)
	day := testDay(t)

	_, err := uc.Execute(context.Background(), 1, day)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listDayCalls)

	// the second read for the same day is served from the cache
	_, err = uc.Execute(context.Background(), 1, day)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listDayCalls)
}

func TestGetAvailabilityUnknownShop(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, newFakeCache())

	_, err := uc.Execute(context.Background(), 99, testDay(t))
	assert.Error(t, err)
}
