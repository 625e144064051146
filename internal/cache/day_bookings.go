package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberbook/barberbook-api/internal/models"
)

// DayBookings caches the list of bookings per (barbershop, calendar day).
// The TTL is short because the cache is only a read-path shortcut; the
// unique index on bookings is what actually prevents double writes.
type DayBookings struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDayBookings(rdb *redis.Client) *DayBookings {
	return &DayBookings{
		rdb: rdb,
		ttl: time.Minute,
	}
}

func dayKey(barbershopID uint, day string) string {
	return fmt.Sprintf("bookings:day:%d:%s", barbershopID, day)
}

func (c *DayBookings) Get(
	ctx context.Context,
	barbershopID uint,
	day string,
) ([]models.Booking, bool) {

	raw, err := c.rdb.Get(ctx, dayKey(barbershopID, day)).Bytes()
	if err != nil {
		return nil, false
	}

	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, false
	}
	return bookings, true
}

func (c *DayBookings) Set(
	ctx context.Context,
	barbershopID uint,
	day string,
	bookings []models.Booking,
) {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, dayKey(barbershopID, day), raw, c.ttl)
}

// Invalidate drops the day entry after a successful write so the next
// availability read sees the new booking immediately.
func (c *DayBookings) Invalidate(
	ctx context.Context,
	barbershopID uint,
	day string,
) {
	c.rdb.Del(ctx, dayKey(barbershopID, day))
}
