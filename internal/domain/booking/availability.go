package booking

import (
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

// Available removes every slot that already has a booking on the same
// hour and minute, preserving order. Bookings are assumed to be scoped
// to the same barbershop and calendar day by the caller's query; loc is
// the shop timezone the stored UTC timestamps are read back in.
func Available(slots []Slot, bookings []models.Booking, loc *time.Location) []Slot {
	if len(bookings) == 0 {
		return slots
	}

	taken := make(map[Slot]struct{}, len(bookings))
	for _, b := range bookings {
		at := b.ScheduledAt.In(loc)
		taken[Slot{Hour: at.Hour(), Minute: at.Minute()}] = struct{}{}
	}

	free := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
