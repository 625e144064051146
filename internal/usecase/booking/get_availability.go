package booking

import (
	"context"
	"time"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache DayBookingsCache
}

func NewGetAvailability(repo domain.Repository, cache DayBookingsCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// Execute returns the free slots of a barbershop on a calendar day:
// the weekday's full slot grid minus every slot an existing booking
// occupies on the exact hour and minute.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
) ([]domain.Slot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	hours, err := uc.repo.GetOperatingHours(ctx, shop.ID, int(date.Weekday()))
	if err != nil {
		// no schedule row means the shop does not open that day
		return []domain.Slot{}, nil
	}

	slots := domain.WindowFor(shop, hours).Slots()
	if len(slots) == 0 {
		return []domain.Slot{}, nil
	}

	loc := timezone.Location(shop.Timezone)
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)
	dayKey := dayStart.Format("2006-01-02")

	bookings, err := uc.dayBookings(ctx, shop.ID, dayKey, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return domain.Available(slots, bookings, loc), nil
}

func (uc *GetAvailability) dayBookings(
	ctx context.Context,
	barbershopID uint,
	dayKey string,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, barbershopID, dayKey); ok {
			return cached, nil
		}
	}

	bookings, err := uc.repo.ListBookingsForDay(ctx, barbershopID, start, end)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, barbershopID, dayKey, bookings)
	}
	return bookings, nil
}
