package booking

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/barberbook/barberbook-api/internal/audit"
	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	ServiceID    uint

	// Zero means no authenticated user; the write is refused.
	UserID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	// Correlates the checkout preference with the booking.
	Reference string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	cache    DayBookingsCache
	payments PaymentProvider
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	cache DayBookingsCache,
	payments PaymentProvider,
	auditor *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		cache:    cache,
		payments: payments,
		audit:    auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.UserID == 0 {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	date, err := timezone.ParseDate(shop.Timezone, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot, err := domain.ParseSlot(in.Time)
	if err != nil {
		return nil, err
	}

	// The requested slot must sit on the day's slot grid; arbitrary
	// timestamps between grid points are rejected outright.
	hours, err := uc.repo.GetOperatingHours(ctx, shop.ID, int(date.Weekday()))
	if err != nil {
		return nil, httperr.ErrBusiness("slot_outside_hours")
	}
	window := domain.WindowFor(shop, hours)
	if !window.Contains(slot) {
		return nil, httperr.ErrBusiness("slot_outside_hours")
	}

	scheduled := slot.At(date)
	if !scheduled.After(timezone.NowIn(shop.Timezone)) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	b := &models.Booking{
		BarbershopID: shop.ID,
		ServiceID:    svc.ID,
		UserID:       in.UserID,
		ScheduledAt:  scheduled.UTC(),
	}

	if uc.payments != nil {
		url, payErr := uc.payments.CheckoutURL(ctx, shop, svc, in.Reference)
		if payErr != nil {
			// a booking is never lost over a missing payment link
			log.Warn().Err(payErr).Uint("service_id", svc.ID).Msg("checkout preference failed")
		} else {
			b.PaymentURL = url
		}
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				BarbershopID: shop.ID,
				UserID:       &in.UserID,
				Action:       "booking_conflict",
				Entity:       "booking",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, shop.ID, date.Format("2006-01-02"))
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &in.UserID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}
