package booking

import (
	"context"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/models"
)

// DayBookingsCache is the read-path cache for a day's bookings. A nil
// implementation is allowed; the use cases fall back to the repository.
type DayBookingsCache interface {
	Get(ctx context.Context, barbershopID uint, day string) ([]models.Booking, bool)
	Set(ctx context.Context, barbershopID uint, day string, bookings []models.Booking)
	Invalidate(ctx context.Context, barbershopID uint, day string)
}

// FlowStore persists booking drafts between steps.
type FlowStore interface {
	Save(ctx context.Context, f *domain.Flow) error
	Get(ctx context.Context, id string) (*domain.Flow, error)
}

// PaymentProvider turns a priced service into a checkout link.
type PaymentProvider interface {
	CheckoutURL(ctx context.Context, shop *models.Barbershop, svc *models.Service, reference string) (string, error)
}
