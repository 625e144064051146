package booking

import (
	"context"
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

// Repository is the persistence surface the booking core needs: four
// read shapes plus the single write.
type Repository interface {
	// -------- Barbershop --------
	ListBarbershops(
		ctx context.Context,
		search string,
	) ([]models.Barbershop, error)

	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Schedule --------
	GetOperatingHours(
		ctx context.Context,
		barbershopID uint,
		weekday int,
	) (*models.OperatingHours, error)

	// -------- Booking --------
	ListBookingsForDay(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// CreateBooking returns the slot_taken business error when the
	// (barbershop, timestamp) unique index rejects the insert.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}
