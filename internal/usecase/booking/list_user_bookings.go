package booking

import (
	"context"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	if userID == 0 {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	return uc.repo.ListBookingsForUser(ctx, userID)
}
