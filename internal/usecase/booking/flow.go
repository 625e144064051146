package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

// BookingFlow drives the multi-step draft: start, pick a date, pick a
// slot, confirm. Each step replays the domain state machine against the
// stored draft, so out-of-order requests fail with a precise code
// instead of being silently dropped.
type BookingFlow struct {
	repo         domain.Repository
	flows        FlowStore
	availability *GetAvailability
	create       *CreateBooking
}

func NewBookingFlow(
	repo domain.Repository,
	flows FlowStore,
	availability *GetAvailability,
	create *CreateBooking,
) *BookingFlow {
	return &BookingFlow{
		repo:         repo,
		flows:        flows,
		availability: availability,
		create:       create,
	}
}

func (uc *BookingFlow) Start(
	ctx context.Context,
	userID uint,
	barbershopID uint,
	serviceID uint,
) (*domain.Flow, error) {

	if userID == 0 {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if _, err := uc.repo.GetBarbershopByID(ctx, barbershopID); err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}
	if _, err := uc.repo.GetService(ctx, barbershopID, serviceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	f := domain.NewFlow(uuid.NewString(), userID, barbershopID, serviceID, time.Now().UTC())
	if err := uc.flows.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// SelectDate advances the draft and returns the day's free slots in the
// same round trip, mirroring how the booking sheet refreshes its time
// list whenever a new date is picked.
func (uc *BookingFlow) SelectDate(
	ctx context.Context,
	userID uint,
	flowID string,
	dateStr string,
) (*domain.Flow, []domain.Slot, error) {

	f, err := uc.ownedFlow(ctx, userID, flowID)
	if err != nil {
		return nil, nil, err
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, f.BarbershopID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("barbershop_not_found")
	}

	date, err := timezone.ParseDate(shop.Timezone, dateStr)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date")
	}

	if err := f.SelectDate(dateStr, time.Now().UTC()); err != nil {
		return nil, nil, err
	}
	if err := uc.flows.Save(ctx, f); err != nil {
		return nil, nil, err
	}

	slots, err := uc.availability.Execute(ctx, f.BarbershopID, date)
	if err != nil {
		return nil, nil, err
	}
	return f, slots, nil
}

func (uc *BookingFlow) SelectSlot(
	ctx context.Context,
	userID uint,
	flowID string,
	slotStr string,
) (*domain.Flow, error) {

	f, err := uc.ownedFlow(ctx, userID, flowID)
	if err != nil {
		return nil, err
	}

	if _, err := domain.ParseSlot(slotStr); err != nil {
		return nil, err
	}

	if err := f.SelectSlot(slotStr, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := uc.flows.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *BookingFlow) Confirm(
	ctx context.Context,
	userID uint,
	flowID string,
) (*domain.Flow, *models.Booking, error) {

	f, err := uc.ownedFlow(ctx, userID, flowID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	if err := f.BeginSubmit(now); err != nil {
		return nil, nil, err
	}
	if err := uc.flows.Save(ctx, f); err != nil {
		return nil, nil, err
	}

	b, err := uc.create.Execute(ctx, CreateBookingInput{
		BarbershopID: f.BarbershopID,
		ServiceID:    f.ServiceID,
		UserID:       f.UserID,
		Date:         f.Date,
		Time:         f.Slot,
		Reference:    f.ID,
	})
	if err != nil {
		_ = f.Fail(failureCode(err), time.Now().UTC())
		_ = uc.flows.Save(ctx, f)
		return f, nil, err
	}

	if err := f.Confirm(b.ID, time.Now().UTC()); err != nil {
		return f, b, err
	}
	if err := uc.flows.Save(ctx, f); err != nil {
		return f, b, err
	}
	return f, b, nil
}

func (uc *BookingFlow) Get(
	ctx context.Context,
	userID uint,
	flowID string,
) (*domain.Flow, error) {
	return uc.ownedFlow(ctx, userID, flowID)
}

// ownedFlow hides other users' drafts behind flow_not_found.
func (uc *BookingFlow) ownedFlow(
	ctx context.Context,
	userID uint,
	flowID string,
) (*domain.Flow, error) {

	if userID == 0 {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	f, err := uc.flows.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, httperr.ErrBusiness("flow_not_found")
	}
	return f, nil
}

func failureCode(err error) string {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return "booking_failed"
}
