package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
)

func newFlowFixture(repo *fakeRepo) (*BookingFlow, *fakeFlows) {
	flows := newFakeFlows()
	availability := NewGetAvailability(repo, newFakeCache())
	create := NewCreateBooking(repo, newFakeCache(), nil, testAuditor())
	return NewBookingFlow(repo, flows, availability, create), flows
}

func TestBookingFlowHappyPath(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newFlowFixture(repo)
	ctx := context.Background()

	f, err := uc.Start(ctx, 7, 1, 2)
	require.NoError(t, err)
	require.NotEmpty(t, f.ID)
	assert.Equal(t, domain.FlowNew, f.State)

	f, slots, err := uc.SelectDate(ctx, 7, f.ID, futureDate())
	require.NoError(t, err)
	assert.Equal(t, domain.FlowDateSelected, f.State)
	require.Len(t, slots, 20)

	f, err = uc.SelectSlot(ctx, 7, f.ID, "10:00")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowSlotSelected, f.State)

	f, b, err := uc.Confirm(ctx, 7, f.ID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, domain.FlowConfirmed, f.State)
	require.NotNil(t, f.BookingID)
	assert.Equal(t, b.ID, *f.BookingID)

	// the confirmed state survives a reload
	got, err := uc.Get(ctx, 7, f.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FlowConfirmed, got.State)
}

func TestBookingFlowStartValidatesTargets(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newFlowFixture(repo)
	ctx := context.Background()

	_, err := uc.Start(ctx, 0, 1, 2)
	assert.True(t, httperr.IsBusiness(err, "unauthenticated"))

	_, err = uc.Start(ctx, 7, 99, 2)
	assert.True(t, httperr.IsBusiness(err, "barbershop_not_found"))

	_, err = uc.Start(ctx, 7, 1, 99)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestBookingFlowOutOfOrderSteps(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newFlowFixture(repo)
	ctx := context.Background()

	f, err := uc.Start(ctx, 7, 1, 2)
	require.NoError(t, err)

	_, err = uc.SelectSlot(ctx, 7, f.ID, "10:00")
	assert.True(t, httperr.IsBusiness(err, "date_not_selected"))

	_, _, err = uc.Confirm(ctx, 7, f.ID)
	assert.True(t, httperr.IsBusiness(err, "date_not_selected"))

	_, _, err = uc.SelectDate(ctx, 7, f.ID, futureDate())
	require.NoError(t, err)

	_, _, err = uc.Confirm(ctx, 7, f.ID)
	assert.True(t, httperr.IsBusiness(err, "slot_not_selected"))
}

func TestBookingFlowFailureAndRetry(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newFlowFixture(repo)
	ctx := context.Background()
	date := futureDate()

	// someone else already claimed 10:00 on that day
	first, err := uc.Start(ctx, 5, 1, 2)
	require.NoError(t, err)
	_, _, err = uc.SelectDate(ctx, 5, first.ID, date)
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, 5, first.ID, "10:00")
	require.NoError(t, err)
	_, _, err = uc.Confirm(ctx, 5, first.ID)
	require.NoError(t, err)

	f, err := uc.Start(ctx, 7, 1, 2)
	require.NoError(t, err)
	_, _, err = uc.SelectDate(ctx, 7, f.ID, date)
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, 7, f.ID, "10:00")
	require.NoError(t, err)

	f, _, err = uc.Confirm(ctx, 7, f.ID)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	assert.Equal(t, domain.FlowFailed, f.State)
	assert.Equal(t, "slot_taken", f.FailureCode)

	// picking another slot recovers the draft
	f, err = uc.SelectSlot(ctx, 7, f.ID, "10:30")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowSlotSelected, f.State)

	f, b, err := uc.Confirm(ctx, 7, f.ID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, domain.FlowConfirmed, f.State)
}

func TestBookingFlowOwnership(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newFlowFixture(repo)
	ctx := context.Background()

	f, err := uc.Start(ctx, 7, 1, 2)
	require.NoError(t, err)

	// another user never learns the draft exists
	_, err = uc.Get(ctx, 8, f.ID)
	assert.True(t, httperr.IsBusiness(err, "flow_not_found"))

	_, _, err = uc.SelectDate(ctx, 8, f.ID, futureDate())
	assert.True(t, httperr.IsBusiness(err, "flow_not_found"))

	_, err = uc.Get(ctx, 7, "no-such-flow")
	assert.True(t, httperr.IsBusiness(err, "flow_not_found"))
}
