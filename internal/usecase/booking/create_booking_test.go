package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

func testAuditor() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func futureDate() string {
	loc := timezone.Location(timezone.Default)
	return time.Now().In(loc).AddDate(0, 0, 7).Format("2006-01-02")
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		BarbershopID: 1,
		ServiceID:    2,
		UserID:       7,
		Date:         futureDate(),
		Time:         "10:00",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	uc := NewCreateBooking(repo, cache, nil, testAuditor())

	in := validInput()
	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotZero(t, b.ID)
	assert.Equal(t, uint(7), b.UserID)
	assert.Equal(t, time.UTC, b.ScheduledAt.Location())

	loc := timezone.Location(timezone.Default)
	local := b.ScheduledAt.In(loc)
	assert.Equal(t, 10, local.Hour())
	assert.Equal(t, 0, local.Minute())
	assert.Equal(t, in.Date, local.Format("2006-01-02"))

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, []string{in.Date}, cache.invalidated)
}

func TestCreateBookingRequiresUser(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newFakeCache(), nil, testAuditor())

	in := validInput()
	in.UserID = 0

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "unauthenticated"))
	assert.Empty(t, repo.bookings)
}

func TestCreateBookingValidation(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		wantCode string
	}{
		{"unknown shop", func(in *CreateBookingInput) { in.BarbershopID = 99 }, "barbershop_not_found"},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceID = 99 }, "service_not_found"},
		{"bad date", func(in *CreateBookingInput) { in.Date = "10/03/2027" }, "invalid_date"},
		{"bad time", func(in *CreateBookingInput) { in.Time = "10h00" }, "invalid_time"},
		{"before opening", func(in *CreateBookingInput) { in.Time = "08:30" }, "slot_outside_hours"},
		{"at closing", func(in *CreateBookingInput) { in.Time = "19:00" }, "slot_outside_hours"},
		{"off the grid", func(in *CreateBookingInput) { in.Time = "10:15" }, "slot_outside_hours"},
		{"in the past", func(in *CreateBookingInput) { in.Date = "2020-01-06" }, "slot_in_past"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewCreateBooking(repo, newFakeCache(), nil, testAuditor())

			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.wantCode), "got %v", err)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestCreateBookingSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	uc := NewCreateBooking(repo, cache, nil, testAuditor())

	in := validInput()
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	cache.invalidated = nil

	in.UserID = 8
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	require.Len(t, repo.bookings, 1)
	assert.Empty(t, cache.invalidated)
}

func TestCreateBookingAttachesPaymentURL(t *testing.T) {
	repo := newFakeRepo()
	payments := &fakePayments{url: "https://pay.example/checkout/1"}
	uc := NewCreateBooking(repo, newFakeCache(), payments, testAuditor())

	in := validInput()
	in.Reference = "ref-123"

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, payments.url, b.PaymentURL)
	assert.Equal(t, []string{"ref-123"}, payments.refs)
}

func TestCreateBookingSurvivesPaymentFailure(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newFakeCache(), &fakePayments{err: errBoom}, testAuditor())

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Empty(t, b.PaymentURL)
	require.Len(t, repo.bookings, 1)
}
