package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

// ------------------------------------------------------
// fake repository
// ------------------------------------------------------

type fakeRepo struct {
	shop     *models.Barbershop
	hours    map[int]*models.OperatingHours
	services map[uint]*models.Service

	bookings []models.Booking
	nextID   uint

	createErr    error
	listDayErr   error
	listDayCalls int
}

func newFakeRepo() *fakeRepo {
	shop := &models.Barbershop{
		ID:              1,
		Name:            "Vintage Barber",
		Slug:            "vintage-barber",
		SlotIntervalMin: 30,
	}

	hours := map[int]*models.OperatingHours{}
	for weekday := 0; weekday < 7; weekday++ {
		hours[weekday] = &models.OperatingHours{
			BarbershopID: 1,
			Weekday:      weekday,
			Opens:        "09:00",
			Closes:       "19:00",
		}
	}

	return &fakeRepo{
		shop:  shop,
		hours: hours,
		services: map[uint]*models.Service{
			2: {ID: 2, BarbershopID: 1, Name: "Corte", Price: 50, Active: true},
		},
		nextID: 100,
	}
}

func (r *fakeRepo) ListBarbershops(_ context.Context, _ string) ([]models.Barbershop, error) {
	return []models.Barbershop{*r.shop}, nil
}

func (r *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if r.shop == nil || r.shop.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.shop, nil
}

func (r *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if r.shop == nil || r.shop.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return r.shop, nil
}

func (r *fakeRepo) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	svc, ok := r.services[serviceID]
	if !ok || svc.BarbershopID != barbershopID {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (r *fakeRepo) GetOperatingHours(_ context.Context, _ uint, weekday int) (*models.OperatingHours, error) {
	hours, ok := r.hours[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return hours, nil
}

func (r *fakeRepo) ListBookingsForDay(_ context.Context, barbershopID uint, start, end time.Time) ([]models.Booking, error) {
	r.listDayCalls++
	if r.listDayErr != nil {
		return nil, r.listDayErr
	}

	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarbershopID == barbershopID &&
			!b.ScheduledAt.Before(start) && b.ScheduledAt.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.bookings {
		if existing.BarbershopID == b.BarbershopID && existing.ScheduledAt.Equal(b.ScheduledAt) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) ListBookingsForUser(_ context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// fake day cache
// ------------------------------------------------------

type fakeCache struct {
	entries     map[string][]models.Booking
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]models.Booking{}}
}

func cacheKey(barbershopID uint, day string) string {
	return day // a single shop is enough for these tests
}

func (c *fakeCache) Get(_ context.Context, barbershopID uint, day string) ([]models.Booking, bool) {
	bookings, ok := c.entries[cacheKey(barbershopID, day)]
	return bookings, ok
}

func (c *fakeCache) Set(_ context.Context, barbershopID uint, day string, bookings []models.Booking) {
	c.entries[cacheKey(barbershopID, day)] = bookings
}

func (c *fakeCache) Invalidate(_ context.Context, barbershopID uint, day string) {
	delete(c.entries, cacheKey(barbershopID, day))
	c.invalidated = append(c.invalidated, day)
}

// ------------------------------------------------------
// fake flow store
// ------------------------------------------------------

type fakeFlows struct {
	flows map[string]domain.Flow
}

func newFakeFlows() *fakeFlows {
	return &fakeFlows{flows: map[string]domain.Flow{}}
}

func (s *fakeFlows) Save(_ context.Context, f *domain.Flow) error {
	s.flows[f.ID] = *f
	return nil
}

func (s *fakeFlows) Get(_ context.Context, id string) (*domain.Flow, error) {
	f, ok := s.flows[id]
	if !ok {
		return nil, httperr.ErrBusiness("flow_not_found")
	}
	cp := f
	return &cp, nil
}

// ------------------------------------------------------
// fake payments
// ------------------------------------------------------

type fakePayments struct {
	url  string
	err  error
	refs []string
}

func (p *fakePayments) CheckoutURL(_ context.Context, _ *models.Barbershop, _ *models.Service, reference string) (string, error) {
	p.refs = append(p.refs, reference)
	if p.err != nil {
		return "", p.err
	}
	return p.url, nil
}

var errBoom = errors.New("boom")
