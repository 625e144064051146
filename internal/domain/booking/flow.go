package booking

import (
	"time"

	"github.com/barberbook/barberbook-api/internal/httperr"
)

// ===============================
// Booking Flow
// ===============================

// FlowState tracks a booking draft through its legal states. Invalid
// combinations (a slot without a date, a confirm without a slot) are
// unrepresentable: every transition checks the current state and fails
// with a distinct business code instead of being silently skipped.
type FlowState string

const (
	FlowNew          FlowState = "new"
	FlowDateSelected FlowState = "date_selected"
	FlowSlotSelected FlowState = "slot_selected"
	FlowSubmitting   FlowState = "submitting"
	FlowConfirmed    FlowState = "confirmed"
	FlowFailed       FlowState = "failed"
)

type Flow struct {
	ID string `json:"id"`

	UserID       uint `json:"user_id"`
	BarbershopID uint `json:"barbershop_id"`
	ServiceID    uint `json:"service_id"`

	State FlowState `json:"state"`

	Date string `json:"date,omitempty"` // YYYY-MM-DD
	Slot string `json:"slot,omitempty"` // HH:mm

	BookingID   *uint  `json:"booking_id,omitempty"`
	FailureCode string `json:"failure_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewFlow(id string, userID, barbershopID, serviceID uint, now time.Time) *Flow {
	return &Flow{
		ID:           id,
		UserID:       userID,
		BarbershopID: barbershopID,
		ServiceID:    serviceID,
		State:        FlowNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (f *Flow) terminal() bool {
	return f.State == FlowConfirmed || f.State == FlowSubmitting
}

// SelectDate moves the flow to date_selected and drops any previously
// chosen slot, since it belonged to the old day.
func (f *Flow) SelectDate(date string, now time.Time) error {
	if f.terminal() {
		return httperr.ErrBusiness("invalid_state")
	}

	f.Date = date
	f.Slot = ""
	f.FailureCode = ""
	f.State = FlowDateSelected
	f.UpdatedAt = now
	return nil
}

func (f *Flow) SelectSlot(slot string, now time.Time) error {
	if f.terminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	if f.Date == "" {
		return httperr.ErrBusiness("date_not_selected")
	}

	f.Slot = slot
	f.FailureCode = ""
	f.State = FlowSlotSelected
	f.UpdatedAt = now
	return nil
}

// BeginSubmit gates the actual write: it only succeeds when both date
// and slot were chosen, and a flow mid-submit cannot be submitted again.
func (f *Flow) BeginSubmit(now time.Time) error {
	switch f.State {
	case FlowSlotSelected:
	case FlowNew, FlowDateSelected:
		if f.Date == "" {
			return httperr.ErrBusiness("date_not_selected")
		}
		return httperr.ErrBusiness("slot_not_selected")
	default:
		return httperr.ErrBusiness("invalid_state")
	}

	f.State = FlowSubmitting
	f.UpdatedAt = now
	return nil
}

func (f *Flow) Confirm(bookingID uint, now time.Time) error {
	if f.State != FlowSubmitting {
		return httperr.ErrBusiness("invalid_state")
	}

	f.BookingID = &bookingID
	f.State = FlowConfirmed
	f.UpdatedAt = now
	return nil
}

// Fail records why the submit was rejected and leaves the flow
// re-submittable: the user can pick another slot and try again.
func (f *Flow) Fail(code string, now time.Time) error {
	if f.State != FlowSubmitting {
		return httperr.ErrBusiness("invalid_state")
	}

	f.FailureCode = code
	f.State = FlowFailed
	f.UpdatedAt = now
	return nil
}
