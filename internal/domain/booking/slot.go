package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/barberbook/barberbook-api/internal/httperr"
)

// Slot is a candidate appointment start time within a day, minute precision.
type Slot struct {
	Hour   int
	Minute int
}

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// At resolves the slot against a calendar day, keeping the day's location.
func (s Slot) At(day time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		s.Hour, s.Minute, 0, 0,
		day.Location(),
	)
}

func ParseSlot(v string) (Slot, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return Slot{}, httperr.ErrBusiness("invalid_time")
	}

	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Slot{}, httperr.ErrBusiness("invalid_time")
	}

	return Slot{Hour: hour, Minute: minute}, nil
}
