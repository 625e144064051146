package booking

import (
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

// Window is one day's operating configuration: an opening time (inclusive),
// a closing time (exclusive for slot starts) and the step between slots.
type Window struct {
	Opens       string // "15:04"
	Closes      string // "15:04"
	IntervalMin int
}

// WindowFor combines a weekday's operating hours with the shop's slot
// interval. A closed weekday, or one with no hours row, yields a zero
// Window whose Slots() is empty.
func WindowFor(shop *models.Barbershop, hours *models.OperatingHours) Window {
	if hours == nil || hours.Closed {
		return Window{}
	}

	interval := shop.SlotIntervalMin
	if interval <= 0 {
		interval = 30
	}

	return Window{
		Opens:       hours.Opens,
		Closes:      hours.Closes,
		IntervalMin: interval,
	}
}

// Slots enumerates every candidate start time of the window, earliest
// first. 09:00-19:00 at 30 minutes produces 09:00 through 18:30; a window
// that opens at or after it closes produces nothing. The result depends
// only on the window, never on which calendar day it is applied to.
func (w Window) Slots() []Slot {
	opens, okOpen := minutesOfDay(w.Opens)
	closes, okClose := minutesOfDay(w.Closes)
	if !okOpen || !okClose || w.IntervalMin <= 0 {
		return nil
	}

	var slots []Slot
	for cur := opens; cur < closes; cur += w.IntervalMin {
		slots = append(slots, Slot{Hour: cur / 60, Minute: cur % 60})
	}
	return slots
}

// Contains reports whether the slot is one the window would generate,
// so arbitrary write-time timestamps cannot land between grid points.
func (w Window) Contains(s Slot) bool {
	for _, candidate := range w.Slots() {
		if candidate == s {
			return true
		}
	}
	return false
}

func minutesOfDay(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
