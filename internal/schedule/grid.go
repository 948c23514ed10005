package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Hours describes the bookable window of a single business day.
// Slots are StepMinutes long and start at Open; the last slot ends at Close.
type Hours struct {
	Open        string // "HH:MM"
	Close       string // "HH:MM"
	StepMinutes int
}

// DefaultHours is the shop schedule: 09:00-18:00 in 30 minute slots.
func DefaultHours() Hours {
	return Hours{Open: "09:00", Close: "18:00", StepMinutes: 30}
}

// SlotStarts returns the start of every grid slot as minutes since midnight.
// An Open equal to Close yields an empty grid.
func (h Hours) SlotStarts() ([]int, error) {
	if h.StepMinutes <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", h.StepMinutes)
	}
	open, err := ParseHHMM(h.Open)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time: %w", err)
	}
	closing, err := ParseHHMM(h.Close)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time: %w", err)
	}
	if closing < open {
		return nil, fmt.Errorf("closing time %s is before opening time %s", h.Close, h.Open)
	}

	var starts []int
	for m := open; m+h.StepMinutes <= closing; m += h.StepMinutes {
		starts = append(starts, m)
	}
	return starts, nil
}

// SlotLabels returns the grid as "HH:MM" labels.
func (h Hours) SlotLabels() ([]string, error) {
	starts, err := h.SlotStarts()
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(starts))
	for i, m := range starts {
		labels[i] = Label(m)
	}
	return labels, nil
}

// OnGrid reports whether a "HH:MM" time is a valid slot start.
func (h Hours) OnGrid(hhmm string) bool {
	t, err := ParseHHMM(hhmm)
	if err != nil {
		return false
	}
	starts, err := h.SlotStarts()
	if err != nil {
		return false
	}
	for _, s := range starts {
		if s == t {
			return true
		}
	}
	return false
}

// ParseHHMM converts a "HH:MM" label to minutes since midnight.
func ParseHHMM(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}

// Label formats minutes since midnight as "HH:MM".
func Label(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
