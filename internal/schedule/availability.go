package schedule

import "fmt"

// Barber is a participant in the availability computation.
type Barber struct {
	ID          int
	Name        string
	Specialties string
}

// Appointment is an existing, non-cancelled booking on the requested date.
// DurationMinutes is the duration booked at creation time, not the current
// duration of the service; zero means unknown and falls back to one slot.
type Appointment struct {
	BarberID        int
	Time            string // "HH:MM" start
	DurationMinutes int
}

// BarberSlots is the availability of one barber for the requested service.
type BarberSlots struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Specialties    string   `json:"specialties"`
	AvailableSlots []string `json:"availableSlots"`
}

// SlotsNeeded returns how many consecutive grid slots a service occupies,
// always rounding up so a 45 minute service reserves two 30 minute slots.
func SlotsNeeded(durationMinutes, stepMinutes int) int {
	return (durationMinutes + stepMinutes - 1) / stepMinutes
}

// AvailableSlots computes, per barber, every grid start time at which a
// service of the given duration fits without overlapping an existing
// appointment or running past closing time. Barbers with no free start are
// omitted. The result preserves the order barbers were supplied in; slot
// lists are chronological.
func AvailableSlots(hours Hours, serviceDurationMinutes int, barbers []Barber, appointments []Appointment) ([]BarberSlots, error) {
	if serviceDurationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive, got %d", serviceDurationMinutes)
	}
	starts, err := hours.SlotStarts()
	if err != nil {
		return nil, err
	}

	needed := SlotsNeeded(serviceDurationMinutes, hours.StepMinutes)

	var result []BarberSlots
	for _, barber := range barbers {
		busy := busySlots(starts, hours.StepMinutes, barber.ID, appointments)

		var free []string
		for i := range starts {
			if i+needed > len(starts) {
				break
			}
			fits := true
			for j := i; j < i+needed; j++ {
				if busy[j] {
					fits = false
					break
				}
			}
			if fits {
				free = append(free, Label(starts[i]))
			}
		}

		if len(free) > 0 {
			result = append(result, BarberSlots{
				ID:             barber.ID,
				Name:           barber.Name,
				Specialties:    barber.Specialties,
				AvailableSlots: free,
			})
		}
	}
	return result, nil
}

// busySlots marks every grid slot whose time range overlaps one of the
// barber's appointments. Overlap is checked against the appointment's real
// interval, so a start time that is off the grid still blocks the slots it
// touches. Appointments with an unparseable time are skipped.
func busySlots(starts []int, stepMinutes, barberID int, appointments []Appointment) []bool {
	busy := make([]bool, len(starts))
	for _, appt := range appointments {
		if appt.BarberID != barberID {
			continue
		}
		apptStart, err := ParseHHMM(appt.Time)
		if err != nil {
			continue
		}
		duration := appt.DurationMinutes
		if duration <= 0 {
			duration = stepMinutes
		}
		apptEnd := apptStart + duration
		for i, slotStart := range starts {
			if apptStart < slotStart+stepMinutes && apptEnd > slotStart {
				busy[i] = true
			}
		}
	}
	return busy
}
