package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsNeeded(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		step     int
		want     int
	}{
		{"exact single slot", 30, 30, 1},
		{"exact two slots", 60, 30, 2},
		{"rounds up with remainder", 45, 30, 2},
		{"rounds up short service", 15, 30, 1},
		{"rounds up long service", 100, 30, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotsNeeded(tt.duration, tt.step))
		})
	}
}

func TestSlotLabels(t *testing.T) {
	labels, err := DefaultHours().SlotLabels()
	require.NoError(t, err)
	require.Len(t, labels, 18)
	assert.Equal(t, "09:00", labels[0])
	assert.Equal(t, "09:30", labels[1])
	assert.Equal(t, "17:30", labels[17])
}

func TestSlotStartsEmptyDay(t *testing.T) {
	starts, err := Hours{Open: "09:00", Close: "09:00", StepMinutes: 30}.SlotStarts()
	require.NoError(t, err)
	assert.Empty(t, starts)
}

func TestSlotStartsSingleSlotDay(t *testing.T) {
	starts, err := Hours{Open: "09:00", Close: "09:30", StepMinutes: 30}.SlotStarts()
	require.NoError(t, err)
	require.Len(t, starts, 1)
	assert.Equal(t, "09:00", Label(starts[0]))
}

func TestSlotStartsInvalid(t *testing.T) {
	_, err := Hours{Open: "18:00", Close: "09:00", StepMinutes: 30}.SlotStarts()
	assert.Error(t, err)

	_, err = Hours{Open: "nine", Close: "18:00", StepMinutes: 30}.SlotStarts()
	assert.Error(t, err)

	_, err = Hours{Open: "09:00", Close: "18:00", StepMinutes: 0}.SlotStarts()
	assert.Error(t, err)
}

func TestOnGrid(t *testing.T) {
	hours := DefaultHours()
	assert.True(t, hours.OnGrid("09:00"))
	assert.True(t, hours.OnGrid("17:30"))
	assert.False(t, hours.OnGrid("18:00"))
	assert.False(t, hours.OnGrid("09:15"))
	assert.False(t, hours.OnGrid("8:99"))
	assert.False(t, hours.OnGrid("morning"))
}

func TestAvailableSlotsFreeDay(t *testing.T) {
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].AvailableSlots, 18)
	assert.Equal(t, "09:00", result[0].AvailableSlots[0])
	assert.Equal(t, "17:30", result[0].AvailableSlots[17])
}

func TestAvailableSlotsSingleBooking(t *testing.T) {
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}
	appts := []Appointment{{BarberID: 1, Time: "10:00", DurationMinutes: 30}}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, appts)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].AvailableSlots, 17)
	assert.NotContains(t, result[0].AvailableSlots, "10:00")
	assert.Contains(t, result[0].AvailableSlots, "09:30")
	assert.Contains(t, result[0].AvailableSlots, "10:30")
}

func TestAvailableSlotsHourLongBookingBlocksTwoSlots(t *testing.T) {
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}
	appts := []Appointment{{BarberID: 1, Time: "10:00", DurationMinutes: 60}}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, appts)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.NotContains(t, result[0].AvailableSlots, "10:00")
	assert.NotContains(t, result[0].AvailableSlots, "10:30")
	assert.Contains(t, result[0].AvailableSlots, "11:00")
}

func TestAvailableSlotsNoStartPastClosing(t *testing.T) {
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}

	result, err := AvailableSlots(DefaultHours(), 60, barbers, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].AvailableSlots, 17)
	assert.NotContains(t, result[0].AvailableSlots, "17:30")
	assert.Contains(t, result[0].AvailableSlots, "17:00")
}

func TestAvailableSlotsFullyBookedBarberOmitted(t *testing.T) {
	barbers := []Barber{
		{ID: 1, Name: "Carlos Silva"},
		{ID: 2, Name: "Rafael Santos"},
	}
	// Barber 1 is booked solid 09:00-18:00.
	var appts []Appointment
	for m := 9 * 60; m < 18*60; m += 30 {
		appts = append(appts, Appointment{BarberID: 1, Time: Label(m), DurationMinutes: 30})
	}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, appts)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)
}

func TestAvailableSlotsFortyMinuteService(t *testing.T) {
	// 40 min service needs 2 slots. Bookings at 09:00 (30 min) and
	// 14:00 (45 min, covering 14:00 and 14:30).
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}
	appts := []Appointment{
		{BarberID: 1, Time: "09:00", DurationMinutes: 30},
		{BarberID: 1, Time: "14:00", DurationMinutes: 45},
	}

	result, err := AvailableSlots(DefaultHours(), 40, barbers, appts)
	require.NoError(t, err)
	require.Len(t, result, 1)

	free := result[0].AvailableSlots
	// Any window overlapping 09:00, 14:00 or 14:30 is excluded.
	for _, blocked := range []string{"09:00", "13:30", "14:00", "14:30"} {
		assert.NotContains(t, free, blocked, "start %s overlaps a busy slot", blocked)
	}
	for _, open := range []string{"09:30", "13:00", "15:00", "17:00"} {
		assert.Contains(t, free, open)
	}
	// Last slot that fits a 2-slot service is 17:00.
	assert.NotContains(t, free, "17:30")
}

func TestAvailableSlotsOffGridAppointmentStillBlocks(t *testing.T) {
	// A booking created off the grid at 10:15 must still block every slot
	// its interval touches.
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}
	appts := []Appointment{{BarberID: 1, Time: "10:15", DurationMinutes: 30}}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, appts)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.NotContains(t, result[0].AvailableSlots, "10:00")
	assert.NotContains(t, result[0].AvailableSlots, "10:30")
	assert.Contains(t, result[0].AvailableSlots, "11:00")
}

func TestAvailableSlotsUnknownDurationFallsBackToOneSlot(t *testing.T) {
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}
	appts := []Appointment{{BarberID: 1, Time: "11:00", DurationMinutes: 0}}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, appts)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.NotContains(t, result[0].AvailableSlots, "11:00")
	assert.Contains(t, result[0].AvailableSlots, "11:30")
}

func TestAvailableSlotsIgnoresOtherBarbersBookings(t *testing.T) {
	barbers := []Barber{
		{ID: 1, Name: "Carlos Silva"},
		{ID: 2, Name: "Rafael Santos"},
	}
	appts := []Appointment{{BarberID: 2, Time: "10:00", DurationMinutes: 60}}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, appts)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Contains(t, result[0].AvailableSlots, "10:00")
	assert.NotContains(t, result[1].AvailableSlots, "10:00")
}

func TestAvailableSlotsPreservesBarberOrder(t *testing.T) {
	barbers := []Barber{
		{ID: 3, Name: "Lucas Oliveira"},
		{ID: 1, Name: "Carlos Silva"},
		{ID: 2, Name: "Rafael Santos"},
	}

	result, err := AvailableSlots(DefaultHours(), 30, barbers, nil)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{result[0].ID, result[1].ID, result[2].ID})
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}
	appts := []Appointment{
		{BarberID: 1, Time: "09:00", DurationMinutes: 30},
		{BarberID: 1, Time: "14:00", DurationMinutes: 45},
	}

	first, err := AvailableSlots(DefaultHours(), 40, barbers, appts)
	require.NoError(t, err)
	second, err := AvailableSlots(DefaultHours(), 40, barbers, appts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAvailableSlotsInvalidDuration(t *testing.T) {
	_, err := AvailableSlots(DefaultHours(), 0, []Barber{{ID: 1}}, nil)
	assert.Error(t, err)

	_, err = AvailableSlots(DefaultHours(), -30, []Barber{{ID: 1}}, nil)
	assert.Error(t, err)
}

func TestAvailableSlotsSingleSlotDay(t *testing.T) {
	hours := Hours{Open: "09:00", Close: "09:30", StepMinutes: 30}
	barbers := []Barber{{ID: 1, Name: "Carlos Silva"}}

	result, err := AvailableSlots(hours, 30, barbers, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []string{"09:00"}, result[0].AvailableSlots)

	// A 60 minute service cannot fit at all; the barber is omitted.
	result, err = AvailableSlots(hours, 60, barbers, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}
