package overtime

import (
	"testing"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calcSpan(t *testing.T, start, end string) (time.Time, time.Time) {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return s, e
}

func TestCalculateOT_StandardEvening(t *testing.T) {
	start, end := calcSpan(t, "2026-03-02T18:00:00Z", "2026-03-02T20:30:00Z")

	result, err := CalculateOT(CalcInput{
		Start:        start,
		End:          end,
		BaseSalary:   15000,
		Multiplier:   1.5,
		DaysPerMonth: 30,
		HoursPerDay:  8,
	})

	require.NoError(t, err)
	assert.Equal(t, 2.5, result.Hours)
	require.NotNil(t, result.HourlyRate)
	assert.Equal(t, 62.5, *result.HourlyRate)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 234.38, *result.Amount)
}

func TestCalculateOT_MultiplierScalesLinearly(t *testing.T) {
	start, end := calcSpan(t, "2026-03-02T18:00:00Z", "2026-03-02T20:00:00Z")

	in := CalcInput{
		Start:        start,
		End:          end,
		BaseSalary:   24000,
		Multiplier:   1.0,
		DaysPerMonth: 30,
		HoursPerDay:  8,
	}

	base, err := CalculateOT(in)
	require.NoError(t, err)
	require.NotNil(t, base.Amount)

	in.Multiplier = 2.0
	doubled, err := CalculateOT(in)
	require.NoError(t, err)
	require.NotNil(t, doubled.Amount)

	assert.Equal(t, *base.Amount*2, *doubled.Amount)
}

func TestCalculateOT_ZeroDuration(t *testing.T) {
	start, end := calcSpan(t, "2026-03-02T18:00:00Z", "2026-03-02T18:00:00Z")

	result, err := CalculateOT(CalcInput{
		Start:        start,
		End:          end,
		BaseSalary:   15000,
		Multiplier:   1.5,
		DaysPerMonth: 30,
		HoursPerDay:  8,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Hours)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 0.0, *result.Amount)
}

// Missing salary configuration means the request cannot be priced: the amount
// is absent rather than zero, and the duration still comes back.
func TestCalculateOT_UnpriceableInputs(t *testing.T) {
	start, end := calcSpan(t, "2026-03-02T18:00:00Z", "2026-03-02T20:30:00Z")

	cases := []struct {
		name string
		in   CalcInput
	}{
		{"zero salary", CalcInput{Start: start, End: end, BaseSalary: 0, Multiplier: 1.5, DaysPerMonth: 30, HoursPerDay: 8}},
		{"negative salary", CalcInput{Start: start, End: end, BaseSalary: -1000, Multiplier: 1.5, DaysPerMonth: 30, HoursPerDay: 8}},
		{"zero days per month", CalcInput{Start: start, End: end, BaseSalary: 15000, Multiplier: 1.5, DaysPerMonth: 0, HoursPerDay: 8}},
		{"zero hours per day", CalcInput{Start: start, End: end, BaseSalary: 15000, Multiplier: 1.5, DaysPerMonth: 30, HoursPerDay: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := CalculateOT(tc.in)
			require.NoError(t, err)
			assert.Equal(t, 2.5, result.Hours)
			assert.Nil(t, result.HourlyRate)
			assert.Nil(t, result.Amount)
		})
	}
}

func TestCalculateOT_EndBeforeStart(t *testing.T) {
	start, end := calcSpan(t, "2026-03-02T20:00:00Z", "2026-03-02T18:00:00Z")

	_, err := CalculateOT(CalcInput{
		Start:        start,
		End:          end,
		BaseSalary:   15000,
		Multiplier:   1.5,
		DaysPerMonth: 30,
		HoursPerDay:  8,
	})

	assert.ErrorIs(t, err, overtime.ErrEndBeforeStart)
}

func TestCalculateOT_RoundsHoursToTwoDecimals(t *testing.T) {
	// 100 minutes = 1.666... hours, rounds to 1.67
	start, end := calcSpan(t, "2026-03-02T18:00:00Z", "2026-03-02T19:40:00Z")

	result, err := CalculateOT(CalcInput{
		Start:        start,
		End:          end,
		BaseSalary:   15000,
		Multiplier:   1.0,
		DaysPerMonth: 30,
		HoursPerDay:  8,
	})

	require.NoError(t, err)
	assert.Equal(t, 1.67, result.Hours)
}
