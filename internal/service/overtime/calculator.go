package overtime

import (
	"math"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
)

// CalcInput carries everything needed to price one overtime span.
type CalcInput struct {
	Start        time.Time
	End          time.Time
	BaseSalary   float64
	Multiplier   float64
	DaysPerMonth float64
	HoursPerDay  float64
}

// CalcResult is the priced span. Amount is nil when the salary configuration
// cannot produce a price (missing salary or non-positive working-time
// divisors); Hours is still populated so the duration stays visible.
type CalcResult struct {
	Hours      float64
	HourlyRate *float64
	Amount     *float64
}

// round2 rounds half away from zero to 2 decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// CalculateOT prices an overtime span: hourly rate is the monthly salary
// spread over configured working days and hours, scaled by the resolved
// multiplier. A zero-length span prices to 0, which is distinct from the nil
// amount of an unpriceable request.
func CalculateOT(in CalcInput) (CalcResult, error) {
	if in.End.Before(in.Start) {
		return CalcResult{}, overtime.ErrEndBeforeStart
	}

	hours := round2(in.End.Sub(in.Start).Hours())
	result := CalcResult{Hours: hours}

	if in.BaseSalary <= 0 || in.DaysPerMonth <= 0 || in.HoursPerDay <= 0 {
		return result, nil
	}

	hourlyRate := in.BaseSalary / in.DaysPerMonth / in.HoursPerDay
	amount := round2(hours * hourlyRate * in.Multiplier)

	result.HourlyRate = &hourlyRate
	result.Amount = &amount
	return result, nil
}
