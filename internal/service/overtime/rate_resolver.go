package overtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
)

// ResolvedRate is the multiplier picked for one overtime request, with the
// holiday context that produced it. Degraded marks a rate that was resolved
// while the holiday store was unreachable; the request proceeds at a
// non-holiday rate and the flag makes the degradation visible downstream.
type ResolvedRate struct {
	Multiplier  float64
	IsHoliday   bool
	HolidayName *string
	Degraded    bool
}

// RateResolver picks the overtime multiplier for a given date and request
// type. A holiday on the date always wins the holiday rate regardless of the
// requested type.
type RateResolver interface {
	ResolveRate(ctx context.Context, date time.Time, branchID *string, otType string, cfg overtime.RateConfig) ResolvedRate
}

type rateResolverImpl struct {
	holidayRepo holiday.Repository
}

func NewRateResolver(holidayRepo holiday.Repository) RateResolver {
	return &rateResolverImpl{holidayRepo: holidayRepo}
}

// ResolveRate implements RateResolver.
func (r *rateResolverImpl) ResolveRate(ctx context.Context, date time.Time, branchID *string, otType string, cfg overtime.RateConfig) ResolvedRate {
	cfg = cfg.WithDefaults()

	h, err := r.holidayRepo.FindActiveByDate(ctx, date, branchID)
	if err == nil {
		name := h.Name
		return ResolvedRate{
			Multiplier:  cfg.HolidayRate,
			IsHoliday:   true,
			HolidayName: &name,
		}
	}

	degraded := false
	if !errors.Is(err, holiday.ErrHolidayNotFound) {
		// Holiday store unreachable. Price at the non-holiday rate rather
		// than block the request, and surface the degradation.
		slog.Warn("Holiday lookup failed, resolving rate without holiday data",
			"date", date.Format("2006-01-02"), "error", err)
		degraded = true
	}

	rate := ResolvedRate{Degraded: degraded}
	switch otType {
	case overtime.TypeHoliday:
		rate.Multiplier = cfg.HolidayRate
	case overtime.TypePreShift:
		rate.Multiplier = cfg.WorkdayRate
	default:
		rate.Multiplier = cfg.WeekendRate
	}

	return rate
}
