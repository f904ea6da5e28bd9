package overtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.Holiday
	err      error
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) FindActiveByDate(ctx context.Context, date time.Time, branchID *string) (holiday.Holiday, error) {
	if f.err != nil {
		return holiday.Holiday{}, f.err
	}
	h, ok := f.holidays[date.Format("2006-01-02")]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	if h.Type == holiday.TypeBranch {
		if branchID == nil || h.BranchID == nil || *branchID != *h.BranchID {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
	}
	return h, nil
}

func (f *fakeHolidayRepo) List(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) Update(ctx context.Context, h holiday.Holiday) error { return nil }

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error { return nil }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// A holiday on the date wins the holiday rate no matter which type the
// employee requested.
func TestRateResolver_HolidayOverridesRequestedType(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2026-05-01")
	resolver := NewRateResolver(&fakeHolidayRepo{holidays: map[string]holiday.Holiday{
		"2026-05-01": {Name: "Labour Day", Type: holiday.TypePublic, IsActive: true},
	}})

	cfg := overtime.RateConfig{WorkdayRate: 1.0, WeekendRate: 1.5, HolidayRate: 2.0}

	for _, otType := range overtime.Types {
		rate := resolver.ResolveRate(ctx, date, nil, otType, cfg)

		assert.Equal(t, 2.0, rate.Multiplier, "type %s", otType)
		assert.True(t, rate.IsHoliday)
		require.NotNil(t, rate.HolidayName)
		assert.Equal(t, "Labour Day", *rate.HolidayName)
		assert.False(t, rate.Degraded)
	}
}

func TestRateResolver_TypeTagsOnRegularDay(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2026-03-02")
	resolver := NewRateResolver(&fakeHolidayRepo{})

	cfg := overtime.RateConfig{WorkdayRate: 1.1, WeekendRate: 1.6, HolidayRate: 2.2}

	cases := []struct {
		otType string
		want   float64
	}{
		{overtime.TypePreShift, 1.1},
		{overtime.TypeNormal, 1.6},
		{overtime.TypeHoliday, 2.2},
	}

	for _, tc := range cases {
		rate := resolver.ResolveRate(ctx, date, nil, tc.otType, cfg)
		assert.Equal(t, tc.want, rate.Multiplier, "type %s", tc.otType)
		assert.False(t, rate.IsHoliday)
		assert.Nil(t, rate.HolidayName)
	}
}

func TestRateResolver_DefaultsWhenConfigUnset(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2026-03-02")
	resolver := NewRateResolver(&fakeHolidayRepo{})

	rate := resolver.ResolveRate(ctx, date, nil, overtime.TypeNormal, overtime.RateConfig{})
	assert.Equal(t, overtime.DefaultWeekendRate, rate.Multiplier)

	rate = resolver.ResolveRate(ctx, date, nil, overtime.TypePreShift, overtime.RateConfig{})
	assert.Equal(t, overtime.DefaultWorkdayRate, rate.Multiplier)
}

// A broken holiday store must not block the request: resolution proceeds at
// the non-holiday rate and marks itself degraded.
func TestRateResolver_LookupFailureIsDegraded(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2026-05-01")
	resolver := NewRateResolver(&fakeHolidayRepo{err: errors.New("connection refused")})

	cfg := overtime.RateConfig{WorkdayRate: 1.0, WeekendRate: 1.5, HolidayRate: 2.0}
	rate := resolver.ResolveRate(ctx, date, nil, overtime.TypeNormal, cfg)

	assert.Equal(t, 1.5, rate.Multiplier)
	assert.False(t, rate.IsHoliday)
	assert.True(t, rate.Degraded)
}

func TestRateResolver_BranchHolidayScopedToBranch(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2026-06-10")
	branchA := "branch-a"
	branchB := "branch-b"
	resolver := NewRateResolver(&fakeHolidayRepo{holidays: map[string]holiday.Holiday{
		"2026-06-10": {Name: "Branch Anniversary", Type: holiday.TypeBranch, BranchID: &branchA, IsActive: true},
	}})

	cfg := overtime.RateConfig{WorkdayRate: 1.0, WeekendRate: 1.5, HolidayRate: 2.0}

	rate := resolver.ResolveRate(ctx, date, &branchA, overtime.TypeNormal, cfg)
	assert.True(t, rate.IsHoliday)
	assert.Equal(t, 2.0, rate.Multiplier)

	rate = resolver.ResolveRate(ctx, date, &branchB, overtime.TypeNormal, cfg)
	assert.False(t, rate.IsHoliday)
	assert.Equal(t, 1.5, rate.Multiplier)
}

// Resolving the same inputs twice gives the same answer.
func TestRateResolver_Idempotent(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2026-05-01")
	resolver := NewRateResolver(&fakeHolidayRepo{holidays: map[string]holiday.Holiday{
		"2026-05-01": {Name: "Labour Day", Type: holiday.TypePublic, IsActive: true},
	}})

	cfg := overtime.RateConfig{WorkdayRate: 1.0, WeekendRate: 1.5, HolidayRate: 2.0}
	first := resolver.ResolveRate(ctx, date, nil, overtime.TypeHoliday, cfg)
	second := resolver.ResolveRate(ctx, date, nil, overtime.TypeHoliday, cfg)

	assert.Equal(t, first.Multiplier, second.Multiplier)
	assert.Equal(t, first.IsHoliday, second.IsHoliday)
}
