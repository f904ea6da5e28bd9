package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingRepo struct {
	values map[string]string
	err    error
}

func (f *fakeSettingRepo) Get(ctx context.Context, key string) (settings.Setting, error) {
	if f.err != nil {
		return settings.Setting{}, f.err
	}
	v, ok := f.values[key]
	if !ok {
		return settings.Setting{}, settings.ErrSettingNotFound
	}
	return settings.Setting{Key: key, Value: v}, nil
}

func (f *fakeSettingRepo) List(ctx context.Context) ([]settings.Setting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []settings.Setting
	for k, v := range f.values {
		out = append(out, settings.Setting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettingRepo) Upsert(ctx context.Context, s settings.Setting) (settings.Setting, error) {
	if f.err != nil {
		return settings.Setting{}, f.err
	}
	f.values[s.Key] = s.Value
	return s, nil
}

func TestSettingsService_Float(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingRepo{values: map[string]string{
		settings.KeyOTRateHoliday:    "2.5",
		settings.KeyWorkDaysPerMonth: "not-a-number",
	}})

	assert.Equal(t, 2.5, svc.Float(ctx, settings.KeyOTRateHoliday, 2.0))
	// Malformed values fall back to the default.
	assert.Equal(t, 30.0, svc.Float(ctx, settings.KeyWorkDaysPerMonth, 30.0))
	// Missing keys fall back to the default.
	assert.Equal(t, 1.5, svc.Float(ctx, settings.KeyOTRateWeekend, 1.5))
}

func TestSettingsService_Float_StoreError(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingRepo{err: errors.New("connection refused")})

	assert.Equal(t, 8.0, svc.Float(ctx, settings.KeyWorkHoursPerDay, 8.0))
}

func TestSettingsService_String(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingRepo{values: map[string]string{
		settings.KeyWorkStartTime: "08:30",
	}})

	assert.Equal(t, "08:30", svc.String(ctx, settings.KeyWorkStartTime, "09:00"))
	assert.Equal(t, "17:00", svc.String(ctx, settings.KeyWorkEndTime, "17:00"))
}

func TestSettingsService_Update_UnknownKey(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingRepo{values: map[string]string{}})

	_, err := svc.Update(ctx, settings.UpdateSettingRequest{Key: "no_such_key", Value: "x"})
	assert.Error(t, err)
}

func TestSettingsService_Update_Upserts(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSettingRepo{values: map[string]string{}}
	svc := NewSettingsService(repo)

	updated, err := svc.Update(ctx, settings.UpdateSettingRequest{
		Key:       settings.KeyAutoApproveWFH,
		Value:     "true",
		UpdatedBy: "emp-admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "true", updated.Value)
	assert.Equal(t, "true", repo.values[settings.KeyAutoApproveWFH])
}
