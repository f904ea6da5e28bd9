package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
)

type settingsServiceImpl struct {
	settingRepo settings.Repository
}

func NewSettingsService(settingRepo settings.Repository) settings.Service {
	return &settingsServiceImpl{settingRepo: settingRepo}
}

// GetAll implements settings.Service.
func (s *settingsServiceImpl) GetAll(ctx context.Context) ([]settings.Setting, error) {
	all, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return all, nil
}

// Update implements settings.Service.
func (s *settingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingRequest) (settings.Setting, error) {
	if err := req.Validate(); err != nil {
		return settings.Setting{}, err
	}

	setting := settings.Setting{
		Key:   req.Key,
		Value: req.Value,
	}
	if req.UpdatedBy != "" {
		setting.UpdatedBy = &req.UpdatedBy
	}

	updated, err := s.settingRepo.Upsert(ctx, setting)
	if err != nil {
		return settings.Setting{}, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return updated, nil
}

// Float implements settings.Service.
func (s *settingsServiceImpl) Float(ctx context.Context, key string, def float64) float64 {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingNotFound) {
			slog.Warn("Setting unreadable, using default", "key", key, "error", err)
		}
		return def
	}

	v, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		slog.Warn("Setting is not numeric, using default", "key", key, "value", setting.Value)
		return def
	}

	return v
}

// String implements settings.Service.
func (s *settingsServiceImpl) String(ctx context.Context, key string, def string) string {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingNotFound) {
			slog.Warn("Setting unreadable, using default", "key", key, "error", err)
		}
		return def
	}
	return setting.Value
}
