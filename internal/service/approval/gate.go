package approval

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/config"
	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
)

// settingKeyFor maps a request type to its auto-approval setting key.
var settingKeyFor = map[approval.RequestType]string{
	approval.TypeOvertime:  settings.KeyAutoApproveOT,
	approval.TypeLeave:     settings.KeyAutoApproveLeave,
	approval.TypeWFH:       settings.KeyAutoApproveWFH,
	approval.TypeFieldWork: settings.KeyAutoApproveFieldWork,
	approval.TypeLate:      settings.KeyAutoApproveLate,
}

type gateImpl struct {
	settingRepo  settings.Repository
	employeeRepo employee.Repository
	cfg          config.ApprovalConfig
}

func NewGate(
	settingRepo settings.Repository,
	employeeRepo employee.Repository,
	cfg config.ApprovalConfig,
) approval.Gate {
	return &gateImpl{
		settingRepo:  settingRepo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
	}
}

// ShouldAutoApprove implements approval.Gate. Only the literal stored value
// "true" enables auto-approval; a missing row, any other value, or a store
// error all mean manual review.
func (g *gateImpl) ShouldAutoApprove(ctx context.Context, requestType approval.RequestType) bool {
	key, ok := settingKeyFor[requestType]
	if !ok {
		return false
	}

	setting, err := g.settingRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingNotFound) {
			slog.Warn("Auto-approval setting unreadable, falling back to manual review",
				"key", key, "error", err)
		}
		return false
	}

	return setting.Value == "true"
}

// Decide implements approval.Gate.
func (g *gateImpl) Decide(ctx context.Context, requestType approval.RequestType) approval.Fields {
	if !g.ShouldAutoApprove(ctx, requestType) {
		return approval.Fields{Status: approval.StatusPending}
	}

	now := time.Now()
	fields := approval.Fields{
		Status:     approval.StatusApproved,
		ApprovedAt: &now,
	}

	// Attribute the approval to the reserved system actor. If the actor
	// account is missing the approval stands without attribution.
	actor, err := g.employeeRepo.GetByEmail(ctx, g.cfg.SystemActorEmail)
	if err != nil {
		slog.Warn("System actor lookup failed, approving without attribution",
			"email", g.cfg.SystemActorEmail, "error", err)
		return fields
	}
	fields.ApprovedBy = &actor.ID

	return fields
}
