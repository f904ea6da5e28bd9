package approval

import (
	"context"
	"errors"
	"testing"

	"github.com/hrpulse/attendance-backend-go/internal/config"
	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
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
	var out []settings.Setting
	for k, v := range f.values {
		out = append(out, settings.Setting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettingRepo) Upsert(ctx context.Context, s settings.Setting) (settings.Setting, error) {
	f.values[s.Key] = s.Value
	return s, nil
}

type fakeEmployeeRepo struct {
	byEmail map[string]employee.Employee
	err     error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	e, ok := f.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetManagers(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

const testSystemActorEmail = "system@hrpulse.internal"

func newTestGate(settingRepo settings.Repository, employeeRepo employee.Repository) approval.Gate {
	return NewGate(settingRepo, employeeRepo, config.ApprovalConfig{
		SystemActorEmail: testSystemActorEmail,
	})
}

func TestGate_ShouldAutoApprove_Enabled(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(
		&fakeSettingRepo{values: map[string]string{settings.KeyAutoApproveOT: "true"}},
		&fakeEmployeeRepo{},
	)

	assert.True(t, gate.ShouldAutoApprove(ctx, approval.TypeOvertime))
}

// Only the literal value "true" enables the gate.
func TestGate_ShouldAutoApprove_NonLiteralValues(t *testing.T) {
	ctx := context.Background()

	for _, value := range []string{"TRUE", "True", "1", "yes", "false", ""} {
		gate := newTestGate(
			&fakeSettingRepo{values: map[string]string{settings.KeyAutoApproveLeave: value}},
			&fakeEmployeeRepo{},
		)
		assert.False(t, gate.ShouldAutoApprove(ctx, approval.TypeLeave), "value %q", value)
	}
}

func TestGate_ShouldAutoApprove_MissingSetting(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(&fakeSettingRepo{values: map[string]string{}}, &fakeEmployeeRepo{})

	for _, rt := range approval.AllTypes {
		assert.False(t, gate.ShouldAutoApprove(ctx, rt))
	}
}

// Store errors must fail closed, never auto-approve.
func TestGate_ShouldAutoApprove_StoreError(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(&fakeSettingRepo{err: errors.New("connection refused")}, &fakeEmployeeRepo{})

	assert.False(t, gate.ShouldAutoApprove(ctx, approval.TypeWFH))
}

func TestGate_Decide_AutoApproved_WithAttribution(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(
		&fakeSettingRepo{values: map[string]string{settings.KeyAutoApproveOT: "true"}},
		&fakeEmployeeRepo{byEmail: map[string]employee.Employee{
			testSystemActorEmail: {ID: "emp-system", Email: testSystemActorEmail},
		}},
	)

	fields := gate.Decide(ctx, approval.TypeOvertime)

	assert.Equal(t, approval.StatusApproved, fields.Status)
	require.NotNil(t, fields.ApprovedAt)
	require.NotNil(t, fields.ApprovedBy)
	assert.Equal(t, "emp-system", *fields.ApprovedBy)
}

// The approval stands even when the system actor account cannot be found;
// only the attribution is dropped.
func TestGate_Decide_AutoApproved_ActorLookupFails(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(
		&fakeSettingRepo{values: map[string]string{settings.KeyAutoApproveLate: "true"}},
		&fakeEmployeeRepo{err: errors.New("connection refused")},
	)

	fields := gate.Decide(ctx, approval.TypeLate)

	assert.Equal(t, approval.StatusApproved, fields.Status)
	require.NotNil(t, fields.ApprovedAt)
	assert.Nil(t, fields.ApprovedBy)
}

func TestGate_Decide_Pending(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(&fakeSettingRepo{values: map[string]string{}}, &fakeEmployeeRepo{})

	fields := gate.Decide(ctx, approval.TypeFieldWork)

	assert.Equal(t, approval.StatusPending, fields.Status)
	assert.Nil(t, fields.ApprovedAt)
	assert.Nil(t, fields.ApprovedBy)
}
