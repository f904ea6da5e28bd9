package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/config"
	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOvertimeRepo struct {
	requests map[string]overtime.Request
	overlap  bool
	created  []overtime.Request
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{requests: make(map[string]overtime.Request)}
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, request overtime.Request) (overtime.Request, error) {
	request.ID = "ot-1"
	request.CreatedAt = time.Now()
	f.created = append(f.created, request)
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return overtime.Request{}, overtime.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeOvertimeRepo) List(ctx context.Context, filter overtime.ListFilter) ([]overtime.Request, int64, error) {
	return nil, 0, nil
}

func (f *fakeOvertimeRepo) Update(ctx context.Context, request overtime.Request) error {
	f.requests[request.ID] = request
	return nil
}

func (f *fakeOvertimeRepo) HasOverlap(ctx context.Context, employeeID string, request overtime.Request) (bool, error) {
	return f.overlap, nil
}

func (f *fakeOvertimeRepo) MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetManagers(ctx context.Context) ([]employee.Employee, error) {
	return []employee.Employee{{ID: "emp-manager", FullName: "Manager", Email: "manager@example.com", Role: "manager"}}, nil
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

type fakeSettingsService struct {
	floats map[string]float64
}

func (f *fakeSettingsService) GetAll(ctx context.Context) ([]settings.Setting, error) {
	return nil, nil
}

func (f *fakeSettingsService) Update(ctx context.Context, req settings.UpdateSettingRequest) (settings.Setting, error) {
	return settings.Setting{}, nil
}

func (f *fakeSettingsService) Float(ctx context.Context, key string, def float64) float64 {
	if v, ok := f.floats[key]; ok {
		return v
	}
	return def
}

func (f *fakeSettingsService) String(ctx context.Context, key string, def string) string {
	return def
}

type fakeGate struct {
	auto    bool
	actorID *string
	decided []approval.RequestType
}

func (f *fakeGate) ShouldAutoApprove(ctx context.Context, requestType approval.RequestType) bool {
	return f.auto
}

func (f *fakeGate) Decide(ctx context.Context, requestType approval.RequestType) approval.Fields {
	f.decided = append(f.decided, requestType)
	if !f.auto {
		return approval.Fields{Status: approval.StatusPending}
	}
	now := time.Now()
	return approval.Fields{Status: approval.StatusApproved, ApprovedAt: &now, ApprovedBy: f.actorID}
}

type fakeNotificationService struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotificationService) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotificationService) List(ctx context.Context, recipientID string, page, limit int) (notification.ListResponse, error) {
	return notification.ListResponse{}, nil
}

func (f *fakeNotificationService) MarkAsRead(ctx context.Context, recipientID, notificationID string) error {
	return nil
}

func (f *fakeNotificationService) MarkAllAsRead(ctx context.Context, recipientID string) error {
	return nil
}

func (f *fakeNotificationService) Subscribe(recipientID string) (chan sse.Event, func()) {
	return nil, func() {}
}

func (f *fakeNotificationService) Stop() {}

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestOvertimeService(repo *fakeOvertimeRepo, holidayRepo *fakeHolidayRepo, gate *fakeGate, notifSvc *fakeNotificationService) overtime.Service {
	salary := 15000.0
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jane Roe", Email: "jane@example.com", Role: "employee", BaseSalary: &salary},
	}}
	return NewOvertimeService(
		passthroughTx{},
		repo,
		empRepo,
		&fakeSettingsService{},
		NewRateResolver(holidayRepo),
		gate,
		notifSvc,
		config.WorkConfig{DaysPerMonth: 30, HoursPerDay: 8},
	)
}

func TestOvertimeService_Create_PreShiftStampsLocalDay(t *testing.T) {
	repo := newFakeOvertimeRepo()
	holidayRepo := &fakeHolidayRepo{holidays: map[string]holiday.Holiday{
		"2024-01-01": {ID: "h-1", Name: "New Year", Type: holiday.TypePublic, IsActive: true},
	}}
	svc := newTestOvertimeService(repo, holidayRepo, &fakeGate{}, &fakeNotificationService{})

	// 05:00 in a +07:00 branch is still 22:00 the previous day in UTC; the
	// stored date must stay on the local day the rate was priced on.
	resp, err := svc.Create(context.Background(), overtime.CreateRequest{
		EmployeeID: "emp-1",
		StartTime:  "2024-01-01T05:00:00+07:00",
		EndTime:    "2024-01-01T08:00:00+07:00",
		Type:       overtime.TypePreShift,
		Reason:     "Inventory count before opening",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", resp.Date)
	assert.True(t, resp.IsHoliday)
	require.NotNil(t, resp.HolidayName)
	assert.Equal(t, "New Year", *resp.HolidayName)
	assert.Equal(t, overtime.DefaultHolidayRate, resp.RateMultiplier)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "2024-01-01", repo.created[0].Date.Format("2006-01-02"))
}

func TestOvertimeService_Create_EveningAmount(t *testing.T) {
	repo := newFakeOvertimeRepo()
	holidayRepo := &fakeHolidayRepo{holidays: map[string]holiday.Holiday{}}
	notifSvc := &fakeNotificationService{}
	gate := &fakeGate{}
	svc := newTestOvertimeService(repo, holidayRepo, gate, notifSvc)

	resp, err := svc.Create(context.Background(), overtime.CreateRequest{
		EmployeeID: "emp-1",
		StartTime:  "2024-03-04T18:00:00Z",
		EndTime:    "2024-03-04T20:30:00Z",
		Type:       overtime.TypeNormal,
		Reason:     "Quarter-end close",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, resp.Status)
	assert.Equal(t, 2.5, resp.Hours)
	require.NotNil(t, resp.Amount)
	// 15000 / 30 / 8 = 62.5/h, normal requests use the weekend tier (1.5)
	assert.InDelta(t, 234.38, *resp.Amount, 0.001)
	assert.Equal(t, overtime.DefaultWeekendRate, resp.RateMultiplier)
	require.Equal(t, []approval.RequestType{approval.TypeOvertime}, gate.decided)

	require.Len(t, notifSvc.queued, 1)
	assert.Equal(t, "emp-manager", notifSvc.queued[0].RecipientID)
	assert.Equal(t, notification.TypeOvertimeSubmitted, notifSvc.queued[0].Type)
}

func TestOvertimeService_Create_AutoApprovedSkipsManagerNotification(t *testing.T) {
	repo := newFakeOvertimeRepo()
	actor := "emp-system"
	gate := &fakeGate{auto: true, actorID: &actor}
	notifSvc := &fakeNotificationService{}
	svc := newTestOvertimeService(repo, &fakeHolidayRepo{holidays: map[string]holiday.Holiday{}}, gate, notifSvc)

	resp, err := svc.Create(context.Background(), overtime.CreateRequest{
		EmployeeID: "emp-1",
		StartTime:  "2024-03-04T18:00:00Z",
		EndTime:    "2024-03-04T20:00:00Z",
		Type:       overtime.TypeNormal,
		Reason:     "Release night",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "emp-system", *resp.ApprovedBy)
	assert.Empty(t, notifSvc.queued)
}

func TestOvertimeService_Create_Overlapping(t *testing.T) {
	repo := newFakeOvertimeRepo()
	repo.overlap = true
	gate := &fakeGate{}
	svc := newTestOvertimeService(repo, &fakeHolidayRepo{holidays: map[string]holiday.Holiday{}}, gate, &fakeNotificationService{})

	_, err := svc.Create(context.Background(), overtime.CreateRequest{
		EmployeeID: "emp-1",
		StartTime:  "2024-03-04T18:00:00Z",
		EndTime:    "2024-03-04T20:00:00Z",
		Type:       overtime.TypeNormal,
		Reason:     "Quarter-end close",
	})

	require.ErrorIs(t, err, overtime.ErrOverlapping)
	assert.Empty(t, repo.created)
}
