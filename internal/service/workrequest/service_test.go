package workrequest

import (
	"context"
	"testing"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/domain/workrequest"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkRequestRepo struct {
	requests map[string]workrequest.Request
	existing map[string]bool // employeeID|kind|date
	created  []workrequest.Request
	updated  []workrequest.Request
}

func newFakeWorkRequestRepo() *fakeWorkRequestRepo {
	return &fakeWorkRequestRepo{
		requests: make(map[string]workrequest.Request),
		existing: make(map[string]bool),
	}
}

func existsKey(employeeID, kind string, date time.Time) string {
	return employeeID + "|" + kind + "|" + date.Format("2006-01-02")
}

func (f *fakeWorkRequestRepo) Create(ctx context.Context, request workrequest.Request) (workrequest.Request, error) {
	request.ID = "wr-1"
	request.CreatedAt = time.Now()
	f.created = append(f.created, request)
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeWorkRequestRepo) GetByID(ctx context.Context, id string) (workrequest.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return workrequest.Request{}, workrequest.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeWorkRequestRepo) List(ctx context.Context, filter workrequest.ListFilter) ([]workrequest.Request, int64, error) {
	var out []workrequest.Request
	for _, r := range f.requests {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeWorkRequestRepo) Update(ctx context.Context, request workrequest.Request) error {
	f.updated = append(f.updated, request)
	f.requests[request.ID] = request
	return nil
}

func (f *fakeWorkRequestRepo) ExistsForDate(ctx context.Context, employeeID, kind string, date time.Time) (bool, error) {
	return f.existing[existsKey(employeeID, kind, date)], nil
}

func (f *fakeWorkRequestRepo) MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
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

func newTestService(repo *fakeWorkRequestRepo, gate *fakeGate, notifSvc *fakeNotificationService) workrequest.Service {
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jane Roe", Email: "jane@example.com", Role: "employee"},
	}}
	return NewWorkRequestService(repo, empRepo, gate, notifSvc)
}

func TestWorkRequestService_Create_Pending_NotifiesManagers(t *testing.T) {
	repo := newFakeWorkRequestRepo()
	gate := &fakeGate{auto: false}
	notifSvc := &fakeNotificationService{}
	svc := newTestService(repo, gate, notifSvc)

	resp, err := svc.Create(context.Background(), workrequest.CreateRequest{
		EmployeeID: "emp-1",
		Kind:       workrequest.KindWFH,
		Date:       "2025-03-10",
		Reason:     "Plumber visit",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, resp.Status)
	assert.Nil(t, resp.ApprovedAt)
	require.Equal(t, []approval.RequestType{approval.TypeWFH}, gate.decided)

	require.Len(t, notifSvc.queued, 1)
	assert.Equal(t, "emp-manager", notifSvc.queued[0].RecipientID)
	assert.Equal(t, notification.TypeWorkRequestSubmitted, notifSvc.queued[0].Type)
}

func TestWorkRequestService_Create_AutoApproved_SkipsManagerNotification(t *testing.T) {
	repo := newFakeWorkRequestRepo()
	actor := "emp-system"
	gate := &fakeGate{auto: true, actorID: &actor}
	notifSvc := &fakeNotificationService{}
	svc := newTestService(repo, gate, notifSvc)

	resp, err := svc.Create(context.Background(), workrequest.CreateRequest{
		EmployeeID: "emp-1",
		Kind:       workrequest.KindLate,
		Date:       "2025-03-10",
		Reason:     "Traffic accident on the ring road",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "emp-system", *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)
	require.Equal(t, []approval.RequestType{approval.TypeLate}, gate.decided)

	assert.Empty(t, notifSvc.queued)
}

func TestWorkRequestService_Create_DuplicateSameDay(t *testing.T) {
	repo := newFakeWorkRequestRepo()
	day, _ := time.Parse("2006-01-02", "2025-03-10")
	repo.existing[existsKey("emp-1", workrequest.KindWFH, day)] = true
	gate := &fakeGate{}
	svc := newTestService(repo, gate, &fakeNotificationService{})

	_, err := svc.Create(context.Background(), workrequest.CreateRequest{
		EmployeeID: "emp-1",
		Kind:       workrequest.KindWFH,
		Date:       "2025-03-10",
		Reason:     "Plumber visit",
	})

	require.ErrorIs(t, err, workrequest.ErrDuplicate)
	assert.Empty(t, repo.created)
	assert.Empty(t, gate.decided)
}

func TestWorkRequestService_Create_FieldWorkRequiresCoordinates(t *testing.T) {
	repo := newFakeWorkRequestRepo()
	svc := newTestService(repo, &fakeGate{}, &fakeNotificationService{})

	_, err := svc.Create(context.Background(), workrequest.CreateRequest{
		EmployeeID: "emp-1",
		Kind:       workrequest.KindFieldWork,
		Date:       "2025-03-10",
		Reason:     "Client site audit",
	})

	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestWorkRequestService_Approve_PendingOnly(t *testing.T) {
	repo := newFakeWorkRequestRepo()
	day, _ := time.Parse("2006-01-02", "2025-03-10")
	repo.requests["wr-9"] = workrequest.Request{
		ID:         "wr-9",
		EmployeeID: "emp-1",
		Kind:       workrequest.KindWFH,
		Date:       day,
		Status:     approval.StatusPending,
	}
	notifSvc := &fakeNotificationService{}
	svc := newTestService(repo, &fakeGate{}, notifSvc)

	resp, err := svc.Approve(context.Background(), workrequest.ApproveRequest{ID: "wr-9", ApprovedBy: "emp-manager"})
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, resp.Status)

	// decision notification goes to the requester, with email delivery
	require.Len(t, notifSvc.queued, 1)
	assert.Equal(t, "emp-1", notifSvc.queued[0].RecipientID)
	assert.Equal(t, notification.TypeWorkRequestApproved, notifSvc.queued[0].Type)
	require.NotNil(t, notifSvc.queued[0].EmailTo)
	assert.Equal(t, "jane@example.com", *notifSvc.queued[0].EmailTo)

	_, err = svc.Approve(context.Background(), workrequest.ApproveRequest{ID: "wr-9", ApprovedBy: "emp-manager"})
	require.ErrorIs(t, err, workrequest.ErrAlreadyProcessed)
}

func TestWorkRequestService_Reject_RequiresReason(t *testing.T) {
	repo := newFakeWorkRequestRepo()
	day, _ := time.Parse("2006-01-02", "2025-03-10")
	repo.requests["wr-9"] = workrequest.Request{
		ID:         "wr-9",
		EmployeeID: "emp-1",
		Kind:       workrequest.KindLate,
		Date:       day,
		Status:     approval.StatusPending,
	}
	notifSvc := &fakeNotificationService{}
	svc := newTestService(repo, &fakeGate{}, notifSvc)

	_, err := svc.Reject(context.Background(), workrequest.RejectRequest{ID: "wr-9", RejectedBy: "emp-manager"})
	require.Error(t, err)

	resp, err := svc.Reject(context.Background(), workrequest.RejectRequest{
		ID:         "wr-9",
		RejectedBy: "emp-manager",
		Reason:     "No prior notice",
	})
	require.NoError(t, err)
	assert.Equal(t, approval.StatusRejected, resp.Status)

	require.Len(t, notifSvc.queued, 1)
	assert.Contains(t, notifSvc.queued[0].Message, "No prior notice")
}

func TestWorkRequestService_Get_OwnershipEnforced(t *testing.T) {
	repo := newFakeWorkRequestRepo()
	day, _ := time.Parse("2006-01-02", "2025-03-10")
	repo.requests["wr-9"] = workrequest.Request{
		ID:         "wr-9",
		EmployeeID: "emp-1",
		Kind:       workrequest.KindWFH,
		Date:       day,
		Status:     approval.StatusPending,
	}
	svc := newTestService(repo, &fakeGate{}, &fakeNotificationService{})

	_, err := svc.Get(context.Background(), "wr-9", "emp-2", false)
	require.ErrorIs(t, err, workrequest.ErrUnauthorized)

	_, err = svc.Get(context.Background(), "wr-9", "emp-2", true)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "wr-9", "emp-1", false)
	require.NoError(t, err)
}
