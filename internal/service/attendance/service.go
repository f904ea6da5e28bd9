package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/config"
	"github.com/hrpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpulse/attendance-backend-go/internal/domain/branch"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/geo"
	"github.com/hrpulse/attendance-backend-go/internal/service/file"
)

type attendanceServiceImpl struct {
	attendanceRepo  attendance.Repository
	employeeRepo    employee.Repository
	branchRepo      branch.Repository
	settingsService settings.Service
	fileService     file.FileService
	work            config.WorkConfig
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	branchRepo branch.Repository,
	settingsService settings.Service,
	fileService file.FileService,
	work config.WorkConfig,
) attendance.Service {
	return &attendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		branchRepo:      branchRepo,
		settingsService: settingsService,
		fileService:     fileService,
		work:            work,
	}
}

// branchLocation resolves the branch timezone, falling back to UTC when the
// stored name does not load.
func branchLocation(b branch.Branch) *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		slog.Warn("Invalid branch timezone, using UTC", "branch_id", b.ID, "timezone", b.Timezone)
		return time.UTC
	}
	return loc
}

// checkFence validates the coordinates against the branch geofence and
// returns the measured distance.
func checkFence(lat, lng float64, b branch.Branch) (int, error) {
	result := geo.CheckRadius(
		geo.Point{Latitude: lat, Longitude: lng},
		geo.Fence{Latitude: b.Latitude, Longitude: b.Longitude, RadiusMeters: b.RadiusMeters},
	)
	if !result.InRadius {
		return result.DistanceMeters, attendance.ErrOutsideAllowedRadius
	}
	return result.DistanceMeters, nil
}

// ClockIn implements attendance.Service.
func (s *attendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.BranchID == nil {
		return attendance.Response{}, employee.ErrNoBranchAssigned
	}

	b, err := s.branchRepo.GetByID(ctx, *emp.BranchID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get branch: %w", err)
	}

	loc := branchLocation(b)
	now := time.Now().In(loc)
	dateLocal := now.Format("2006-01-02")

	exists, err := s.attendanceRepo.HasCheckedInToday(ctx, req.EmployeeID, dateLocal)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if exists {
		return attendance.Response{}, attendance.ErrAlreadyCheckedIn
	}

	distance, err := checkFence(req.Latitude, req.Longitude, b)
	if err != nil {
		return attendance.Response{}, err
	}

	proofPath, err := s.fileService.UploadProof(ctx, req.EmployeeID, req.File, req.FileHeader.Filename)
	if err != nil {
		return attendance.Response{}, err
	}

	lateMinutes := s.lateMinutes(ctx, now, loc)
	status := attendance.StatusPresent
	if lateMinutes > 0 {
		status = attendance.StatusLate
	}

	date, _ := time.ParseInLocation("2006-01-02", dateLocal, loc)
	record := attendance.Attendance{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		ClockIn:          &now,
		ClockInLatitude:  &req.Latitude,
		ClockInLongitude: &req.Longitude,
		ClockInDistanceM: &distance,
		ClockInProofURL:  &proofPath,
		Status:           status,
		LateMinutes:      &lateMinutes,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return s.toResponse(created), nil
}

// ClockOut implements attendance.Service.
func (s *attendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.BranchID == nil {
		return attendance.Response{}, employee.ErrNoBranchAssigned
	}

	b, err := s.branchRepo.GetByID(ctx, *emp.BranchID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get branch: %w", err)
	}

	record, err := s.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Response{}, err
	}
	if record.ClockOut != nil {
		return attendance.Response{}, attendance.ErrAlreadyCheckedOut
	}

	distance, err := checkFence(req.Latitude, req.Longitude, b)
	if err != nil {
		return attendance.Response{}, err
	}

	proofPath, err := s.fileService.UploadProof(ctx, req.EmployeeID, req.File, req.FileHeader.Filename)
	if err != nil {
		return attendance.Response{}, err
	}

	loc := branchLocation(b)
	now := time.Now().In(loc)

	workMinutes := int(now.Sub(*record.ClockIn).Minutes())
	overtimeMinutes := s.overtimeMinutes(ctx, now, loc)

	record.ClockOut = &now
	record.WorkMinutes = &workMinutes
	record.ClockOutLatitude = &req.Latitude
	record.ClockOutLongitude = &req.Longitude
	record.ClockOutDistanceM = &distance
	record.ClockOutProofURL = &proofPath
	record.OvertimeMinutes = &overtimeMinutes

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.Response{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return s.toResponse(record), nil
}

// lateMinutes measures how far past the configured work start the clock-in
// landed, on the clock-in's own day.
func (s *attendanceServiceImpl) lateMinutes(ctx context.Context, clockIn time.Time, loc *time.Location) int {
	startStr := s.settingsService.String(ctx, settings.KeyWorkStartTime, s.work.StartTime)
	start, err := time.Parse("15:04", startStr)
	if err != nil {
		slog.Warn("Work start time setting is malformed", "value", startStr)
		return 0
	}

	workStart := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(),
		start.Hour(), start.Minute(), 0, 0, loc)
	if clockIn.Before(workStart) {
		return 0
	}
	return int(clockIn.Sub(workStart).Minutes())
}

// overtimeMinutes measures how far past the configured work end the clock-out
// landed.
func (s *attendanceServiceImpl) overtimeMinutes(ctx context.Context, clockOut time.Time, loc *time.Location) int {
	endStr := s.settingsService.String(ctx, settings.KeyWorkEndTime, s.work.EndTime)
	end, err := time.Parse("15:04", endStr)
	if err != nil {
		slog.Warn("Work end time setting is malformed", "value", endStr)
		return 0
	}

	workEnd := time.Date(clockOut.Year(), clockOut.Month(), clockOut.Day(),
		end.Hour(), end.Minute(), 0, 0, loc)
	if clockOut.Before(workEnd) {
		return 0
	}
	return int(clockOut.Sub(workEnd).Minutes())
}

// GetMyAttendance implements attendance.Service.
func (s *attendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.ListFilter) (attendance.ListResponse, error) {
	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// List implements attendance.Service.
func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.Response, 0, len(records))
	for _, r := range records {
		responses = append(responses, s.toResponse(r))
	}
	return attendance.ListResponse{Attendances: responses, TotalItems: total}, nil
}

// Get implements attendance.Service.
func (s *attendanceServiceImpl) Get(ctx context.Context, id string) (attendance.Response, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}
	return s.toResponse(record), nil
}

func (s *attendanceServiceImpl) toResponse(a attendance.Attendance) attendance.Response {
	resp := attendance.Response{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		EmployeeName:      a.EmployeeName,
		Date:              a.Date.Format("2006-01-02"),
		ClockInDistanceM:  a.ClockInDistanceM,
		ClockOutDistanceM: a.ClockOutDistanceM,
		WorkMinutes:       a.WorkMinutes,
		Status:            a.Status,
		LateMinutes:       a.LateMinutes,
		OvertimeMinutes:   a.OvertimeMinutes,
	}
	if a.ClockIn != nil {
		in := a.ClockIn.Format(time.RFC3339)
		resp.ClockInTime = &in
	}
	if a.ClockOut != nil {
		out := a.ClockOut.Format(time.RFC3339)
		resp.ClockOutTime = &out
	}
	if a.ClockInProofURL != nil {
		url := s.fileService.GetFileURL(*a.ClockInProofURL)
		resp.ClockInProofURL = &url
	}
	if a.ClockOutProofURL != nil {
		url := s.fileService.GetFileURL(*a.ClockOutProofURL)
		resp.ClockOutProofURL = &url
	}
	return resp
}
