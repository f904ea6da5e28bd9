package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/config"
	"github.com/hrpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/leave"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
	"github.com/hrpulse/attendance-backend-go/internal/domain/workrequest"
)

// HousekeepingJobs closes stale attendance sessions and expires pending
// requests nobody acted on.
type HousekeepingJobs struct {
	attendanceRepo  attendance.Repository
	overtimeRepo    overtime.Repository
	leaveRepo       leave.Repository
	workRequestRepo workrequest.Repository
	employeeRepo    employee.Repository
	notificationSvc notification.Service
	work            config.WorkConfig
}

func NewHousekeepingJobs(
	attendanceRepo attendance.Repository,
	overtimeRepo overtime.Repository,
	leaveRepo leave.Repository,
	workRequestRepo workrequest.Repository,
	employeeRepo employee.Repository,
	notificationSvc notification.Service,
	work config.WorkConfig,
) *HousekeepingJobs {
	return &HousekeepingJobs{
		attendanceRepo:  attendanceRepo,
		overtimeRepo:    overtimeRepo,
		leaveRepo:       leaveRepo,
		workRequestRepo: workRequestRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
		work:            work,
	}
}

func (j *HousekeepingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendances", 1*time.Hour, j.AutoCloseStaleAttendances)
	scheduler.AddJob("expire_stale_pending_requests", 6*time.Hour, j.ExpireStalePendingRequests)
}

// AutoCloseStaleAttendances closes open sessions whose scheduled working day
// ended more than the configured cutoff ago. The closed session gets the
// scheduled working duration, never credit for the dangling open time.
func (j *HousekeepingJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-(time.Duration(j.work.HoursPerDay)*time.Hour + j.work.StaleCutoff))

	staleSessions, err := j.attendanceRepo.GetStaleOpenSessions(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}

	if len(staleSessions) == 0 {
		return nil
	}

	closedCount := 0
	for _, session := range staleSessions {
		if session.ClockIn == nil {
			continue
		}

		scheduledOut := session.ClockIn.Add(time.Duration(j.work.HoursPerDay * float64(time.Hour)))
		workMins := int(scheduledOut.Sub(*session.ClockIn).Minutes())

		session.ClockOut = &scheduledOut
		session.WorkMinutes = &workMins
		session.Status = attendance.StatusAutoClosed
		note := "Auto-closed: no clock-out detected after scheduled end of day. Contact your manager if this is incorrect."
		session.Note = &note

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: Failed to auto-close attendance",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}

		if j.notificationSvc != nil {
			emp, err := j.employeeRepo.GetByID(ctx, session.EmployeeID)
			if err == nil {
				_ = j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
					RecipientID: emp.ID,
					Type:        notification.TypeAttendanceAutoClosed,
					Title:       "Attendance Auto-Closed",
					Message:     fmt.Sprintf("Your attendance for %s was automatically closed", session.Date.Format("2006-01-02")),
					Data: map[string]interface{}{
						"attendance_id": session.ID,
						"date":          session.Date.Format("2006-01-02"),
					},
				})
			}
		}

		closedCount++
	}

	slog.Info("Cron: Auto-closed stale attendances", "count", closedCount)
	return nil
}

// ExpireStalePendingRequests marks pending requests older than the configured
// max age as expired and tells the managers how many were dropped.
func (j *HousekeepingJobs) ExpireStalePendingRequests(ctx context.Context) error {
	before := time.Now().UTC().Add(-j.work.PendingMaxAge)

	var total int64
	for name, expire := range map[string]func(context.Context, time.Time) (int64, error){
		"overtime":     j.overtimeRepo.MarkExpiredBefore,
		"leave":        j.leaveRepo.MarkExpiredBefore,
		"work_request": j.workRequestRepo.MarkExpiredBefore,
	} {
		n, err := expire(ctx, before)
		if err != nil {
			slog.Error("Cron: Failed to expire stale pending requests", "kind", name, "error", err)
			continue
		}
		total += n
	}

	if total == 0 {
		return nil
	}

	if j.notificationSvc != nil {
		managers, err := j.employeeRepo.GetManagers(ctx)
		if err != nil {
			slog.Error("Cron: Failed to load managers for expiry notification", "error", err)
		} else {
			for _, manager := range managers {
				_ = j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
					RecipientID: manager.ID,
					Type:        notification.TypeRequestExpired,
					Title:       "Pending Requests Expired",
					Message:     fmt.Sprintf("%d pending requests were not reviewed in time and have expired", total),
					Data: map[string]interface{}{
						"count": total,
					},
				})
			}
		}
	}

	slog.Info("Cron: Expired stale pending requests", "count", total)
	return nil
}
