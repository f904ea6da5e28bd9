package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hrpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpulse/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hrpulse/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseClockForm pulls the JSON 'data' field and the 'photo' file out of a
// multipart clock-in/out request.
func parseClockForm(w http.ResponseWriter, r *http.Request, dst interface{}) (ok bool, cleanup func()) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return false, nil
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return false, nil
	}

	if err := json.Unmarshal([]byte(dataJSON), dst); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false, nil
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance proof photo is required", nil)
			return false, nil
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return false, nil
	}

	switch req := dst.(type) {
	case *attendance.ClockInRequest:
		req.File = file
		req.FileHeader = fileHeader
	case *attendance.ClockOutRequest:
		req.File = file
		req.FileHeader = fileHeader
	}

	return true, func() { file.Close() }
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest

	ok, cleanup := parseClockForm(w, r, &req)
	if !ok {
		return
	}
	defer cleanup()

	req.EmployeeID = middleware.EmployeeID(r)
	if req.EmployeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest

	ok, cleanup := parseClockForm(w, r, &req)
	if !ok {
		return
	}
	defer cleanup()

	req.EmployeeID = middleware.EmployeeID(r)
	if req.EmployeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	filter := parseAttendanceFilter(r)
	result, err := h.attendanceService.GetMyAttendance(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, response.NewMeta(filter.Page, filter.Limit, result.TotalItems))
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseAttendanceFilter(r)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, response.NewMeta(filter.Page, filter.Limit, result.TotalItems))
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !middleware.IsManager(r) && result.EmployeeID != middleware.EmployeeID(r) {
		response.HandleError(w, attendance.ErrUnauthorized)
		return
	}

	response.Success(w, result)
}

func parseAttendanceFilter(r *http.Request) attendance.ListFilter {
	q := r.URL.Query()

	filter := attendance.ListFilter{
		Page:  1,
		Limit: 20,
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if status := q.Get("status"); status != "" {
		filter.Status = &status
	}
	if from, err := time.Parse("2006-01-02", q.Get("date_from")); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse("2006-01-02", q.Get("date_to")); err == nil {
		filter.DateTo = &to
	}

	return filter
}
