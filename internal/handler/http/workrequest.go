package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrpulse/attendance-backend-go/internal/domain/workrequest"
	"github.com/hrpulse/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hrpulse/attendance-backend-go/internal/handler/http/response"
)

type WorkRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type workRequestHandlerImpl struct {
	workRequestService workrequest.Service
}

func NewWorkRequestHandler(workRequestService workrequest.Service) WorkRequestHandler {
	return &workRequestHandlerImpl{
		workRequestService: workRequestService,
	}
}

// Create implements WorkRequestHandler.
func (h *workRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workrequest.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = middleware.EmployeeID(r)
	if req.EmployeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	result, err := h.workRequestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work request submitted", result)
}

// ListMine implements WorkRequestHandler.
func (h *workRequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	filter := parseWorkRequestFilter(r)
	result, err := h.workRequestService.ListMine(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, response.NewMeta(filter.Page, filter.Limit, result.TotalItems))
}

// List implements WorkRequestHandler.
func (h *workRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseWorkRequestFilter(r)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	result, err := h.workRequestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, response.NewMeta(filter.Page, filter.Limit, result.TotalItems))
}

// Get implements WorkRequestHandler.
func (h *workRequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workRequestService.Get(r.Context(), id, middleware.EmployeeID(r), middleware.IsManager(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements WorkRequestHandler.
func (h *workRequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := workrequest.ApproveRequest{
		ID:         chi.URLParam(r, "id"),
		ApprovedBy: middleware.EmployeeID(r),
	}

	result, err := h.workRequestService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work request approved", result)
}

// Reject implements WorkRequestHandler.
func (h *workRequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req workrequest.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.RejectedBy = middleware.EmployeeID(r)

	result, err := h.workRequestService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work request rejected", result)
}

func parseWorkRequestFilter(r *http.Request) workrequest.ListFilter {
	q := r.URL.Query()

	filter := workrequest.ListFilter{
		Page:  1,
		Limit: 20,
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if kind := q.Get("kind"); kind != "" {
		filter.Kind = &kind
	}
	if status := q.Get("status"); status != "" {
		filter.Status = &status
	}

	return filter
}
