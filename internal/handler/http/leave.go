package http

import (
	"encoding/json"
	"net/http"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/leave"
	"github.com/samat2k5/hrms-singapore-sub000/internal/handler/http/response"
)

type LeaveHandler interface {
	ComputeBalances(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) ComputeBalances(w http.ResponseWriter, r *http.Request) {
	var req leave.BalancesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.ComputeBalances(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
