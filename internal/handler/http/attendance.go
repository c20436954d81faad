package http

import (
	"encoding/json"
	"net/http"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/attendance"
	"github.com/samat2k5/hrms-singapore-sub000/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClassifyDay(w http.ResponseWriter, r *http.Request)
	ClassifyMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) ClassifyDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClassifyDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.ClassifyDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) ClassifyMonth(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClassifyMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.ClassifyMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
