package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DayStatus(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

// Get implements HolidayHandler.
func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.holidayService.IsHoliday(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

// Set implements HolidayHandler.
func (h *holidayHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req holiday.SetHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.holidayService.SetHoliday(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w)
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.holidayService.ListMonth(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

// DayStatus implements HolidayHandler.
func (h *holidayHandlerImpl) DayStatus(w http.ResponseWriter, r *http.Request) {
	force, ok := parseForceWorkday(w, r)
	if !ok {
		return
	}

	result, err := h.holidayService.DayStatus(r.Context(), chi.URLParam(r, "date"), force)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

func parseForceWorkday(w http.ResponseWriter, r *http.Request) (bool, bool) {
	raw := r.URL.Query().Get("force_workday")
	if raw == "" {
		return false, true
	}
	force, err := strconv.ParseBool(raw)
	if err != nil {
		response.BadRequest(w, "Invalid force_workday", map[string]string{"force_workday": "must be true or false"})
		return false, false
	}
	return force, true
}
