package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"package-tracker-service/api/dto"
	"package-tracker-service/tracking"
	"package-tracker-service/tracking/models"
)

// CourierHandler exposes courier management endpoints.
type CourierHandler struct {
	Store  *tracking.Store
	Logger *zap.Logger
}

func (h *CourierHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := tracking.CourierQuery{
		Search:    q.Get("q"),
		SortBy:    tracking.CourierSortKey(q.Get("sort")),
		Direction: tracking.SortDirection(q.Get("dir")),
	}
	if s := q.Get("status"); s != "" && s != "all" {
		status, err := models.ParseCourierStatus(s)
		if err != nil {
			writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
			return
		}
		query.Status = status
	}

	couriers := h.Store.FilterCouriers(query)
	res := dto.ListCouriersResponse{Couriers: make([]dto.CourierResponse, 0, len(couriers))}
	for _, c := range couriers {
		res.Couriers = append(res.Couriers, toCourierResponse(c))
	}
	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func (h *CourierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CourierRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	draft, msg := draftFromCourierRequest(req)
	if msg != "" {
		writeError(w, r, h.Logger, http.StatusBadRequest, msg)
		return
	}

	c, err := h.Store.AddCourier(draft)
	if err != nil {
		h.Logger.Error("Add courier failed", zap.Error(err))
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, r, h.Logger, http.StatusCreated, toCourierResponse(c))
}

func (h *CourierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CourierRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	draft, msg := draftFromCourierRequest(req)
	if msg != "" {
		writeError(w, r, h.Logger, http.StatusBadRequest, msg)
		return
	}

	c, ok := h.Store.UpdateCourier(r.PathValue("id"), draft)
	if !ok {
		writeError(w, r, h.Logger, http.StatusNotFound, "courier not found")
		return
	}
	writeJSON(w, r, h.Logger, http.StatusOK, toCourierResponse(c))
}

func (h *CourierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteCourier(r.PathValue("id")) {
		writeError(w, r, h.Logger, http.StatusNotFound, "courier not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourierHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req dto.Location
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := h.Store.Courier(id); !ok {
		writeError(w, r, h.Logger, http.StatusNotFound, "courier not found")
		return
	}

	h.Store.UpdateCourierLocation(id, models.Coordinates{Lat: req.Lat, Lng: req.Lng})

	c, _ := h.Store.Courier(id)
	writeJSON(w, r, h.Logger, http.StatusOK, toCourierResponse(c))
}

func draftFromCourierRequest(req dto.CourierRequest) (models.CourierDraft, string) {
	if strings.TrimSpace(req.Name) == "" {
		return models.CourierDraft{}, "name is required"
	}

	status := models.CourierActive
	if req.Status != "" {
		var err error
		if status, err = models.ParseCourierStatus(req.Status); err != nil {
			return models.CourierDraft{}, err.Error()
		}
	}

	draft := models.CourierDraft{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Status:      status,
		Area:        strings.TrimSpace(req.Area),
		VehicleType: strings.TrimSpace(req.VehicleType),
	}
	if req.CurrentLocation != nil {
		draft.CurrentLocation = &models.Coordinates{Lat: req.CurrentLocation.Lat, Lng: req.CurrentLocation.Lng}
	}
	return draft, ""
}
