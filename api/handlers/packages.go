package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"package-tracker-service/api/dto"
	"package-tracker-service/tracking"
	"package-tracker-service/tracking/models"
)

// PackageHandler exposes package management endpoints.
type PackageHandler struct {
	Store  *tracking.Store
	Logger *zap.Logger
	Now    func() time.Time
}

func (h *PackageHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := tracking.PackageQuery{
		Search:    q.Get("q"),
		SortBy:    tracking.PackageSortKey(q.Get("sort")),
		Direction: tracking.SortDirection(q.Get("dir")),
	}
	if s := q.Get("status"); s != "" && s != "all" {
		status, err := models.ParsePackageStatus(s)
		if err != nil {
			writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
			return
		}
		query.Status = status
	}

	writeJSON(w, r, h.Logger, http.StatusOK, toPackageList(h.Store.FilterPackages(query)))
}

func (h *PackageHandler) Active(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Logger, http.StatusOK, toPackageList(h.Store.ActivePackages()))
}

func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	pkg, ok := h.Store.Package(r.PathValue("id"))
	if !ok {
		writeError(w, r, h.Logger, http.StatusNotFound, "package not found")
		return
	}
	writeJSON(w, r, h.Logger, http.StatusOK, toPackageResponse(pkg))
}

// Create validates the form input the way the admin dialog does, then adds
// the package. The estimated delivery may not lie in the past.
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}

	draft, msg := h.draftFromRequest(req)
	if msg != "" {
		writeError(w, r, h.Logger, http.StatusBadRequest, msg)
		return
	}

	pkg, err := h.Store.AddPackage(draft)
	if errors.Is(err, tracking.ErrTrackingNumberTaken) {
		writeError(w, r, h.Logger, http.StatusConflict, "tracking number already in use")
		return
	}
	if err != nil {
		h.Logger.Error("Add package failed", zap.Error(err))
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, h.Logger, http.StatusCreated, toPackageResponse(pkg))
}

func (h *PackageHandler) draftFromRequest(req dto.PackageRequest) (models.PackageDraft, string) {
	required := map[string]string{
		"customer_name":      req.CustomerName,
		"origin":             req.Origin,
		"destination":        req.Destination,
		"estimated_delivery": req.EstimatedDelivery,
	}
	for _, field := range []string{"customer_name", "origin", "destination", "estimated_delivery"} {
		if strings.TrimSpace(required[field]) == "" {
			return models.PackageDraft{}, field + " is required"
		}
	}

	eta, err := parseDate(req.EstimatedDelivery)
	if err != nil {
		return models.PackageDraft{}, err.Error()
	}
	if eta.Before(h.now()) {
		return models.PackageDraft{}, "estimated delivery date cannot be in the past"
	}

	if req.Weight < 0 {
		return models.PackageDraft{}, "weight must not be negative"
	}

	var status models.PackageStatus
	if req.Status != "" {
		if status, err = models.ParsePackageStatus(req.Status); err != nil {
			return models.PackageDraft{}, err.Error()
		}
	}

	priority, err := models.ParsePriority(req.Priority)
	if err != nil {
		return models.PackageDraft{}, err.Error()
	}

	return models.PackageDraft{
		TrackingNumber:    strings.TrimSpace(req.TrackingNumber),
		CustomerName:      strings.TrimSpace(req.CustomerName),
		CustomerEmail:     strings.TrimSpace(req.CustomerEmail),
		Origin:            strings.TrimSpace(req.Origin),
		Destination:       strings.TrimSpace(req.Destination),
		Status:            status,
		EstimatedDelivery: eta,
		Weight:            req.Weight,
		Description:       req.Description,
		Priority:          priority,
	}, ""
}

func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeletePackage(r.PathValue("id")) {
		writeError(w, r, h.Logger, http.StatusNotFound, "package not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PackageHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req dto.StatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	status, err := models.ParsePackageStatus(req.Status)
	if err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.Store.Package(id); !ok {
		writeError(w, r, h.Logger, http.StatusNotFound, "package not found")
		return
	}
	if err := h.Store.UpdatePackageStatus(id, status); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}

	pkg, _ := h.Store.Package(id)
	writeJSON(w, r, h.Logger, http.StatusOK, toPackageResponse(pkg))
}

func (h *PackageHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	status, err := models.ParsePackageStatus(req.Status)
	if err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.Store.BulkUpdateStatus(req.IDs, status)
	if err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, h.Logger, http.StatusOK, dto.BulkStatusResponse{Updated: updated})
}

func (h *PackageHandler) AssignCourier(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req dto.AssignCourierRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.CourierID) == "" {
		writeError(w, r, h.Logger, http.StatusBadRequest, "courier_id is required")
		return
	}

	if _, ok := h.Store.Package(id); !ok {
		writeError(w, r, h.Logger, http.StatusNotFound, "package not found")
		return
	}
	if _, ok := h.Store.Courier(req.CourierID); !ok {
		writeError(w, r, h.Logger, http.StatusNotFound, "courier not found")
		return
	}

	h.Store.AssignCourier(id, req.CourierID)

	pkg, _ := h.Store.Package(id)
	writeJSON(w, r, h.Logger, http.StatusOK, toPackageResponse(pkg))
}
