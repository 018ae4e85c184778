package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"package-tracker-service/api/dto"
	"package-tracker-service/tracking"
	"package-tracker-service/tracking/models"
)

// TrackHandler serves the public tracking lookup.
type TrackHandler struct {
	Store  *tracking.Store
	Logger *zap.Logger
}

func (h *TrackHandler) Track(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.PathValue("trackingNumber"))
	if code == "" {
		writeError(w, r, h.Logger, http.StatusBadRequest, "tracking number is required")
		return
	}

	pkg, ok := h.Store.PackageByTrackingNumber(code)
	if !ok {
		writeError(w, r, h.Logger, http.StatusNotFound, "no package found for tracking number")
		return
	}

	res := dto.TrackingResponse{
		TrackingNumber:    pkg.TrackingNumber,
		Status:            pkg.Status.String(),
		Origin:            pkg.Origin,
		Destination:       pkg.Destination,
		EstimatedDelivery: pkg.EstimatedDelivery,
		Weight:            pkg.Weight,
		Description:       pkg.Description,
		Delayed:           pkg.Status == models.StatusDelayed,
	}
	if pkg.CourierID != "" {
		if c, ok := h.Store.Courier(pkg.CourierID); ok {
			res.CourierName = c.Name
		}
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}
