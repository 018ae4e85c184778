package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"package-tracker-service/api/dto"
	"package-tracker-service/tracking/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, msg string) {
	writeJSON(w, r, logger, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object with no unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

// parseDate accepts a calendar date (2006-01-02, UTC midnight) or RFC 3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

func toPackageResponse(p models.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:                p.ID,
		TrackingNumber:    p.TrackingNumber,
		CustomerName:      p.CustomerName,
		CustomerEmail:     p.CustomerEmail,
		Origin:            p.Origin,
		Destination:       p.Destination,
		Status:            p.Status.String(),
		EstimatedDelivery: p.EstimatedDelivery,
		Weight:            p.Weight,
		Description:       p.Description,
		CourierID:         p.CourierID,
		Priority:          string(p.Priority),
		CreatedAt:         p.CreatedAt,
	}
}

func toPackageList(pkgs []models.Package) dto.ListPackagesResponse {
	res := dto.ListPackagesResponse{Packages: make([]dto.PackageResponse, 0, len(pkgs))}
	for _, p := range pkgs {
		res.Packages = append(res.Packages, toPackageResponse(p))
	}
	return res
}

func toCourierResponse(c models.Courier) dto.CourierResponse {
	res := dto.CourierResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Status:           c.Status.String(),
		AssignedPackages: c.AssignedPackages,
		Area:             c.Area,
		VehicleType:      c.VehicleType,
	}
	if res.AssignedPackages == nil {
		res.AssignedPackages = []string{}
	}
	if c.CurrentLocation != nil {
		res.CurrentLocation = &dto.Location{Lat: c.CurrentLocation.Lat, Lng: c.CurrentLocation.Lng}
	}
	return res
}
