package api

import (
	"net/http"

	"go.uber.org/zap"

	"package-tracker-service/api/handlers"
	"package-tracker-service/tracking"
)

// NewRouter wires HTTP handlers to the store and returns an http.Handler.
// onAdminEnter, when non-nil, runs each time admin mode is switched on.
func NewRouter(logger *zap.Logger, store *tracking.Store, onAdminEnter func()) http.Handler {
	mux := http.NewServeMux()

	trackHandler := &handlers.TrackHandler{Store: store, Logger: logger}
	pkgHandler := &handlers.PackageHandler{Store: store, Logger: logger}
	courierHandler := &handlers.CourierHandler{Store: store, Logger: logger}
	dashHandler := &handlers.DashboardHandler{Store: store, Logger: logger, OnAdminEnter: onAdminEnter}

	admin := func(h http.HandlerFunc) http.HandlerFunc { return requireAdmin(store, h) }

	mux.HandleFunc("GET /health", handlers.Health(logger))
	mux.HandleFunc("GET /track/{trackingNumber}", trackHandler.Track)
	mux.HandleFunc("GET /admin", dashHandler.AdminMode)
	mux.HandleFunc("POST /admin", dashHandler.ToggleAdminMode)

	mux.HandleFunc("GET /packages", admin(pkgHandler.List))
	mux.HandleFunc("POST /packages", admin(pkgHandler.Create))
	mux.HandleFunc("GET /packages/active", admin(pkgHandler.Active))
	mux.HandleFunc("POST /packages/status", admin(pkgHandler.BulkUpdateStatus))
	mux.HandleFunc("GET /packages/{id}", admin(pkgHandler.Get))
	mux.HandleFunc("DELETE /packages/{id}", admin(pkgHandler.Delete))
	mux.HandleFunc("PUT /packages/{id}/status", admin(pkgHandler.UpdateStatus))
	mux.HandleFunc("PUT /packages/{id}/courier", admin(pkgHandler.AssignCourier))

	mux.HandleFunc("GET /couriers", admin(courierHandler.List))
	mux.HandleFunc("POST /couriers", admin(courierHandler.Create))
	mux.HandleFunc("PUT /couriers/{id}", admin(courierHandler.Update))
	mux.HandleFunc("DELETE /couriers/{id}", admin(courierHandler.Delete))
	mux.HandleFunc("PUT /couriers/{id}/location", admin(courierHandler.UpdateLocation))

	mux.HandleFunc("GET /activities", admin(dashHandler.Activities))
	mux.HandleFunc("GET /stats", admin(dashHandler.Stats))

	return loggingMiddleware(logger, mux)
}
