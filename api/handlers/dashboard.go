package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"package-tracker-service/api/dto"
	"package-tracker-service/tracking"
)

// DashboardHandler serves the admin overview: activity feed, statistics and
// the admin-mode switch.
type DashboardHandler struct {
	Store  *tracking.Store
	Logger *zap.Logger
	// OnAdminEnter runs after admin mode is switched on.
	OnAdminEnter func()
}

func (h *DashboardHandler) Activities(w http.ResponseWriter, r *http.Request) {
	activities := h.Store.Activities()
	res := dto.ListActivitiesResponse{Activities: make([]dto.ActivityResponse, 0, len(activities))}
	for _, a := range activities {
		res.Activities = append(res.Activities, dto.ActivityResponse{
			ID:      a.ID,
			Action:  a.Action,
			Package: a.Package,
			Time:    a.Time,
			Type:    string(a.Type),
		})
	}
	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.Store.DeliveryStats()
	breakdown := make(map[string]int, len(stats.StatusBreakdown))
	for st, n := range stats.StatusBreakdown {
		breakdown[st.String()] = n
	}
	writeJSON(w, r, h.Logger, http.StatusOK, dto.StatsResponse{
		TotalDeliveries:  stats.TotalDeliveries,
		OnTimeRate:       stats.OnTimeRate,
		SatisfactionRate: stats.SatisfactionRate,
		StatusBreakdown:  breakdown,
	})
}

func (h *DashboardHandler) AdminMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Logger, http.StatusOK, dto.AdminResponse{IsAdmin: h.Store.IsAdmin()})
}

func (h *DashboardHandler) ToggleAdminMode(w http.ResponseWriter, r *http.Request) {
	on := h.Store.ToggleAdminMode()
	if on && h.OnAdminEnter != nil {
		h.OnAdminEnter()
	}
	writeJSON(w, r, h.Logger, http.StatusOK, dto.AdminResponse{IsAdmin: on})
}
