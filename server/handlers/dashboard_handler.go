package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pd-server/config"
	"pd-server/models"
	services "pd-server/service"
)

const (
	STREET_QUERY_ARG = "street"
	RANGE_QUERY_ARG  = "range"
	DATE_QUERY_ARG   = "date"
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

// DashboardHandler serves the derived dashboard views and the street catalog.
type DashboardHandler struct {
	dashboardService *services.DashboardService
	streetService    *services.StreetService
}

func NewDashboardHandler(
	dashboardService *services.DashboardService,
	streetService *services.StreetService) *DashboardHandler {

	return &DashboardHandler{
		dashboardService: dashboardService,
		streetService:    streetService,
	}
}

// GetDashboard handles GET /v1/dashboard?street=S&range=day|week|month&date=YYYY-MM-DD
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	street, kind, anchor, ok := h.parseDashboardArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	view, err := h.dashboardService.BuildDashboard(street, kind, anchor, time.Now())
	if err != nil {
		log.Println("Error building dashboard:", err)
		http.Error(w, "Upstream data unavailable", http.StatusBadGateway)
		return
	}

	writeJSON(w, view)
}

// GetStreets handles GET /v1/streets
func (h *DashboardHandler) GetStreets(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.streetService.GetStreets()
	if err != nil {
		log.Println("Error loading street catalog:", err)
		http.Error(w, "Upstream data unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, catalog)
}

// GetStreetsNearby handles GET /v1/streets/nearby?lat={float}&lon={float}&radius={meters}
func (h *DashboardHandler) GetStreetsNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	streets, err := h.streetService.GetStreetsNearby(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby streets:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if streets == nil {
		streets = []models.StreetLocation{}
	}
	writeJSON(w, streets)
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *DashboardHandler) parseDashboardArgs(vals url.Values, w http.ResponseWriter) (
	street string, kind models.RangeKind, anchor time.Time, ok bool,
) {
	street = vals.Get(STREET_QUERY_ARG)
	if street == "" {
		street = config.DEFAULT_STREET
	}

	switch vals.Get(RANGE_QUERY_ARG) {
	case "", string(models.RangeDay):
		kind = models.RangeDay
	case string(models.RangeWeek):
		kind = models.RangeWeek
	case string(models.RangeMonth):
		kind = models.RangeMonth
	default:
		http.Error(w, "Invalid argument "+RANGE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	anchor = time.Now()
	if d := vals.Get(DATE_QUERY_ARG); d != "" {
		parsed, err := time.Parse(models.DateLayout, d)
		if err != nil {
			http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
			return
		}
		anchor = parsed
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
