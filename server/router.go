package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DashboardRoutes is the handler surface the router wires up.
type DashboardRoutes interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetStreets(w http.ResponseWriter, r *http.Request)
	GetStreetsNearby(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dashboardHandler DashboardRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	dashboardHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?street={name}&range={day|week|month}&date={YYYY-MM-DD}
	r.router.HandleFunc("/v1/dashboard", r.dashboardHandler.GetDashboard).Methods("GET")

	r.router.HandleFunc("/v1/streets", r.dashboardHandler.GetStreets).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={meters(float)}
	r.router.HandleFunc("/v1/streets/nearby", r.dashboardHandler.GetStreetsNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
}
