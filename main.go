package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"pd-server/config"
	"pd-server/di"
	"pd-server/models"
	"pd-server/util"
)

// plotSampleDashboard renders today's merged hourly series for the default
// street to an HTML chart. Quick visual sanity check when running against
// the mock API.
func plotSampleDashboard(container *di.Container) {
	view, err := container.DashboardService.BuildDashboard(config.DEFAULT_STREET, models.RangeDay, time.Now(), time.Now())
	if err != nil {
		log.Printf("[MAIN] Could not build sample dashboard: %v", err)
		return
	}
	util.PlotMergedHourlySeries(view.Hourly, "Hourly pedestrians - "+view.Street, "./merged_series.html")
}

func main() {
	config.LoadEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}
	container := di.NewContainer(env)

	if env != "prod" {
		plotSampleDashboard(container)
	}

	fmt.Println("refreshing!")
	if err := container.SeriesRefresherService.RefreshSeriesData(time.Now()); err != nil {
		log.Printf("[MAIN] Initial series refresh failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.SeriesRefresherService.StartPeriodicJob(config.SERIES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.PdHttpServer.Start()
}
