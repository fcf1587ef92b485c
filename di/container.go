package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"pd-server/api"
	"pd-server/api/pedestrianapi"
	"pd-server/config"
	"pd-server/dao/redis"
	"pd-server/db"
	"pd-server/server"
	"pd-server/server/handlers"
	services "pd-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisSeriesDao         *redis.RedisSeriesDAO
	PedestrianAPI          pedestrianapi.PedestrianAPI
	StreetService          *services.StreetService
	CalendarService        *services.CalendarService
	DashboardService       *services.DashboardService
	SeriesRefresherService *services.SeriesRefresherService
	DashboardHandler       *handlers.DashboardHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	PdHttpServer           *server.PdHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	redisSeriesDao := redis.NewRedisSeriesDAO(redisClient)

	var pedestrianApiClient pedestrianapi.PedestrianAPI
	if env != "prod" {
		pedestrianApiClient = pedestrianapi.NewPedestrianApiClientMock()
		log.Printf("Using mock pedestrian api")
	} else {
		log.Printf("Using prod pedestrian api")
		httpClient := api.NewHTTPClient(config.APIBaseURL())
		pedestrianApiClient = pedestrianapi.NewPedestrianApiClient(httpClient)
	}

	streetService := services.NewStreetService(redisSeriesDao, pedestrianApiClient)
	calendarService := services.NewCalendarService(redisSeriesDao, pedestrianApiClient)
	dashboardService := services.NewDashboardService(redisSeriesDao, pedestrianApiClient, calendarService)
	seriesRefresherService := services.NewSeriesRefresherService(redisSeriesDao, pedestrianApiClient)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService, streetService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(dashboardHandler, muxRouter)
	pdHttpServer := server.NewPdHttpServer(router, muxRouter)

	return &Container{
		RedisClient:            redisClient,
		RedisSeriesDao:         redisSeriesDao,
		PedestrianAPI:          pedestrianApiClient,
		StreetService:          streetService,
		CalendarService:        calendarService,
		DashboardService:       dashboardService,
		SeriesRefresherService: seriesRefresherService,
		DashboardHandler:       dashboardHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		PdHttpServer:           pdHttpServer,
	}
}
