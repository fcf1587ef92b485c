package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Upstream pedestrian data API
const PEDESTRIAN_API_ENDPOINT_BASE = "http://localhost:8000"

// Default dashboard selection
const DEFAULT_STREET = "Kaiserstraße"

// Series refresher config
const SERIES_REFRESHER_SCHEDULE_MINUTES = 30

// Derived-metric tuning. Neither constant has a documented derivation; both
// are kept configurable instead of being buried in the pipeline.
const HIGH_TRAFFIC_QUANTILE = 0.7
const TREND_DEADBAND_PCT = 10.0

// Calendar aggregation config
const CALENDAR_WINDOW_EXTENSION_DAYS = 60
const CALENDAR_FETCH_CONCURRENCY = 16
const NEXT_EVENT_HORIZON_MONTHS = 4
const EVENT_BASELINE_DAYS = 30

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const STREETS_RESPONSE_RESOURCE = "streets_response.json"
const HISTORICAL_RESPONSE_RESOURCE = "historical_response.json"
const PREDICTION_RESPONSE_RESOURCE = "prediction_response.json"
const CALENDAR_INFO_RESOURCE = "calendar_info.json"
const EVENTS_RESPONSE_RESOURCE = "events_response.json"

// LoadEnv loads a .env file when one exists next to the working directory.
// Missing files are fine; environment variables simply keep their values.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file loaded, using process environment")
	}
}

// EnvOr returns the environment value for key, or fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RedisAddress resolves the Redis address, allowing an env override.
func RedisAddress() string {
	return EnvOr("REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

// APIBaseURL resolves the upstream API base URL, allowing an env override.
func APIBaseURL() string {
	return EnvOr("PEDESTRIAN_API_URL", PEDESTRIAN_API_ENDPOINT_BASE)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
