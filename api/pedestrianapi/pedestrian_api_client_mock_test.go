package pedestrianapi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-server/util"
)

// The fixtures live under <repo root>/resources, two levels up from here.
func pointAtRepoRoot(t *testing.T) {
	t.Helper()
	root, err := filepath.Abs("../..")
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", root)
}

func TestMockGetStreets(t *testing.T) {
	pointAtRepoRoot(t)
	client := NewPedestrianApiClientMock()

	expected, err := util.ReadStreetsResponseFromJSON(streetsResponsePath())
	require.NoError(t, err)

	response, err := client.GetStreets()
	require.NoError(t, err)

	assert.Equal(t, expected, response, "Responses dont match")
}

func TestMockGetHistoricalData(t *testing.T) {
	pointAtRepoRoot(t)
	client := NewPedestrianApiClientMock()

	expected, err := util.ReadHistoricalResponseFromJSON(historicalResponsePath())
	require.NoError(t, err)

	response, err := client.GetHistoricalData("Kaiserstraße", "2024-03-04", "2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, expected, response, "Responses dont match")
}

func TestMockGetPredictionData(t *testing.T) {
	pointAtRepoRoot(t)
	client := NewPedestrianApiClientMock()

	expected, err := util.ReadPredictionResponseFromJSON(predictionResponsePath())
	require.NoError(t, err)

	response, err := client.GetPredictionData("Kaiserstraße", "2024-03-04", "2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, expected, response, "Responses dont match")
}

func TestMockGetCalendarInfo_StampsDate(t *testing.T) {
	pointAtRepoRoot(t)
	client := NewPedestrianApiClientMock()

	response, err := client.GetCalendarInfo("2024-10-03")
	require.NoError(t, err)

	assert.Equal(t, "2024-10-03", response.Date)
}

func TestMockGetEventsForDate_StampsDate(t *testing.T) {
	pointAtRepoRoot(t)
	client := NewPedestrianApiClientMock()

	response, err := client.GetEventsForDate("2024-03-08")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-08", response.Date)
	assert.True(t, response.HasEvents)
}
