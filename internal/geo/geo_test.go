package geo

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodePathEWKB(t *testing.T) {
	path := []models.Coordinate{
		{Latitude: 37.5665, Longitude: 126.9780},
		{Latitude: 37.55325, Longitude: 126.989},
		{Latitude: 37.5400, Longitude: 127.0000},
	}

	data, err := EncodePathEWKB(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodePathEWKB(data)
	require.NoError(t, err)
	assert.Equal(t, path, decoded)
}

func TestEncodePathEWKB_ShortPath(t *testing.T) {
	data, err := EncodePathEWKB([]models.Coordinate{{Latitude: 1, Longitude: 2}})
	require.NoError(t, err)
	assert.Nil(t, data)

	path, err := DecodePathEWKB(nil)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestDecodePathEWKB_Garbage(t *testing.T) {
	_, err := DecodePathEWKB([]byte{0x01, 0x02})
	assert.Error(t, err)
}

func TestRouteFeatureCollection(t *testing.T) {
	hazard := models.HazardZone{ID: uuid.New(), Name: "Yongsan sinkhole", Latitude: 37.551, Longitude: 126.9882, RadiusMeters: 200, RiskScore: 0.8}
	plan := models.RoutePlan{
		Waypoints: []models.Waypoint{
			{Coordinate: models.Coordinate{Latitude: 37.5665, Longitude: 126.978}, Role: models.RoleStart},
			{Coordinate: models.Coordinate{Latitude: 37.55325, Longitude: 126.989}, Role: models.RoleWaypoint},
			{Coordinate: models.Coordinate{Latitude: 37.54, Longitude: 127.0}, Role: models.RoleEnd},
		},
		DistanceMeters: 3527.6,
		AvoidedHazards: []models.AvoidedHazard{{Hazard: hazard, Reason: "sinkhole risk area"}},
		RouteType:      models.RouteTypeSafe,
		Outcome:        models.OutcomePlanned,
	}

	fc := RouteFeatureCollection(plan)
	require.Len(t, fc.Features, 5)
	assert.Equal(t, "route", fc.Features[0].ID)
	assert.Equal(t, hazard.ID.String(), fc.Features[4].ID)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "FeatureCollection", decoded.Type)
	assert.Equal(t, "LineString", decoded.Features[0].Geometry.Type)
	assert.JSONEq(t, `[[126.978,37.5665],[126.989,37.55325],[127,37.54]]`, string(decoded.Features[0].Geometry.Coordinates))
	assert.Equal(t, "Point", decoded.Features[1].Geometry.Type)
}

func TestCell(t *testing.T) {
	a := models.Coordinate{Latitude: 37.5665, Longitude: 126.9780}
	cellA, centroid, err := Cell(a)
	require.NoError(t, err)
	assert.NotEmpty(t, cellA)
	assert.InDelta(t, a.Latitude, centroid.Latitude, 0.01)
	assert.InDelta(t, a.Longitude, centroid.Longitude, 0.01)

	cellB, _, err := Cell(a)
	require.NoError(t, err)
	assert.Equal(t, cellA, cellB)

	far, _, err := Cell(models.Coordinate{Latitude: 37.4979, Longitude: 127.0276})
	require.NoError(t, err)
	assert.NotEqual(t, cellA, far)
}
