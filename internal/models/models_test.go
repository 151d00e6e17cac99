package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateValidate(t *testing.T) {
	assert.NoError(t, Coordinate{Latitude: 37.5665, Longitude: 126.978}.Validate())
	assert.NoError(t, Coordinate{Latitude: -90, Longitude: 180}.Validate())

	for _, c := range []Coordinate{
		{Latitude: 90.1, Longitude: 0},
		{Latitude: 0, Longitude: -180.5},
		{Latitude: math.NaN(), Longitude: 0},
	} {
		err := c.Validate()
		assert.True(t, errors.Is(err, ErrInvalidCoordinate), "%v", c)
	}
}

func TestHazardZoneValidate(t *testing.T) {
	valid := HazardZone{Latitude: 37.551, Longitude: 126.9882, RadiusMeters: 200, RiskScore: 0.8}
	assert.NoError(t, valid.Validate())

	noRadius := valid
	noRadius.RadiusMeters = 0
	assert.ErrorIs(t, noRadius.Validate(), ErrInvalidHazard)

	tooRisky := valid
	tooRisky.RiskScore = 1.2
	assert.ErrorIs(t, tooRisky.Validate(), ErrInvalidHazard)

	offMap := valid
	offMap.Latitude = 120
	err := offMap.Validate()
	assert.ErrorIs(t, err, ErrInvalidHazard)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestBoundsContains(t *testing.T) {
	seoul := Bounds{MinLatitude: 37.4, MinLongitude: 126.7, MaxLatitude: 37.8, MaxLongitude: 127.3}

	assert.True(t, seoul.Contains(Coordinate{Latitude: 37.5665, Longitude: 126.978}))
	assert.True(t, seoul.Contains(Coordinate{Latitude: 37.4, Longitude: 127.3}))
	assert.False(t, seoul.Contains(Coordinate{Latitude: 35.1796, Longitude: 129.0756}))
}
