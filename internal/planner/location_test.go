package planner

import (
	"testing"

	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessLocation_InsideHazard(t *testing.T) {
	inner := hazard(37.5660, 126.9784, 150, 0.7)
	outer := hazard(37.5665, 126.9780, 1000, 0.3)
	far := hazard(37.4979, 127.0276, 300, 0.95)

	risk := AssessLocation(seoulCityHall, []models.HazardZone{outer, far, inner}, 500)

	assert.Equal(t, 0.7, risk.Probability)
	assert.Equal(t, string(RiskHigh), risk.RiskLevel)
	assert.Equal(t, "#FF8000", risk.Color)
	require.Len(t, risk.NearbyHazards, 2)
	// ближайшая зона первой
	assert.Equal(t, outer.ID, risk.NearbyHazards[0].Hazard.ID)
	assert.True(t, risk.NearbyHazards[0].Inside)
	assert.Equal(t, inner.ID, risk.NearbyHazards[1].Hazard.ID)
	assert.InDelta(t, 65.8, risk.NearbyHazards[1].DistanceMeters, 0.5)
}

func TestAssessLocation_NearbyButOutside(t *testing.T) {
	h := hazard(37.5700, 126.9780, 100, 0.9)

	risk := AssessLocation(seoulCityHall, []models.HazardZone{h}, 500)

	assert.Zero(t, risk.Probability)
	assert.Equal(t, string(RiskVeryLow), risk.RiskLevel)
	require.Len(t, risk.NearbyHazards, 1)
	assert.False(t, risk.NearbyHazards[0].Inside)

	tight := AssessLocation(seoulCityHall, []models.HazardZone{h}, 0)
	assert.Empty(t, tight.NearbyHazards)
}

func TestAssessLocation_NoHazards(t *testing.T) {
	risk := AssessLocation(gangnamStation, nil, 500)

	assert.Equal(t, gangnamStation, risk.Location)
	assert.Zero(t, risk.Probability)
	assert.NotNil(t, risk.NearbyHazards)
	assert.Empty(t, risk.NearbyHazards)
}
