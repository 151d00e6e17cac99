package geo

import (
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// RouteFeatureCollection представляет план маршрута как GeoJSON: линия маршрута,
// точки маршрута и центры обходимых зон риска.
func RouteFeatureCollection(plan models.RoutePlan) *geojson.FeatureCollection {
	path := make([]models.Coordinate, len(plan.Waypoints))
	for i, w := range plan.Waypoints {
		path[i] = w.Coordinate
	}

	features := make([]*geojson.Feature, 0, 1+len(plan.Waypoints)+len(plan.AvoidedHazards))
	features = append(features, &geojson.Feature{
		ID:       "route",
		Geometry: LineString(path),
		Properties: map[string]interface{}{
			"kind":       "route",
			"route_type": plan.RouteType,
			"outcome":    plan.Outcome,
			"distance":   plan.DistanceMeters,
			"duration":   plan.DurationSeconds,
			"warnings":   plan.Warnings,
		},
	})

	for _, w := range plan.Waypoints {
		features = append(features, &geojson.Feature{
			Geometry: point(w.Coordinate),
			Properties: map[string]interface{}{
				"kind": "waypoint",
				"type": w.Role,
			},
		})
	}

	for _, a := range plan.AvoidedHazards {
		features = append(features, &geojson.Feature{
			ID:       a.Hazard.ID.String(),
			Geometry: point(a.Hazard.Center()),
			Properties: map[string]interface{}{
				"kind":          "hazard",
				"name":          a.Hazard.Name,
				"radius_meters": a.Hazard.RadiusMeters,
				"risk_score":    a.Hazard.RiskScore,
				"reason":        a.Reason,
			},
		})
	}

	return &geojson.FeatureCollection{Features: features}
}

func point(c models.Coordinate) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude})
}
