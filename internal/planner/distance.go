package planner

import (
	"math"

	"github.com/shenikar/sinkhole_navigator/internal/models"
)

// EarthRadiusMeters - средний радиус Земли, используемый формулой гаверсинуса
const EarthRadiusMeters = 6371000.0

// DistanceFunc вычисляет расстояние между двумя точками в метрах
type DistanceFunc func(a, b models.Coordinate) float64

// GreatCircleDistanceMeters возвращает расстояние по дуге большого круга (формула гаверсинуса).
// Функция симметрична и возвращает 0 для совпадающих точек.
func GreatCircleDistanceMeters(a, b models.Coordinate) float64 {
	return centralAngle(a, b) * EarthRadiusMeters
}

// DistanceToSegmentMeters возвращает кратчайшее расстояние от точки p до дуги a→b
func DistanceToSegmentMeters(p, a, b models.Coordinate) float64 {
	segment := centralAngle(a, b)
	if segment == 0 {
		return GreatCircleDistanceMeters(p, a)
	}

	toPoint := centralAngle(a, p)
	delta := initialBearing(a, p) - initialBearing(a, b)
	// точка "позади" начала отрезка
	if math.Cos(delta) <= 0 {
		return toPoint * EarthRadiusMeters
	}

	crossTrack := math.Asin(clamp(math.Sin(toPoint)*math.Sin(delta), -1, 1))
	alongTrack := math.Acos(clamp(math.Cos(toPoint)/math.Cos(crossTrack), -1, 1))
	if alongTrack >= segment {
		return GreatCircleDistanceMeters(p, b)
	}
	return math.Abs(crossTrack) * EarthRadiusMeters
}

// PathLengthMeters суммирует длины последовательных отрезков пути
func PathLengthMeters(path []models.Coordinate, distance DistanceFunc) float64 {
	if distance == nil {
		distance = GreatCircleDistanceMeters
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += distance(path[i-1], path[i])
	}
	return total
}

func centralAngle(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	h = clamp(h, 0, 1)
	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func initialBearing(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return math.Atan2(y, x)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
