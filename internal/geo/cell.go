package geo

import (
	"fmt"

	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/uber/h3-go/v4"
)

const (
	// CellResolution - разрешение H3 для кэширования зон рядом с точкой (ребро ~174 м)
	CellResolution = 9
	// CellPaddingMeters покрывает расстояние от центра ячейки до любой её точки
	CellPaddingMeters = 350.0
)

// Cell возвращает идентификатор ячейки H3 и её центр
func Cell(c models.Coordinate) (string, models.Coordinate, error) {
	cell, err := h3.LatLngToCell(h3.NewLatLng(c.Latitude, c.Longitude), CellResolution)
	if err != nil {
		return "", models.Coordinate{}, fmt.Errorf("geo: h3 cell for %v: %w", c, err)
	}
	centroid, err := h3.CellToLatLng(cell)
	if err != nil {
		return "", models.Coordinate{}, fmt.Errorf("geo: h3 centroid for %s: %w", cell, err)
	}
	return cell.String(), models.Coordinate{Latitude: centroid.Lat, Longitude: centroid.Lng}, nil
}
