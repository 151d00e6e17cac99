package geo

import (
	"fmt"

	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

// SRID WGS84
const SRID = 4326

// LineString строит линию маршрута в порядке (lng, lat)
func LineString(path []models.Coordinate) *geom.LineString {
	flat := make([]float64, 0, 2*len(path))
	for _, c := range path {
		flat = append(flat, c.Longitude, c.Latitude)
	}
	return geom.NewLineStringFlat(geom.XY, flat).SetSRID(SRID)
}

// EncodePathEWKB кодирует путь в EWKB для колонки geometry(LineString, 4326).
// Путь короче двух точек не кодируется и возвращает nil.
func EncodePathEWKB(path []models.Coordinate) ([]byte, error) {
	if len(path) < 2 {
		return nil, nil
	}
	data, err := ewkb.Marshal(LineString(path), ewkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("geo: encode path EWKB: %w", err)
	}
	return data, nil
}

// DecodePathEWKB - обратное преобразование к EncodePathEWKB
func DecodePathEWKB(data []byte) ([]models.Coordinate, error) {
	if len(data) == 0 {
		return nil, nil
	}
	g, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("geo: decode path EWKB: %w", err)
	}
	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("geo: expected LineString, got %T", g)
	}

	path := make([]models.Coordinate, 0, ls.NumCoords())
	for i := 0; i < ls.NumCoords(); i++ {
		c := ls.Coord(i)
		path = append(path, models.Coordinate{Latitude: c.Y(), Longitude: c.X()})
	}
	return path, nil
}
