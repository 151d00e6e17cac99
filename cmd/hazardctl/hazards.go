package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shenikar/sinkhole_navigator/internal/models"
	"gopkg.in/yaml.v3"
)

// hazardFile - формат YAML-файла с зонами риска
type hazardFile struct {
	Hazards []models.HazardZone `yaml:"hazards"`
}

// loadHazards читает и проверяет зоны риска из YAML-файла.
// Зоны без статуса считаются активными.
func loadHazards(path string) ([]models.HazardZone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hazard file: %w", err)
	}
	return parseHazards(data)
}

func parseHazards(data []byte) ([]models.HazardZone, error) {
	var file hazardFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse hazard file: %w", err)
	}

	for i := range file.Hazards {
		h := &file.Hazards[i]
		if h.Status == "" {
			h.Status = models.HazardStatusActive
		}
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("hazard #%d (%s): %w", i+1, h.Name, err)
		}
	}
	return file.Hazards, nil
}

// activeOnly оставляет только активные зоны
func activeOnly(hazards []models.HazardZone) []models.HazardZone {
	out := make([]models.HazardZone, 0, len(hazards))
	for _, h := range hazards {
		if h.Status == models.HazardStatusActive {
			out = append(out, h)
		}
	}
	return out
}

// parseCoordinate разбирает строку вида "lat,lng"
func parseCoordinate(raw string) (models.Coordinate, error) {
	latRaw, lngRaw, found := strings.Cut(raw, ",")
	if !found {
		return models.Coordinate{}, fmt.Errorf("coordinate %q must look like lat,lng", raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid latitude in %q: %w", raw, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid longitude in %q: %w", raw, err)
	}

	c := models.Coordinate{Latitude: lat, Longitude: lng}
	if err := c.Validate(); err != nil {
		return models.Coordinate{}, err
	}
	return c, nil
}
