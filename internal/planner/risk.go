package planner

import "math"

type RiskBand string

const (
	RiskVeryLow  RiskBand = "very_low"
	RiskLow      RiskBand = "low"
	RiskMedium   RiskBand = "medium"
	RiskHigh     RiskBand = "high"
	RiskVeryHigh RiskBand = "very_high"
)

// RiskClass - уровень риска и цвет для отображения на карте
type RiskClass struct {
	Band  RiskBand `json:"band"`
	Color string   `json:"color"`
	Label string   `json:"label"`
}

// Нижняя граница каждого уровня включительна, список упорядочен по убыванию.
var riskBands = []struct {
	lower float64
	class RiskClass
}{
	{0.8, RiskClass{Band: RiskVeryHigh, Color: "#FF0000", Label: "Very high"}},
	{0.6, RiskClass{Band: RiskHigh, Color: "#FF8000", Label: "High"}},
	{0.4, RiskClass{Band: RiskMedium, Color: "#FFFF00", Label: "Medium"}},
	{0.2, RiskClass{Band: RiskLow, Color: "#80FF00", Label: "Low"}},
}

var veryLow = RiskClass{Band: RiskVeryLow, Color: "#00FF00", Label: "Very low"}

// ClassifyRisk сопоставляет вероятность провала одному из пяти уровней риска.
// Значения вне [0,1] попадают в крайние уровни, NaN считается очень низким риском.
func ClassifyRisk(probability float64) RiskClass {
	if math.IsNaN(probability) {
		return veryLow
	}
	for _, b := range riskBands {
		if probability >= b.lower {
			return b.class
		}
	}
	return veryLow
}

// Rank возвращает порядковый номер уровня, 0 - очень низкий
func (b RiskBand) Rank() int {
	switch b {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskVeryHigh:
		return 4
	}
	return 0
}
