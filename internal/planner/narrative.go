package planner

import (
	"fmt"
	"strings"

	"github.com/shenikar/sinkhole_navigator/internal/models"
)

const (
	hazardReason = "sinkhole risk area"

	warnCalculationFailed = "Route calculation failed; showing direct route."
	warnAvoidanceDisabled = "Hazard avoidance was not requested; showing direct route without safety analysis."
)

func hazardWarning(h models.HazardZone) string {
	return fmt.Sprintf("Detouring around %s (risk %.0f%%)", hazardReason, h.RiskScore*100)
}

// Summary формирует короткое описание плана для людей
func Summary(plan models.RoutePlan) string {
	var b strings.Builder
	switch plan.Outcome {
	case models.OutcomeDegraded:
		b.WriteString("Direct route (fallback)")
	case models.OutcomeDirect:
		b.WriteString("Direct route")
	default:
		b.WriteString("Safe route")
	}

	fmt.Fprintf(&b, ": %.1f km", plan.DistanceMeters/1000)
	if plan.DurationSeconds > 0 {
		fmt.Fprintf(&b, ", about %d min", (plan.DurationSeconds+59)/60)
	}

	switch n := len(plan.AvoidedHazards); n {
	case 0:
	case 1:
		b.WriteString(", 1 risk area avoided")
	default:
		fmt.Fprintf(&b, ", %d risk areas avoided", n)
	}
	return b.String()
}
