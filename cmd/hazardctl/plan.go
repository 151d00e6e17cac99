package main

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/sinkhole_navigator/internal/geo"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/shenikar/sinkhole_navigator/internal/planner"
	"github.com/spf13/cobra"
)

type planOptions struct {
	hazardsPath string
	from        string
	to          string
	direct      bool
	geoJSON     bool
	speed       float64
	proximity   string
}

// planOutput - результат команды plan
type planOutput struct {
	Plan    models.RoutePlan `json:"plan"`
	Summary string           `json:"summary"`
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a route against a YAML hazard file",
		Example: "  hazardctl plan --hazards examples/hazards.yaml --from 37.5665,126.9780 --to 37.5400,127.0000\n" +
			"  hazardctl plan --hazards examples/hazards.yaml --from 37.5665,126.9780 --to 37.4979,127.0276 --geojson",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.hazardsPath, "hazards", "", "YAML file with hazard zones")
	cmd.Flags().StringVar(&opts.from, "from", "", "start coordinate as lat,lng")
	cmd.Flags().StringVar(&opts.to, "to", "", "end coordinate as lat,lng")
	cmd.Flags().BoolVar(&opts.direct, "direct", false, "skip hazard avoidance")
	cmd.Flags().BoolVar(&opts.geoJSON, "geojson", false, "print the route as a GeoJSON FeatureCollection")
	cmd.Flags().Float64Var(&opts.speed, "speed", planner.DefaultWalkingSpeed, "walking speed in meters per minute")
	cmd.Flags().StringVar(&opts.proximity, "proximity", string(planner.ProximitySegment), "proximity rule: segment|endpoints")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runPlan(cmd *cobra.Command, opts *planOptions) error {
	start, err := parseCoordinate(opts.from)
	if err != nil {
		return err
	}
	end, err := parseCoordinate(opts.to)
	if err != nil {
		return err
	}

	proximity := planner.ProximityMode(opts.proximity)
	if proximity != planner.ProximitySegment && proximity != planner.ProximityEndpoints {
		return fmt.Errorf("unknown proximity rule %q", opts.proximity)
	}

	var hazards []models.HazardZone
	if opts.hazardsPath != "" {
		loaded, err := loadHazards(opts.hazardsPath)
		if err != nil {
			return err
		}
		hazards = activeOnly(loaded)
	}

	p := planner.New(cmdLogger(cmd), planner.Options{
		WalkingSpeedMetersPerMinute: opts.speed,
		Proximity:                   proximity,
	})
	plan := p.PlanRoute(start, end, !opts.direct, hazards)

	var out any = planOutput{Plan: plan, Summary: planner.Summary(plan)}
	if opts.geoJSON {
		out = geo.RouteFeatureCollection(plan)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
