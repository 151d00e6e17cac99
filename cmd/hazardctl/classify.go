package main

import (
	"fmt"
	"strconv"

	"github.com/shenikar/sinkhole_navigator/internal/planner"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <probability>",
		Short: "Print the risk level and map color for a probability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probability, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid probability %q: %w", args[0], err)
			}
			class := planner.ClassifyRisk(probability)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", class.Band, class.Color, class.Label)
			return nil
		},
	}
}
