package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowline/internal/pipeline"
)

// newOutputsCommand lists every declared output per step. Listing never
// fails on selection misconfiguration; it is the tool for diagnosing one.
func newOutputsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "outputs",
		Short:       "List every optional output each step declares",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := pipeline.BuildRegistry(builtinSteps())
			if err != nil {
				return err
			}

			var rows [][]string
			for _, stepID := range registry.StepIDs() {
				for _, decl := range registry.DeclarationsFor(stepID) {
					rows = append(rows, []string{
						stepID,
						decl.Name,
						yesNo(decl.EnabledByDefault),
						decl.Description,
					})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Step", "Output", "Default", "Description"}, rows))
			return nil
		},
	}
}
