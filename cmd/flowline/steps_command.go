package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "steps",
		Short:       "List the pipeline steps in execution order",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, step := range builtinSteps() {
				rows = append(rows, []string{
					step.ID(),
					step.Description(),
					strconv.Itoa(len(step.Outputs())),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Description", "Outputs"}, rows, 3))
			return nil
		},
	}
}
