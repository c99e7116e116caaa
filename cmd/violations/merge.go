package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/violations/internal/report"
)

func newMergeCmd(c *cli) *cobra.Command {
	var (
		inputs []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge reports into one",
		Long:  "Appends the violations of every report, in the order given, into a single report with a new report ID.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.load(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			doc, err := report.Write(output, list)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(c.out, "Wrote %d violation(s) to %s (report %s)\n", list.Len(), output, doc.ReportID)
			return nil
		},
	}

	addInputFlag(cmd, &inputs)
	cmd.Flags().StringVarP(&output, "out", "o", "", "Path to output report JSON file (required)")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	return cmd
}
