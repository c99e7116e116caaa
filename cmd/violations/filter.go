package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/violations/internal/report"
)

func newFilterCmd(c *cli) *cobra.Command {
	var (
		inputs []string
		codes  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep only violations whose code matches",
		Long: `Loads the reports and keeps the violations whose code exactly equals one of the given codes, in their original order.

A violation without a code never matches. Pass --code "" to select violations whose code is the empty string.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected := c.codes(cmd, codes)
			if len(selected) == 0 {
				return errors.New("no codes given: pass --code or set codes in the config file")
			}

			list, err := c.load(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			found := list.FindByCodes(selected...)
			c.log.Infow("Filtered violations", "codes", selected, "matched", found.Len(), "total", list.Len())

			if output == "" {
				_, _ = fmt.Fprint(c.out, found.String())
				return nil
			}

			doc, err := report.Write(output, found)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(c.out, "Wrote %d violation(s) to %s (report %s)\n", found.Len(), output, doc.ReportID)
			return nil
		},
	}

	addInputFlag(cmd, &inputs)
	cmd.Flags().StringArrayVar(&codes, "code", nil, "Code to keep (repeatable; defaults to config codes)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Write the result as a report to this path instead of printing it")
	return cmd
}
