package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(c *cli) *cobra.Command {
	var inputs []string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every violation of the given reports",
		Long:  "Loads the reports, merges them in the order given, and prints one entry per violation.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.load(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(c.out, list.String())
			return nil
		},
	}

	addInputFlag(cmd, &inputs)
	return cmd
}
