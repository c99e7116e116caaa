package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(c *cli) *cobra.Command {
	var (
		inputs []string
		codes  []string
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count violations, optionally only those with the given codes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.load(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			if selected := c.codes(cmd, codes); len(selected) > 0 {
				list = list.FindByCodes(selected...)
			}
			_, _ = fmt.Fprintf(c.out, "%d\n", list.Len())
			return nil
		},
	}

	addInputFlag(cmd, &inputs)
	cmd.Flags().StringArrayVar(&codes, "code", nil, "Only count violations with this code (repeatable; defaults to config codes)")
	return cmd
}
