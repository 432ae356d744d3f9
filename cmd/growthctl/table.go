package main

import (
	"fmt"
	"text/tabwriter"

	"infant-growth/internal/domain/growth"

	"github.com/spf13/cobra"
)

func newTableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table <weight|height>",
		Short: "Muestra las filas de referencia de una métrica",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := growth.ParseMetric(args[0])
			if err != nil {
				return err
			}
			tbl, err := opts.table()
			if err != nil {
				return err
			}
			rows, err := tbl.RowsFor(m)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "MONTH\tP3\tP15\tP50\tP85\tP97\t(%s)\n", m.Unit())
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t\n", r.AgeMonths, r.P3, r.P15, r.P50, r.P85, r.P97)
			}
			return tw.Flush()
		},
	}
}
