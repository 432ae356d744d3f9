package main

import (
	"fmt"
	"strconv"
	"time"

	"infant-growth/internal/domain/growth"

	"github.com/spf13/cobra"
)

type classifyOutput struct {
	Metric     growth.Metric      `json:"metric"`
	Value      float64            `json:"value"`
	Unit       string             `json:"unit"`
	AgeMonths  int                `json:"age_months"`
	Row        growth.StandardRow `json:"reference_row"`
	Band       growth.Band        `json:"band"`
	ShortLabel string             `json:"short_label"`
	Severity   growth.Severity    `json:"severity"`
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var dob, measured string

	cmd := &cobra.Command{
		Use:   "classify <weight|height> <value>",
		Short: "Clasifica una medición",
		Long: `Clasifica una medición contra la tabla de referencia.

La edad se calcula en meses cumplidos entre --dob y --date (hoy si se omite).
Una fecha anterior al nacimiento se clasifica con edad 0.

Ejemplo:
  growthctl classify weight 7.8 --dob 2024-03-17 --date 2025-01-17`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := growth.ParseMetric(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", growth.ErrInvalidValue, args[1])
			}
			if err := growth.ValidateValue(value); err != nil {
				return err
			}

			birth, err := growth.ParseDate(dob)
			if err != nil {
				return fmt.Errorf("--dob: %w", err)
			}
			at := growth.DateOf(time.Now())
			if measured != "" {
				if at, err = growth.ParseDate(measured); err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}

			tbl, err := opts.table()
			if err != nil {
				return err
			}
			c, err := growth.Classify(tbl, birth, at, value, m)
			if err != nil {
				return err
			}

			out := classifyOutput{
				Metric:     m,
				Value:      value,
				Unit:       m.Unit(),
				AgeMonths:  c.AgeMonths,
				Row:        c.Row,
				Band:       c.Band,
				ShortLabel: c.Band.ShortLabel(),
				Severity:   c.Band.Severity(),
			}

			w := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(w, out)
			}
			fmt.Fprintf(w, "%s %.2f %s at %d months: %s (%s, %s)\n",
				out.Metric, out.Value, out.Unit, out.AgeMonths, out.Band, out.ShortLabel, out.Severity)
			fmt.Fprintf(w, "reference month %d: P3=%.1f P15=%.1f P50=%.1f P85=%.1f P97=%.1f\n",
				c.Row.AgeMonths, c.Row.P3, c.Row.P15, c.Row.P50, c.Row.P85, c.Row.P97)
			return nil
		},
	}

	cmd.Flags().StringVar(&dob, "dob", "", "fecha de nacimiento YYYY-MM-DD")
	cmd.Flags().StringVar(&measured, "date", "", "fecha de la medición YYYY-MM-DD (default: hoy)")
	_ = cmd.MarkFlagRequired("dob")
	return cmd
}
