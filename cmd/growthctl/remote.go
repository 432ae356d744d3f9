package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"infant-growth/internal/adapters/growthapi"

	"github.com/spf13/cobra"
)

func defaultServer() string {
	if v := os.Getenv("GROWTH_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

// newRemoteCmds agrupa los comandos que hablan con un servidor en marcha.
func newRemoteCmds(opts *rootOptions) []*cobra.Command {
	server := defaultServer()
	client := func() (*growthapi.Client, error) { return growthapi.New(server, nil) }

	status := &cobra.Command{
		Use:   "status [weight|height]",
		Short: "Valor actual y percentil (sin argumento: resumen de ambas)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				sum, err := c.Summary(cmd.Context())
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(w, sum)
				}
				fmt.Fprintf(w, "age: %d months\n", sum.AgeMonths)
				printStatus(w, sum.Weight)
				printStatus(w, sum.Height)
				return nil
			}

			st, err := c.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(w, st)
			}
			printStatus(w, st)
			return nil
		},
	}

	var date, id string
	add := &cobra.Command{
		Use:   "add <weight|height> <value>",
		Short: "Registra una medición en el servidor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[1])
			}
			c, err := client()
			if err != nil {
				return err
			}
			rec, err := c.Add(cmd.Context(), args[0], id, date, value)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s %s %.2f %s (id %s)\n", rec.Metric, rec.Date, rec.Value, rec.Unit, rec.ID)
			return nil
		},
	}
	add.Flags().StringVar(&date, "date", "", "fecha YYYY-MM-DD")
	add.Flags().StringVar(&id, "id", "", "id opcional (default: lo genera el servidor)")
	_ = add.MarkFlagRequired("date")

	for _, c := range []*cobra.Command{status, add} {
		c.Flags().StringVar(&server, "server", server, "URL del API (o GROWTH_API_URL)")
	}
	return []*cobra.Command{status, add}
}

func printStatus(w io.Writer, st growthapi.Status) {
	src := st.Date
	if st.FromBirth {
		src += " (birth)"
	}
	fmt.Fprintf(w, "%s: %.2f %s on %s, %d months: %s (%s, %s)\n",
		st.Metric, st.Value, st.Unit, src, st.AgeMonths, st.Band, st.ShortLabel, st.Severity)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
