// Command growthctl clasifica mediciones y muestra la tabla de referencia sin
// levantar el servidor.
package main

import (
	"fmt"
	"os"
	"strings"

	"infant-growth/internal/domain/growth"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	standardsPath string
	asJSON        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "growthctl",
		Short:         "Clasificación de peso y talla por percentiles OMS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.standardsPath, "standards", os.Getenv("STANDARDS_PATH"), "YAML de referencia (default: tabla OMS embebida)")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "salida JSON")

	root.AddCommand(newClassifyCmd(opts))
	root.AddCommand(newTableCmd(opts))
	root.AddCommand(newRemoteCmds(opts)...)
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "growthctl v1.0.0")
		},
	})
	return root
}

func (o *rootOptions) table() (*growth.StandardTable, error) {
	if p := strings.TrimSpace(o.standardsPath); p != "" {
		return growth.LoadTable(p)
	}
	return growth.DefaultTable(), nil
}
