// @title Cat Collector API
// @version 1.0
// @description Gatos, feedings, juguetes y fotos por usuario.
// @BasePath /
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cat-collector",
	Short: "API de gatos, feedings, juguetes y fotos",
	// Sin subcomando => serve.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), serveOpts)
	},
	SilenceUsage: true,
}

func init() {
	bindServeFlags(rootCmd)
	bindServeFlags(serveCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
