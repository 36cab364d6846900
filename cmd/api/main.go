package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title			Storefront API
// @version		1.0
// @description	CRUD service for items and users backed by in-memory storage.
// @contact.name	API Support
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:3000
// @BasePath		/api
// @schemes		http https
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront items and users API",
	Long:          "Storefront serves CRUD endpoints for items and users. Without a sub-command it runs the HTTP server.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
}
