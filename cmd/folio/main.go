package main

import (
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/ndelacroix/folio/internal/app"
	"github.com/ndelacroix/folio/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio and blog server",
	Long: `Folio serves a personal portfolio site (home, about, uses, articles)
from authored Markdown and YAML content, with a Redis rendered-page cache.
Run without a subcommand to start the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.New().Run()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.New().Run()
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static HTML",
	Long: `Loads the authored content, renders every page and writes the result
to the export directory (FOLIO_EXPORT_DIR, default "public"). The HTTP
server and Redis are not involved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Export()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("folio %s (commit=%s, built=%s, go=%s)\n",
			version.Version, version.Commit, version.BuildDate, version.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, buildCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ folio failed: %v", err)
	}
}
