package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"camp-signup/cmd/server"
	"camp-signup/config"
	"camp-signup/internal/global/database"
	"camp-signup/internal/global/logger"
	"camp-signup/internal/seed"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "camp-signup",
	Short: "Summer camp sign-up API",
	RunE:  serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the camper, activity and signup tables",
	Run: func(cmd *cobra.Command, args []string) {
		config.Init()
		database.Init()
		logger.New("Migrate").Info("migration finished", "driver", string(config.Get().Database.Driver))
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with a sample set of campers, activities and signups",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Init()
		database.Init()
		return seed.Run(cmd.Context(), database.DB, logger.New("Seed"))
	},
}

func serve(cmd *cobra.Command, args []string) error {
	server.Init()
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
