// Command bookstore is the entry point for the bookstore API: an HTTP server
// plus operational subcommands for migrations, seeding, and route inspection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bookstore/app/routes"
	"github.com/shashiranjanraj/bookstore/config"
	_ "github.com/shashiranjanraj/bookstore/database/migrations"
	"github.com/shashiranjanraj/bookstore/database/seeders"
	"github.com/shashiranjanraj/bookstore/internal/server"
	"github.com/shashiranjanraj/bookstore/pkg/cache"
	"github.com/shashiranjanraj/bookstore/pkg/database"
	"github.com/shashiranjanraj/bookstore/pkg/logger"
	"github.com/shashiranjanraj/bookstore/pkg/migration"
)

func main() {
	root := &cobra.Command{
		Use:           "bookstore",
		Short:         "Bookstore e-commerce REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		rollbackCmd(),
		statusCmd(),
		seedCmd(),
		routeListCmd(),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func connect() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed, and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}

			// Cache is best-effort: a dead Redis only disables the catalog cache.
			if err := cache.Connect(); err != nil {
				logger.Warn("redis unavailable, caching disabled", "error", err)
			}

			if err := migration.New(database.DB).Run(); err != nil {
				return err
			}
			if err := seeders.Run(database.DB); err != nil {
				return err
			}

			r := routes.Register(database.DB)
			return server.Run(r.Handler())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}
			return migration.New(database.DB).Run()
		},
	}
}

func rollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the most recent migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}
			return migration.New(database.DB).Rollback()
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show the run state of every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}
			return migration.New(database.DB).Status()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the starter catalog and bootstrap accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}
			return seeders.Run(database.DB)
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print every named route",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}

			r := routes.Register(database.DB)
			for _, route := range r.Routes() {
				fmt.Printf("%-7s %-45s %s\n", route.Method, route.Path, route.Name)
			}
			return nil
		},
	}
}
