package main

import (
	"fmt"
	"os"

	"Recetas-Backend/cmd/config"
	migration "Recetas-Backend/cmd/database/migrate"
	"Recetas-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "recetas",
		Short: "Recipe management backend",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.LoadConfig(configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(true)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML configuration file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrate, _ := cmd.Flags().GetBool("migrate")
			return serve(migrate)
		},
	}
	serveCmd.Flags().Bool("migrate", true, "synchronize the schema before serving")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Synchronize the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			return migration.Migrate(db)
		},
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(migrate bool) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if migrate {
		if err := migration.Migrate(db); err != nil {
			return err
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}

	port := utils.GetConfig("PORT")
	log.Infof("server listening on port %s", port)
	return app.Listen(":" + port)
}
