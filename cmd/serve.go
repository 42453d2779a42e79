package cmd

import (
	"database/sql"
	"fmt"

	"github.com/banachtech/patent-valuation/api"
	db "github.com/banachtech/patent-valuation/db/sqlc"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP valuation service",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}

		conn, err := sql.Open(config.DBDriver, config.DBSource)
		if err != nil {
			return fmt.Errorf("cannot connect to db: %w", err)
		}
		defer conn.Close()

		if err := conn.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("cannot reach db: %w", err)
		}

		store := db.NewStore(conn)
		server := api.NewServer(config, store, logger)

		logger.WithField("address", config.ServerAddress).Info("starting server")
		if err := server.Start(config.ServerAddress); err != nil {
			return fmt.Errorf("cannot start server: %w", err)
		}
		return nil
	},
}
