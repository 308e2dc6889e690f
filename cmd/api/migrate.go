package main

import (
	"github.com/spf13/cobra"

	"seismic-catalog/internal/infrastructure/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
			if err != nil {
				return err
			}
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			return db.Migrate(cmd.Context(), sqlDB, command, log)
		},
	}
}
