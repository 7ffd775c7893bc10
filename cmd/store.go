package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/filemap-go/filemap/store"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func openStore(cmd *cobra.Command) (*gorm.DB, error) {
	dsn, err := cmd.Flags().GetString("dsn")
	if err != nil {
		return nil, err
	}

	return store.Open(dsn)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Creates the snapshot table",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore(cmd)
		if err != nil {
			return err
		}

		if err := store.Migrate(cmd.Context(), db); err != nil {
			return err
		}

		log.Info("snapshot table is up to date")
		return nil
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot FILE",
	Short: "Stores the entries of FILE in the database, replacing the previous snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(cmd, args[0])
		if err != nil {
			return err
		}

		db, err := openStore(cmd)
		if err != nil {
			return err
		}

		if err := store.Snapshot(cmd.Context(), db, m); err != nil {
			return err
		}

		log.Infof("stored %d entries of %s", m.Len(), m.Path())
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore SOURCE",
	Short: "Prints the entries stored for SOURCE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore(cmd)
		if err != nil {
			return err
		}

		entries, err := store.Restore(cmd.Context(), db, args[0])
		if err != nil {
			return err
		}

		kvSep, err := separatorFlag(cmd, "kv-sep")
		if err != nil {
			return err
		}

		for _, k := range slices.Sorted(maps.Keys(entries)) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s\n", k, kvSep, entries[k])
		}

		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{migrateCmd, snapshotCmd, restoreCmd} {
		c.Flags().String("dsn", "", "postgres DSN, defaults to one built from the DB_* environment variables")
	}
}
