package cmd

import (
	"fmt"

	"github.com/filemap-go/filemap"
	"github.com/filemap-go/filemap/common"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Prints the version of filemap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "v%s\n", common.VERSION)
	},
}

var getCmd = &cobra.Command{
	Use:   "get FILE KEY",
	Short: "Prints the value of KEY",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(cmd, args[0])
		if err != nil {
			return err
		}

		v, ok := m.Get(args[1])
		if !ok {
			return fmt.Errorf("key %q not found in %s", args[1], args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Prints all entries sorted by key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(cmd, args[0])
		if err != nil {
			return err
		}

		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(cmd, m)
		}

		for k, v := range m.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s\n", k, m.KeyValueSeparator(), v)
		}

		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys FILE",
	Short: "Prints all keys sorted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(cmd, args[0])
		if err != nil {
			return err
		}

		for _, k := range m.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}

		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Checks that FILE parses and reports the number of entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(cmd, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries\n", args[0], m.Len())
		return nil
	},
}

func writeJSON(cmd *cobra.Command, m *filemap.Map) error {
	data, err := json.MarshalIndent(m.Entries(), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func init() {
	dumpCmd.Flags().Bool("json", false, "print the entries as a JSON object")
}
