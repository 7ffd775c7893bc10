package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "filemap",
	Short: "Look up values in flat key-value files",
	Long:  "filemap parses a flat file of key-value pairs with configurable separators and lets you query, serve or snapshot the result",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyEnvDefaults(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// a missing .env is fine, the flags and real environment still apply
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("pair-sep", `\n`, `pair separator, Go escapes like \n or \t are decoded (a literal \ must be written \\)`)
	rootCmd.PersistentFlags().String("kv-sep", "=", `key-value separator, Go escapes like \n or \t are decoded (a literal \ must be written \\)`)
	rootCmd.PersistentFlags().Bool("raw-sep", false, "use --pair-sep and --kv-sep exactly as given, without decoding escapes")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on duplicate keys instead of keeping the last one")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(migrateCmd)
}
