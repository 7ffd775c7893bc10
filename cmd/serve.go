package cmd

import (
	"github.com/filemap-go/filemap/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve FILE",
	Short: "Serves read-only lookups for FILE over HTTP",
	Long:  "Builds FILE once and serves it over HTTP until interrupted. Restart the server to pick up changes to FILE.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(cmd, args[0])
		if err != nil {
			return err
		}

		opts := []server.ConfigOption{}
		if cmd.Flags().Changed("port") {
			port, err := cmd.Flags().GetInt("port")
			if err != nil {
				return err
			}
			opts = append(opts, server.WithPort(port))
		}

		local, err := cmd.Flags().GetBool("local")
		if err != nil {
			return err
		}
		if local {
			opts = append(opts, server.AsLocal())
		}

		logging, err := cmd.Flags().GetBool("log")
		if err != nil {
			return err
		}
		if logging {
			opts = append(opts, server.WithLogging())
		}

		compress, err := cmd.Flags().GetBool("compress")
		if err != nil {
			return err
		}
		if compress {
			opts = append(opts, server.WithCompress())
		}

		server.New(m, opts...).Start()
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 3000, "port to listen on, defaults to $PORT or 3000")
	serveCmd.Flags().Bool("local", false, "listen on localhost only")
	serveCmd.Flags().Bool("log", false, "log every request")
	serveCmd.Flags().Bool("compress", false, "compress responses")
}
