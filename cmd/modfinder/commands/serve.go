package commands

import (
	"log/slog"
	"modfinder/lib/serviceutil"
	"modfinder/lib/telemetry"
	"modfinder/services/modfinder"
	"time"

	"github.com/spf13/cobra"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "The port to listen on, defaults to serve.port of the config.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves queries over HTTP at GET /find?q=<query> and GET /vocab.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := cfg.Serve.Port
		if servePort > 0 {
			port = servePort
		}

		service, err := newService()
		if err != nil {
			return err
		}

		ctx, cancel := serviceutil.SignalContext(cmd.Context())
		defer cancel()

		telemetry.InstrumentPerfStats(ctx, time.Second*15)

		err = serviceutil.StartHttpServer(ctx, port, modfinder.NewHandler(service))
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "server stopped")
		return nil
	},
}
