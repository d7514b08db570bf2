package commands

import (
	"context"
	"fmt"
	"log/slog"
	"modfinder/lib/configutil"
	"modfinder/lib/restyutil"
	"modfinder/lib/scrapers/swgohgg"
	"modfinder/lib/serviceutil"
	"modfinder/lib/telemetry"
	"modfinder/services/modfinder"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	cfg = DefaultConfig()
	tel telemetry.Telemetry
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and dump HTTP exchanges to .dev/resty.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "The configuration file to read.")
}

var rootCmd = &cobra.Command{
	Use:   "modfinder",
	Short: "modfinder finds the characters that use a mod set, shape and primary stat according to the swgoh.gg mod meta report.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		loaded, err := configutil.ReadConfig(configPath, DefaultConfig())
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		cfg = loaded

		tel, err = telemetry.Setup(cmd.Context(), "modfinder", cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}

		if verbose {
			out, err := restyutil.NewFilesystemOutput(".dev/resty/swgohgg")
			if err != nil {
				return err
			}
			swgohgg.SetRestyInstrumentOutput(out)
			slog.DebugContext(cmd.Context(), "verbose logging enabled")
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return tel.Shutdown(context.Background())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func newService() (modfinder.Service, error) {
	client, err := swgohgg.NewClient(cfg.Source)
	if err != nil {
		return modfinder.Service{}, fmt.Errorf("create report client: %w", err)
	}
	return modfinder.NewService(client), nil
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		serviceutil.Fatal("command failed", err)
	}
}
