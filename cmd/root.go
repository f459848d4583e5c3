package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/organicstore/storefront/internal/constants"
	"github.com/organicstore/storefront/internal/log"
)

func Start() {
	logger := log.Get("/var/log/storefront.log", os.Getenv("STOREFRONT_ENV")).
		With().
		Str(constants.KEY_APP_NAME, constants.APP_MAIN_STOREFRONT).
		Str(constants.KEY_TAG, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "storefront"}
	commands := []*cobra.Command{
		{
			Use:   "server",
			Short: "Run the storefront service",
			Run: func(cmd *cobra.Command, args []string) {
				RunStorefrontService(cmd.Context())
			},
		},
		{
			Use:   "fetch",
			Short: "Fetch the product feed once and print the catalog",
			Run: func(cmd *cobra.Command, args []string) {
				RunFetchFeed(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
