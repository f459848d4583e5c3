package cmd

import (
	"context"

	"github.com/rs/zerolog"

	catalogCmd "github.com/organicstore/storefront/catalog/cmd"
	"github.com/organicstore/storefront/internal/config"
	"github.com/organicstore/storefront/internal/constants"
)

// RunFetchFeed pulls the spreadsheet feed once and logs the resulting
// catalog, falling back to the built-in products when the feed fails.
func RunFetchFeed(c context.Context) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_APP_NAME, constants.APP_STOREFRONT_SERVICE).
		Str(constants.KEY_TAG, "main RunFetchFeed").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "init config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, constants.APP_STOREFRONT_SERVICE)
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(constants.KEY_PROCESS, "fetching feed").Logger()
	logger.Info().Str(constants.KEY_FEED_URL, cfg.Feed.SheetURL).Msg("fetching feed")
	c = logger.WithContext(c)
	products := catalogCmd.FetchFeedOnce(c, cfg.Feed)
	logger.Info().Int(constants.KEY_PRODUCT_COUNT, len(products)).Msg("fetched feed")

	for _, product := range products {
		logger.Info().Object("product", product).Msg(product.Name)
	}
}
