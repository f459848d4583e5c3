package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/catalog/internal/controller"
	"github.com/organicstore/storefront/catalog/internal/service"
	"github.com/organicstore/storefront/catalog/pkg/response"
	"github.com/organicstore/storefront/internal/config"
	"github.com/organicstore/storefront/internal/constants"
)

// AttachCatalogService mounts the product routes on the router.
func AttachCatalogService(c context.Context, router *mux.Router, cfg config.Feed) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "AttachCatalogService").
		Str(constants.KEY_PROCESS, "initializing catalog service").
		Logger()

	logger.Info().Msg("initializing catalog service")
	catalogService := service.NewCatalogService(cfg)
	controller.AttachCatalogController(router, catalogService)
	logger.Info().Msg("initialized catalog service")
}

// FetchFeedOnce pulls the spreadsheet feed a single time and returns the
// resulting catalog, falling back to the built-in products when the feed
// cannot be loaded.
func FetchFeedOnce(c context.Context, cfg config.Feed) []response.Product {
	return service.NewCatalogService(cfg).Refresh(c)
}
