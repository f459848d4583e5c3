package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/cart/internal/controller"
	"github.com/organicstore/storefront/cart/internal/service"
	"github.com/organicstore/storefront/internal/constants"
	"github.com/organicstore/storefront/internal/store"
)

// AttachCartService restores the persisted cart from the store and mounts
// the cart routes on the router.
func AttachCartService(c context.Context, router *mux.Router, kv store.KV, phoneNumber string) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "AttachCartService").
		Str(constants.KEY_PROCESS, "initializing cart service").
		Logger()

	logger.Info().Msg("initializing cart service")
	c = logger.WithContext(c)
	cartService := service.NewCartService(c, kv, phoneNumber)
	controller.AttachCartController(router, cartService)
	logger.Info().Msg("initialized cart service")
}
