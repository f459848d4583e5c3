package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/contact/internal/controller"
	"github.com/organicstore/storefront/contact/internal/service"
	"github.com/organicstore/storefront/internal/config"
	"github.com/organicstore/storefront/internal/constants"
)

// AttachContactService mounts the contact route on the router.
func AttachContactService(c context.Context, router *mux.Router, cfg config.Contact) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "AttachContactService").
		Str(constants.KEY_PROCESS, "initializing contact service").
		Logger()

	logger.Info().Msg("initializing contact service")
	contactService := service.NewContactService(cfg)
	controller.AttachContactController(router, contactService)
	logger.Info().Msg("initialized contact service")
}
