package cmd

import (
	"context"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/internal/constants"
	"github.com/organicstore/storefront/internal/store"
	"github.com/organicstore/storefront/user/internal/controller"
	"github.com/organicstore/storefront/user/internal/service"
)

// AttachUserService mounts the account routes and starts the session watcher,
// which logs every observed login state transition until the context ends.
func AttachUserService(c context.Context, router *mux.Router, kv store.KV, pollInterval time.Duration) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "AttachUserService").
		Str(constants.KEY_PROCESS, "initializing user service").
		Logger()

	logger.Info().Msg("initializing user service")
	userService := service.NewUserService(kv)
	controller.AttachUserController(router, userService)
	logger.Info().Msg("initialized user service")

	logger = logger.With().Str(constants.KEY_PROCESS, "initializing session watcher").Logger()
	logger.Info().Msg("initializing session watcher")
	watcher := service.NewSessionWatcher(userService, pollInterval)
	go func() {
		for event := range watcher.Watch(c) {
			logger.Info().
				Bool("logged_in", event.LoggedIn).
				Str(constants.KEY_USER_ID, event.User.ID.String()).
				Msg("observed session state")
		}
	}()
	logger.Info().Msg("initialized session watcher")
}
