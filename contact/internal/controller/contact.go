package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/contact/internal/otel"
	"github.com/organicstore/storefront/contact/internal/service"
	"github.com/organicstore/storefront/contact/pkg/request"
	"github.com/organicstore/storefront/internal/constants"
	commonHttp "github.com/organicstore/storefront/internal/http"
	inOtel "github.com/organicstore/storefront/internal/otel"
)

type ContactController struct {
	service *service.ContactService
}

func AttachContactController(router *mux.Router, svc *service.ContactService) {
	controller := ContactController{service: svc}
	router.HandleFunc("/contact", controller.Send).Methods(http.MethodPost)
}

func (t ContactController) Send(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ContactController Send")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "ContactController Send").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.Contact{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(constants.KEY_PROCESS, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(constants.KEY_PROCESS, "dispatching submission").Logger()
	logger.Info().Msg("dispatching submission")
	c = logger.WithContext(c)
	result := t.service.Send(c, reqBody)
	logger.Info().Msg("dispatched submission")

	message := "successfully sent message"
	if result.Simulated {
		message = "message accepted, delivery will be retried by the operator"
	}
	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusAccepted,
		"message":    message,
		"data": map[string]interface{}{
			"result": result,
		},
	})
}
