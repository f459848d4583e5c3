package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/catalog/internal/otel"
	"github.com/organicstore/storefront/catalog/internal/service"
	"github.com/organicstore/storefront/internal/constants"
	commonHttp "github.com/organicstore/storefront/internal/http"
)

type CatalogController struct {
	service *service.CatalogService
}

func AttachCatalogController(router *mux.Router, svc *service.CatalogService) {
	controller := CatalogController{service: svc}

	sub := router.PathPrefix("/products").Subrouter()
	sub.HandleFunc("", controller.FindProducts).Methods(http.MethodGet)
	sub.HandleFunc("/refresh", controller.RefreshProducts).Methods(http.MethodPost)
}

func (t CatalogController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogController FindProducts").
		Str(constants.KEY_PROCESS, "finding products").
		Logger()

	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	products := t.service.Products(c)
	logger = logger.With().Int(constants.KEY_PRODUCT_COUNT, len(products)).Logger()
	logger.Info().Msgf("found %d products", len(products))

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully found products",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}

func (t CatalogController) RefreshProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController RefreshProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogController RefreshProducts").
		Str(constants.KEY_PROCESS, "refreshing products").
		Logger()

	logger.Info().Msg("refreshing products")
	c = logger.WithContext(c)
	products := t.service.Refresh(c)
	logger = logger.With().Int(constants.KEY_PRODUCT_COUNT, len(products)).Logger()
	logger.Info().Msgf("refreshed catalog with %d products", len(products))

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully refreshed products",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}
