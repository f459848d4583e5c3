package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/organicstore/storefront/internal/constants"
)

var Tracer = otel.Tracer(constants.APP_STOREFRONT_SERVICE)
