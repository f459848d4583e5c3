package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
		Help: "Cart commands applied, by operation.",
	}, []string{"op"})

	FeedFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_feed_fallback_total",
		Help: "Feed loads that degraded to the built-in sample catalog.",
	})

	FeedProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_feed_products",
		Help: "Products in the currently loaded catalog.",
	})

	ContactDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_contact_dispatch_total",
		Help: "Contact messages handed off to the webhook, by result.",
	}, []string{"result"})
)
