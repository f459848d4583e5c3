package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/organicstore/storefront/cart/internal/engine"
	"github.com/organicstore/storefront/cart/internal/otel"
	"github.com/organicstore/storefront/catalog/pkg/response"
	"github.com/organicstore/storefront/internal/constants"
	"github.com/organicstore/storefront/internal/metric"
	inOtel "github.com/organicstore/storefront/internal/otel"
	"github.com/organicstore/storefront/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartService owns the cart state. Commands run under a mutex so each one is
// atomic against concurrent requests; every successful mutation re-saves the
// line items to the store under the fixed cart key.
type CartService struct {
	kv    store.KV
	phone string

	mu    sync.RWMutex
	state engine.State
}

// NewCartService restores the persisted cart once, at construction. A
// missing key or corrupt payload starts the cart empty instead of failing.
func NewCartService(c context.Context, kv store.KV, phoneNumber string) *CartService {
	c, span := otel.Tracer.Start(c, "NewCartService")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "NewCartService").
		Str(constants.KEY_STORAGE_KEY, store.KEY_CART).
		Logger()

	svc := &CartService{kv: kv, phone: phoneNumber, state: engine.NewState()}

	logger = logger.With().Str(constants.KEY_PROCESS, "loading cart from store").Logger()
	logger.Info().Msg("loading cart from store")
	raw, err := kv.Get(c, store.KEY_CART)
	if err != nil {
		if !errors.Is(err, store.ErrKeyMissing) {
			err = fmt.Errorf("failed loading cart from store with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
		logger.Info().Msg("starting with empty cart")
		return svc
	}

	items := []engine.LineItem{}
	err = json.Unmarshal([]byte(raw), &items)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling persisted cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		logger.Info().Msg("ignoring corrupt persisted cart, starting with empty cart")
		return svc
	}

	svc.state = engine.Load(svc.state, items)
	logger.Info().
		Int(constants.KEY_CART_ITEMS, len(items)).
		Msgf("restored cart with %d line items", len(items))
	return svc
}

func (svc *CartService) AddItem(
	c context.Context,
	product response.Product,
	quantity int64,
) engine.State {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService AddItem").
		Int(constants.KEY_PRODUCT_ID, product.ID).
		Int64(constants.KEY_QUANTITY, quantity).
		Logger()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = engine.AddItem(svc.state, product, quantity)
	metric.CartMutations.WithLabelValues("add").Inc()
	logger.Info().
		Int64(constants.KEY_TOTAL_ITEMS, svc.state.TotalItems).
		Msg("added item to cart")

	c = logger.WithContext(c)
	svc.persist(c, span)
	return svc.state
}

func (svc *CartService) RemoveItem(c context.Context, productId int) engine.State {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService RemoveItem").
		Int(constants.KEY_PRODUCT_ID, productId).
		Logger()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = engine.RemoveItem(svc.state, productId)
	metric.CartMutations.WithLabelValues("remove").Inc()
	logger.Info().
		Int64(constants.KEY_TOTAL_ITEMS, svc.state.TotalItems).
		Msg("removed item from cart")

	c = logger.WithContext(c)
	svc.persist(c, span)
	return svc.state
}

func (svc *CartService) UpdateQuantity(
	c context.Context,
	productId int,
	quantity int64,
) engine.State {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService UpdateQuantity").
		Int(constants.KEY_PRODUCT_ID, productId).
		Int64(constants.KEY_QUANTITY, quantity).
		Logger()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = engine.UpdateQuantity(svc.state, productId, quantity)
	metric.CartMutations.WithLabelValues("update").Inc()
	logger.Info().
		Int64(constants.KEY_TOTAL_ITEMS, svc.state.TotalItems).
		Msg("updated item quantity")

	c = logger.WithContext(c)
	svc.persist(c, span)
	return svc.state
}

func (svc *CartService) ClearCart(c context.Context) engine.State {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService ClearCart").
		Logger()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = engine.Clear(svc.state)
	metric.CartMutations.WithLabelValues("clear").Inc()
	logger.Info().Msg("cleared cart")

	c = logger.WithContext(c)
	svc.persist(c, span)
	return svc.state
}

// LoadCart replaces the cart wholesale. Entries are not validated; the
// storage bridge is responsible for supplying well-formed line items.
func (svc *CartService) LoadCart(c context.Context, items []engine.LineItem) engine.State {
	c, span := otel.Tracer.Start(c, "CartService LoadCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService LoadCart").
		Int(constants.KEY_CART_ITEMS, len(items)).
		Logger()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = engine.Load(svc.state, items)
	logger.Info().
		Int64(constants.KEY_TOTAL_ITEMS, svc.state.TotalItems).
		Msg("loaded cart")

	c = logger.WithContext(c)
	svc.persist(c, span)
	return svc.state
}

func (svc *CartService) GetItemQuantity(productId int) int64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	for _, item := range svc.state.Items {
		if item.ID == productId {
			return item.Quantity
		}
	}
	return 0
}

func (svc *CartService) IsInCart(productId int) bool {
	return svc.GetItemQuantity(productId) > 0
}

func (svc *CartService) Snapshot() engine.State {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state
}

// persist re-saves the current line items under the fixed cart key. Callers
// hold the mutex. A failed save is logged and recorded on the span; the
// in-memory state stays authoritative.
func (svc *CartService) persist(c context.Context, span trace.Span) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_PROCESS, "persisting cart").
		Str(constants.KEY_STORAGE_KEY, store.KEY_CART).
		Logger()

	raw, err := json.Marshal(svc.state.Items)
	if err != nil {
		err = fmt.Errorf("failed marshaling cart items with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	err = svc.kv.Set(c, store.KEY_CART, string(raw))
	if err != nil {
		err = fmt.Errorf("failed persisting cart with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	span.AddEvent("persisted cart")
	logger.Trace().Msg("persisted cart")
}
