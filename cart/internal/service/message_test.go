package service

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/organicstore/storefront/catalog/pkg/response"
	"github.com/organicstore/storefront/internal/store"
)

func TestOrderMessageEmptyCart(t *testing.T) {
	svc := NewCartService(context.Background(), store.NewMemoryKV(), "573225054512")

	assert.Equal(t, "", svc.OrderMessage(context.Background()))
}

func TestOrderMessageSingleItem(t *testing.T) {
	c := context.Background()
	svc := NewCartService(c, store.NewMemoryKV(), "573225054512")
	svc.AddItem(c, response.Product{
		ID:    1,
		Name:  "X",
		Price: decimal.NewFromInt(1000),
		Stock: 10,
	}, 2)

	encoded := svc.OrderMessage(c)

	assert.NotContains(t, encoded, " ")
	decoded, err := url.QueryUnescape(encoded)
	assert.NoError(t, err)
	assert.Contains(t, decoded, "*X*")
	assert.Contains(t, decoded, "Cantidad: 2")
	assert.Contains(t, decoded, "Precio unitario: $ 1.000")
	assert.Contains(t, decoded, "Subtotal: $ 2.000")
	assert.Contains(t, decoded, "Total de productos: 2")
	assert.Contains(t, decoded, "*Total a pagar: $ 2.000*")
	assert.True(t, strings.HasPrefix(decoded, "🛒 *Pedido de Productos Orgánicos*"))
	assert.True(t, strings.HasSuffix(decoded, "¡Gracias por elegir productos orgánicos! 🌱"))
}

func TestOrderMessageNumbersLineItems(t *testing.T) {
	c := context.Background()
	svc := NewCartService(c, store.NewMemoryKV(), "573225054512")
	svc.AddItem(c, response.Product{ID: 1, Name: "Uno", Price: decimal.NewFromInt(100), Stock: 5}, 1)
	svc.AddItem(c, response.Product{ID: 2, Name: "Dos", Price: decimal.NewFromInt(200), Stock: 5}, 1)

	decoded, err := url.QueryUnescape(svc.OrderMessage(c))

	assert.NoError(t, err)
	assert.Contains(t, decoded, "1. *Uno*")
	assert.Contains(t, decoded, "2. *Dos*")
	assert.Less(t, strings.Index(decoded, "1. *Uno*"), strings.Index(decoded, "2. *Dos*"))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    decimal.Decimal
		expected string
	}{
		{name: "given small amount should not group", price: decimal.NewFromInt(500), expected: "$ 500"},
		{name: "given thousands should group with dots", price: decimal.NewFromInt(2500), expected: "$ 2.500"},
		{name: "given millions should group every three digits", price: decimal.NewFromInt(1234567), expected: "$ 1.234.567"},
		{name: "given fractional amount should round to zero decimals", price: decimal.NewFromFloat(2500.6), expected: "$ 2.501"},
		{name: "given zero should render plain zero", price: decimal.Zero, expected: "$ 0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, formatPrice(test.price))
		})
	}
}

func TestCheckoutURL(t *testing.T) {
	c := context.Background()
	svc := NewCartService(c, store.NewMemoryKV(), "573225054512")

	_, err := svc.CheckoutURL(c)
	assert.ErrorIs(t, err, ErrEmptyCart)

	svc.AddItem(c, response.Product{ID: 1, Name: "X", Price: decimal.NewFromInt(1000), Stock: 3}, 1)
	checkoutUrl, err := svc.CheckoutURL(c)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(checkoutUrl, "https://wa.me/573225054512?text="))
}
