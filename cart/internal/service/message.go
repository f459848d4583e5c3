package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/organicstore/storefront/cart/internal/otel"
	inOtel "github.com/organicstore/storefront/internal/otel"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// formatPrice renders an amount the way the store displays COP: zero decimal
// places with es-CO grouping, "$ 2.500".
func formatPrice(price decimal.Decimal) string {
	return printer.Sprintf("$ %v", number.Decimal(price.Round(0).IntPart()))
}

// OrderMessage renders the cart as the WhatsApp order text, percent-encoded
// for inclusion in a URL query string. An empty cart yields an empty string.
func (svc *CartService) OrderMessage(c context.Context) string {
	_, span := otel.Tracer.Start(c, "CartService OrderMessage")
	defer span.End()

	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if len(svc.state.Items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("🛒 *Pedido de Productos Orgánicos*\n\n")

	for i, item := range svc.state.Items {
		quantity := decimal.NewFromInt(item.Quantity)
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Cantidad: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Precio unitario: %s\n", formatPrice(item.Price))
		fmt.Fprintf(&b, "   Subtotal: %s\n\n", formatPrice(item.Price.Mul(quantity)))
	}

	b.WriteString("📊 *Resumen del pedido:*\n")
	fmt.Fprintf(&b, "Total de productos: %d\n", svc.state.TotalItems)
	fmt.Fprintf(&b, "*Total a pagar: %s*\n\n", formatPrice(svc.state.TotalPrice))
	b.WriteString("¡Gracias por elegir productos orgánicos! 🌱")

	return escapeQueryComponent(b.String())
}

// CheckoutURL builds the wa.me deep link carrying the order message. Opening
// it is fire and forget; there is no delivery confirmation.
func (svc *CartService) CheckoutURL(c context.Context) (string, error) {
	c, span := otel.Tracer.Start(c, "CartService CheckoutURL")
	defer span.End()

	orderMessage := svc.OrderMessage(c)
	if orderMessage == "" {
		inOtel.RecordError(ErrEmptyCart, span)
		return "", ErrEmptyCart
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", svc.phone, orderMessage), nil
}

// escapeQueryComponent percent-encodes for a query string, keeping spaces as
// %20 rather than the form-encoding plus sign.
func escapeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
