package request

import (
	"github.com/organicstore/storefront/catalog/pkg/response"
)

// AddItem carries the product snapshot to merge into the cart. A zero
// Quantity means "not provided" and defaults to one; out-of-range values are
// clamped by the engine rather than rejected.
type AddItem struct {
	Product  response.Product `validate:"required" json:"product"`
	Quantity int64            `json:"quantity"`
}

type UpdateQuantity struct {
	Quantity int64 `json:"quantity"`
}
