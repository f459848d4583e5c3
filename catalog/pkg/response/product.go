package response

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Product is one catalog record built from a feed row. Records are replaced
// wholesale on every feed load; ID is the 1-based data-row index and is not
// stable across reloads.
type Product struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Price       decimal.Decimal   `json:"price"`
	Stock       int64             `json:"stock"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	Image       string            `json:"image,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

func (p Product) MarshalZerologObject(e *zerolog.Event) {
	e.Int("id", p.ID).
		Str("name", p.Name).
		Str("price", p.Price.String()).
		Int64("stock", p.Stock).
		Str("category", p.Category)
}
