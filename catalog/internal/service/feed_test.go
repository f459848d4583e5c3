package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/organicstore/storefront/internal/config"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc) (*CatalogService, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewCatalogService(config.Feed{
		SheetURL: "https://docs.google.com/spreadsheets/d/sheet-1/edit?usp=sharing",
	})
	svc.baseUrl = server.URL
	svc.client = server.Client()
	return svc, server
}

func TestFetchFeedParsesCsv(t *testing.T) {
	var requestedPath string
	svc, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte("Nombre,Precio,Stock\nManzana,2500,10"))
	})

	products := svc.FetchFeed(context.Background(), "sheet-1", "")

	assert.Equal(t, "/spreadsheets/d/sheet-1/export?format=csv", requestedPath)
	assert.Len(t, products, 1)
	assert.Equal(t, "Manzana", products[0].Name)
	assert.True(t, decimal.NewFromInt(2500).Equal(products[0].Price))
}

func TestFetchFeedAppendsGid(t *testing.T) {
	var requestedQuery string
	svc, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		requestedQuery = r.URL.RawQuery
		w.Write([]byte("Nombre,Precio,Stock\nManzana,2500,10"))
	})

	svc.FetchFeed(context.Background(), "sheet-1", "42")

	assert.Equal(t, "format=csv&gid=42", requestedQuery)
}

func TestFetchFeedFallback(t *testing.T) {
	tests := []struct {
		name    string
		sheetId string
		handler http.HandlerFunc
	}{
		{
			name:    "given empty sheet id should return fallback",
			sheetId: "",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("Nombre,Precio,Stock\nManzana,2500,10"))
			},
		},
		{
			name:    "given non success status should return fallback",
			sheetId: "sheet-1",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name:    "given empty body should return fallback",
			sheetId: "sheet-1",
			handler: func(w http.ResponseWriter, r *http.Request) {},
		},
		{
			name:    "given header only csv should return fallback",
			sheetId: "sheet-1",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("Nombre,Precio,Stock"))
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, _ := newTestCatalog(t, test.handler)

			products := svc.FetchFeed(context.Background(), test.sheetId, "")

			assert.Equal(t, FallbackProducts(), products)
		})
	}
}

func TestFetchFeedUnreachableHost(t *testing.T) {
	svc, server := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	products := svc.FetchFeed(context.Background(), "sheet-1", "")

	assert.Equal(t, FallbackProducts(), products)
}

func TestRefreshReplacesCatalogWholesale(t *testing.T) {
	payloads := []string{
		"Nombre,Precio,Stock\nManzana,2500,10\nPera,2000,5",
		"Nombre,Precio,Stock\nUva,4000,2",
	}
	call := 0
	svc, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payloads[call]))
		call++
	})
	c := context.Background()

	first := svc.Products(c)
	assert.Len(t, first, 2)

	second := svc.Refresh(c)
	assert.Len(t, second, 1)
	assert.Equal(t, "Uva", second[0].Name)
	assert.Equal(t, second, svc.Products(c))
}

func TestFindByID(t *testing.T) {
	svc, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Nombre,Precio,Stock\nManzana,2500,10\nPera,2000,5"))
	})
	c := context.Background()

	product, ok := svc.FindByID(c, 2)
	assert.True(t, ok)
	assert.Equal(t, "Pera", product.Name)

	_, ok = svc.FindByID(c, 99)
	assert.False(t, ok)
}
