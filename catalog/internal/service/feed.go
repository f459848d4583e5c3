package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/organicstore/storefront/catalog/internal/otel"
	"github.com/organicstore/storefront/catalog/pkg/response"
	"github.com/organicstore/storefront/internal/config"
	"github.com/organicstore/storefront/internal/constants"
	"github.com/organicstore/storefront/internal/metric"
	inOtel "github.com/organicstore/storefront/internal/otel"
)

var (
	ErrInvalidSheetID = errors.New("spreadsheet id is not valid")
	ErrEmptyFeed      = errors.New("spreadsheet export is empty")
)

var sheetIdPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// ExtractSheetID pulls the spreadsheet id out of a full sheet URL, matching
// the /d/<id>/ segment. Returns "" when the URL has no such segment.
func ExtractSheetID(url string) string {
	matches := sheetIdPattern.FindStringSubmatch(url)
	if matches == nil {
		return ""
	}
	return matches[1]
}

type CatalogService struct {
	cfg     config.Feed
	client  *http.Client
	baseUrl string

	mu       sync.RWMutex
	products []response.Product
	loaded   bool
}

func NewCatalogService(cfg config.Feed) *CatalogService {
	return &CatalogService{
		cfg:     cfg,
		client:  otelhttp.DefaultClient,
		baseUrl: "https://docs.google.com",
	}
}

// FetchFeed loads one CSV export of the configured spreadsheet and returns
// the parsed catalog. The catalog must always render something: every
// failure mode (bad id, transport error, non-2xx status, empty body,
// unparseable document) degrades to the built-in sample catalog and is never
// surfaced as an error.
func (svc *CatalogService) FetchFeed(
	c context.Context,
	sheetId string,
	sheetGid string,
) []response.Product {
	c, span := otel.Tracer.Start(c, "CatalogService FetchFeed")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogService FetchFeed").
		Str(constants.KEY_SHEET_ID, sheetId).
		Logger()

	products, err := svc.fetchFeed(c, sheetId, sheetGid)
	if err != nil {
		err = fmt.Errorf("failed loading feed with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())

		logger = logger.With().Str(constants.KEY_PROCESS, "using fallback catalog").Logger()
		logger.Info().Msg("using fallback catalog")
		metric.FeedFallbacks.Inc()
		return FallbackProducts()
	}

	logger.Info().
		Int(constants.KEY_PRODUCT_COUNT, len(products)).
		Msgf("loaded %d products from feed", len(products))
	return products
}

func (svc *CatalogService) fetchFeed(
	c context.Context,
	sheetId string,
	sheetGid string,
) ([]response.Product, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogService fetchFeed").
		Logger()

	if sheetId == "" {
		return nil, ErrInvalidSheetID
	}

	feedUrl := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv", svc.baseUrl, sheetId)
	if sheetGid != "" {
		feedUrl += "&gid=" + sheetGid
	}

	logger = logger.With().
		Str(constants.KEY_PROCESS, "fetching feed").
		Str(constants.KEY_FEED_URL, feedUrl).
		Logger()
	logger.Info().Msg("fetching feed")
	req, err := http.NewRequestWithContext(c, http.MethodGet, feedUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating feed request with error=%w", err)
	}
	resp, err := svc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed fetching feed with error=%w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("feed returned status code=%d", resp.StatusCode)
	}
	logger.Info().Msg("fetched feed")

	logger = logger.With().Str(constants.KEY_PROCESS, "reading feed body").Logger()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading feed body with error=%w", err)
	}
	if len(body) == 0 {
		return nil, ErrEmptyFeed
	}
	logger.Info().Msg("read feed body")

	logger = logger.With().Str(constants.KEY_PROCESS, "parsing feed").Logger()
	logger.Info().Msg("parsing feed")
	products, err := ParseCSV(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed parsing feed with error=%w", err)
	}
	logger.Info().Msg("parsed feed")

	return products, nil
}

// Refresh replaces the loaded catalog wholesale with a fresh feed load.
func (svc *CatalogService) Refresh(c context.Context) []response.Product {
	c, span := otel.Tracer.Start(c, "CatalogService Refresh")
	defer span.End()

	sheetId := ExtractSheetID(svc.cfg.SheetURL)
	products := svc.FetchFeed(c, sheetId, svc.cfg.SheetGid)

	svc.mu.Lock()
	svc.products = products
	svc.loaded = true
	svc.mu.Unlock()

	metric.FeedProducts.Set(float64(len(products)))
	return products
}

// Products returns the current catalog, loading the feed on first use.
func (svc *CatalogService) Products(c context.Context) []response.Product {
	svc.mu.RLock()
	loaded := svc.loaded
	products := svc.products
	svc.mu.RUnlock()
	if loaded {
		return products
	}
	return svc.Refresh(c)
}

func (svc *CatalogService) FindByID(c context.Context, id int) (response.Product, bool) {
	for _, product := range svc.Products(c) {
		if product.ID == id {
			return product, true
		}
	}
	return response.Product{}, false
}

// FallbackProducts is the fixed sample catalog used whenever the feed is
// unreachable or unparseable.
func FallbackProducts() []response.Product {
	return []response.Product{
		{
			ID:          1,
			Name:        "Lechuga Orgánica",
			Price:       decimal.NewFromInt(2500),
			Stock:       20,
			Description: "Lechuga fresca cultivada sin pesticidas",
			Category:    "Verduras",
		},
		{
			ID:          2,
			Name:        "Tomates Orgánicos",
			Price:       decimal.NewFromInt(3000),
			Stock:       15,
			Description: "Tomates rojos maduros y jugosos",
			Category:    "Verduras",
		},
		{
			ID:          3,
			Name:        "Zanahorias Orgánicas",
			Price:       decimal.NewFromInt(2000),
			Stock:       30,
			Description: "Zanahorias dulces y crujientes",
			Category:    "Verduras",
		},
		{
			ID:          4,
			Name:        "Manzanas Orgánicas",
			Price:       decimal.NewFromInt(4000),
			Stock:       25,
			Description: "Manzanas rojas sin químicos",
			Category:    "Frutas",
		},
		{
			ID:          5,
			Name:        "Bananos Orgánicos",
			Price:       decimal.NewFromInt(1500),
			Stock:       40,
			Description: "Bananos maduros y dulces",
			Category:    "Frutas",
		},
	}
}
