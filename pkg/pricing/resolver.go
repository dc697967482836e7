// Package pricing resolves a currency symbol to a catalog record and a
// usable current price, falling back to live ticker lookups when the
// catalog price is stale or zero.
package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/fields"
)

// CatalogClient is the slice of the gateway client the resolver needs.
type CatalogClient interface {
	Catalog(ctx context.Context, auth string) ([]any, error)
	Ticker(ctx context.Context, pair string, auth string) (map[string]any, error)
}

// tickerPriceFields is the priority order of price-like field names probed
// in a ticker response. The first present field is taken.
var tickerPriceFields = []string{
	"lastPrice", "last_price", "price", "last", "close", "lastTradedPrice",
}

// Resolver looks currencies up in the gateway catalog on every call.
// The catalog is authoritative when its price is fresh; no local caching.
type Resolver struct {
	client CatalogClient
	logger *slog.Logger
}

// NewResolver creates a resolver backed by the given gateway client.
func NewResolver(client CatalogClient, logger *slog.Logger) *Resolver {
	return &Resolver{
		client: client,
		logger: logger.With("component", "pricing"),
	}
}

// Resolve finds the symbol in the catalog and determines a current price.
//
// A catalog fetch failure is fatal (ErrCatalogUnavailable); a missing symbol
// is ErrCurrencyNotFound. When the catalog price is not strictly positive,
// the stablecoin-quoted pair ("{SYMBOL}USDT") and then the bare symbol are
// tried against the live ticker; most venues quote against a stable unit
// first. If no source yields a positive price, Resolve returns a quote with
// price 0.0 and no error: "price unavailable" is a non-fatal outcome and
// callers must check the price before using it.
func (r *Resolver) Resolve(
	ctx context.Context,
	symbol, auth string,
) (*domain.CurrencyRecord, *domain.PriceQuote, error) {
	entries, err := r.client.Catalog(ctx, auth)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	record := findRecord(entries, symbol)
	if record == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, symbol)
	}

	if record.CurrentPrice > 0 {
		return record, &domain.PriceQuote{
			Symbol: record.Symbol,
			Price:  record.CurrentPrice,
			Source: domain.QuoteSourceCatalog,
		}, nil
	}

	price := r.tickerFallback(ctx, symbol, auth)
	return record, &domain.PriceQuote{
		Symbol: record.Symbol,
		Price:  price,
		Source: domain.QuoteSourceTickerFallback,
	}, nil
}

// findRecord linear-scans the catalog for a case-insensitive symbol match.
func findRecord(entries []any, symbol string) *domain.CurrencyRecord {
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		sym := fields.String(m["symbol"])
		if !strings.EqualFold(sym, symbol) {
			continue
		}
		var price float64
		if v, ok := fields.First(m, "currentPrice", "price"); ok {
			price = fields.Float(v)
		}
		return &domain.CurrencyRecord{
			ID:           fields.String(m["id"]),
			Symbol:       sym,
			CurrentPrice: price,
		}
	}
	return nil
}

// tickerFallback tries the live ticker pairs in fixed order and returns the
// first strictly positive price, or 0 when none of them yields one. Ticker
// errors are non-fatal: the next candidate is tried.
func (r *Resolver) tickerFallback(ctx context.Context, symbol, auth string) float64 {
	upper := strings.ToUpper(symbol)
	for _, pair := range []string{upper + "USDT", upper} {
		ticker, err := r.client.Ticker(ctx, pair, auth)
		if err != nil {
			r.logger.Debug("ticker lookup failed", "pair", pair, "error", err)
			continue
		}
		v, ok := fields.First(ticker, tickerPriceFields...)
		if !ok {
			continue
		}
		if price := fields.Float(v); price > 0 {
			r.logger.Debug("price resolved via ticker fallback",
				"pair", pair, "price", price)
			return price
		}
	}
	return 0
}
