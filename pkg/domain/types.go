// Package domain holds the core types shared by the classifier, the
// resolver, the command executors and the deposit queue.
package domain

// Intent is the classified purpose of an inbound chat message.
type Intent string

const (
	IntentBalance Intent = "balance"
	IntentDeposit Intent = "deposit"
	IntentBuy     Intent = "buy"
	IntentSell    Intent = "sell"
	IntentHistory Intent = "history"
	IntentHelp    Intent = "help"
	IntentUnknown Intent = "unknown"
)

// ParsedCommand is the immutable result of classifying one inbound message.
// Amount is always non-negative; unparseable numeric text normalizes to 0.
type ParsedCommand struct {
	Intent  Intent
	RawText string
	Amount  float64
	Symbol  string
	// FiatDenominated marks buy/sell orders whose amount is quoted in a
	// fiat currency rather than in asset units.
	FiatDenominated bool
}

// CurrencyRecord is a read-only projection of one entry in the gateway's
// currency catalog.
type CurrencyRecord struct {
	ID           string
	Symbol       string
	CurrentPrice float64
}

// QuoteSource tells where a resolved price came from.
type QuoteSource string

const (
	QuoteSourceCatalog        QuoteSource = "catalog"
	QuoteSourceTickerFallback QuoteSource = "ticker_fallback"
)

// PriceQuote is the outcome of one price resolution. A non-positive Price
// means "price unavailable"; callers must check before using it.
type PriceQuote struct {
	Symbol string
	Price  float64
	Source QuoteSource
}

// DepositEvent is the payload handed to the deposit queue. It is owned by
// the queue until the background worker consumes it and is never persisted:
// a process restart discards pending events.
type DepositEvent struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Method      string  `json:"method"`
	ReferenceID string  `json:"referenceId"`
	AuthHeader  string  `json:"authHeader,omitempty"`
}

// DepositEventType is the single event type the queue currently carries.
const DepositEventType = "wallet.deposit"
