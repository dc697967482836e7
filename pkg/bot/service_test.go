package bot

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	balance     any
	balanceErr  error
	deposits    []dto.DepositFiatRequest
	depositErr  error
	buys        []dto.BuyOrderRequest
	buyErr      error
	sells       []dto.SellOrderRequest
	sellErr     error
	history     any
	historyErr  error
	totalCalls  int
	lastAuth    string
	depositResp any
}

func (f *fakeGateway) BalanceSummary(_ context.Context, auth string) (any, error) {
	f.totalCalls++
	f.lastAuth = auth
	return f.balance, f.balanceErr
}

func (f *fakeGateway) DepositFiat(
	_ context.Context, req dto.DepositFiatRequest, auth string,
) (any, error) {
	f.totalCalls++
	f.lastAuth = auth
	f.deposits = append(f.deposits, req)
	return f.depositResp, f.depositErr
}

func (f *fakeGateway) Buy(_ context.Context, req dto.BuyOrderRequest, auth string) (any, error) {
	f.totalCalls++
	f.lastAuth = auth
	f.buys = append(f.buys, req)
	return map[string]any{"status": "ok"}, f.buyErr
}

func (f *fakeGateway) Sell(_ context.Context, req dto.SellOrderRequest, auth string) (any, error) {
	f.totalCalls++
	f.lastAuth = auth
	f.sells = append(f.sells, req)
	return map[string]any{"status": "ok"}, f.sellErr
}

func (f *fakeGateway) Transactions(_ context.Context, auth string) (any, error) {
	f.totalCalls++
	f.lastAuth = auth
	return f.history, f.historyErr
}

type fakeResolver struct {
	record *domain.CurrencyRecord
	quote  *domain.PriceQuote
	err    error
	asked  []string
}

func (f *fakeResolver) Resolve(
	_ context.Context, symbol, _ string,
) (*domain.CurrencyRecord, *domain.PriceQuote, error) {
	f.asked = append(f.asked, symbol)
	return f.record, f.quote, f.err
}

type fakePublisher struct {
	events []domain.DepositEvent
}

func (f *fakePublisher) Publish(_ context.Context, event domain.DepositEvent) bool {
	f.events = append(f.events, event)
	return false
}

func newTestService(gw *fakeGateway, r *fakeResolver) (*Service, *fakePublisher) {
	pub := &fakePublisher{}
	return New(gw, r, pub, slog.Default()), pub
}

func btcResolver(price float64) *fakeResolver {
	return &fakeResolver{
		record: &domain.CurrencyRecord{ID: "cur-btc", Symbol: "BTC"},
		quote: &domain.PriceQuote{
			Symbol: "BTC", Price: price, Source: domain.QuoteSourceCatalog,
		},
	}
}

func TestMissingCredentialShortCircuits(t *testing.T) {
	messages := []string{
		"what is my balance",
		"deposit 200 usd",
		"buy 100 usd de btc",
		"sell 0.5 btc",
		"history",
	}
	for _, message := range messages {
		t.Run(message, func(t *testing.T) {
			gw := &fakeGateway{}
			svc, pub := newTestService(gw, btcResolver(50000))

			reply := svc.HandleMessage(context.Background(), message, "")
			assert.Equal(t, loginPrompt, reply.Text)
			assert.Zero(t, gw.totalCalls, "no gateway call may happen without a credential")
			assert.Empty(t, pub.events)
		})
	}
}

func TestUnknownMessageYieldsFallback(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw, btcResolver(50000))

	reply := svc.HandleMessage(context.Background(), "xyz123", "Bearer tok")
	assert.Equal(t, fallbackReply, reply.Text)
	assert.Zero(t, gw.totalCalls)
}

func TestHelpNeedsNoCredential(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{}, btcResolver(0))
	reply := svc.HandleMessage(context.Background(), "what can you do", "")
	assert.Equal(t, helpReply, reply.Text)
}

func TestDepositEnqueuesAndCallsGatewayOnce(t *testing.T) {
	gw := &fakeGateway{depositResp: map[string]any{"status": "accepted"}}
	svc, pub := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "deposit 200 usd", "Bearer tok")

	require.Len(t, pub.events, 1)
	event := pub.events[0]
	assert.Equal(t, domain.DepositEventType, event.Type)
	assert.InEpsilon(t, 200.0, event.Amount, 1e-9)
	assert.Equal(t, "USD", event.Currency)
	assert.Equal(t, "CHATBOT", event.Method)
	assert.NotEmpty(t, event.ReferenceID)
	assert.Equal(t, "Bearer tok", event.AuthHeader)

	require.Len(t, gw.deposits, 1)
	sync := gw.deposits[0]
	assert.InEpsilon(t, 200.0, sync.Amount, 1e-9)
	assert.Equal(t, "USD", sync.Currency)
	// Both paths share the same idempotency key.
	assert.Equal(t, event.ReferenceID, sync.ReferenceID)

	assert.False(t, reply.Published, "local queue never reports broker publication")
	require.NotNil(t, reply.Event)
	assert.Equal(t, event, *reply.Event)
	assert.Contains(t, reply.Text, "queued locally")
	assert.Contains(t, reply.Text, "processed")
}

func TestDepositReportsSyncFailureButKeepsEventQueued(t *testing.T) {
	gw := &fakeGateway{depositErr: &domain.GatewayError{Status: 502, Body: "bad gateway"}}
	svc, pub := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "deposit 50", "Bearer tok")

	require.Len(t, pub.events, 1)
	assert.Contains(t, reply.Text, "failed")
	assert.Contains(t, reply.Text, "background")
	assert.False(t, reply.Published)
}

func TestBuyFiatDenominatedSpendsAmountDirectly(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw, btcResolver(50000))

	svc.HandleMessage(context.Background(), "buy 100 usd de btc", "Bearer tok")

	require.Len(t, gw.buys, 1)
	order := gw.buys[0]
	// Fiat-denominated: 100 is the spend, not 100/50000.
	assert.InEpsilon(t, 100.0, order.FiatAmount, 1e-9)
	assert.Equal(t, "cur-btc", order.IDCurrency)
	assert.Zero(t, order.Fee)
	assert.True(t, order.CreateNewLot)
	assert.NotEmpty(t, order.ReferenceID)
}

func TestBuyAssetDenominatedConvertsViaPrice(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw, btcResolver(50000))

	svc.HandleMessage(context.Background(), "buy 0.01 btc", "Bearer tok")

	require.Len(t, gw.buys, 1)
	assert.InEpsilon(t, 500.0, gw.buys[0].FiatAmount, 1e-9)
}

func TestBuyAbortsWhenPriceUnavailable(t *testing.T) {
	gw := &fakeGateway{}
	resolver := btcResolver(0)
	resolver.quote.Source = domain.QuoteSourceTickerFallback
	svc, _ := newTestService(gw, resolver)

	reply := svc.HandleMessage(context.Background(), "buy 0.01 btc", "Bearer tok")

	assert.Empty(t, gw.buys, "no order may be submitted with invalid pricing")
	assert.Contains(t, reply.Text, "unavailable")
}

func TestBuySurfacesResolverError(t *testing.T) {
	gw := &fakeGateway{}
	resolver := &fakeResolver{
		err: fmt.Errorf("%w: ZZZ", domain.ErrCurrencyNotFound),
	}
	svc, _ := newTestService(gw, resolver)

	reply := svc.HandleMessage(context.Background(), "buy 10 usd de zzz", "Bearer tok")
	assert.Contains(t, reply.Text, "currency not found")
	assert.Empty(t, gw.buys)
}

func TestSellFiatDenominatedDividesByPrice(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw, btcResolver(50000))

	svc.HandleMessage(context.Background(), "sell 100 usd of btc", "Bearer tok")

	require.Len(t, gw.sells, 1)
	order := gw.sells[0]
	assert.InEpsilon(t, 100.0/50000.0, order.CriptoAmount, 1e-9)
	assert.Zero(t, order.Fee)
}

func TestSellAssetDenominatedUsesAmountDirectly(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw, btcResolver(50000))

	svc.HandleMessage(context.Background(), "sell 0.5 btc", "Bearer tok")

	require.Len(t, gw.sells, 1)
	assert.InEpsilon(t, 0.5, gw.sells[0].CriptoAmount, 1e-9)
}

func TestSellAbortsWhenPriceUnavailableForFiatOrder(t *testing.T) {
	gw := &fakeGateway{}
	resolver := btcResolver(0)
	svc, _ := newTestService(gw, resolver)

	reply := svc.HandleMessage(context.Background(), "sell 100 usd of btc", "Bearer tok")
	assert.Empty(t, gw.sells)
	assert.Contains(t, reply.Text, "unavailable")
}

func TestBalanceRendersTotalAndAssets(t *testing.T) {
	gw := &fakeGateway{balance: map[string]any{
		"totalValueUsd": 1234.5,
		"detailed": []any{
			map[string]any{"symbol": "BTC", "amount": 0.5, "value": 25000.0},
			map[string]any{"asset": "ETH", "amount": 2.0},
		},
	}}
	svc, _ := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "what is my balance", "Bearer tok")
	assert.Equal(t,
		"Total: US$ 1234.5 | Details: BTC: 0.5 (US$ 25000), ETH: 2",
		reply.Text)
}

func TestBalanceFallsBackToRawRendering(t *testing.T) {
	gw := &fakeGateway{balance: map[string]any{"weird": "shape"}}
	svc, _ := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "saldo", "Bearer tok")
	assert.Equal(t, `Balance: {"weird":"shape"}`, reply.Text)
}

func TestBalanceSurfacesGatewayError(t *testing.T) {
	gw := &fakeGateway{
		balanceErr: &domain.GatewayError{Status: 401, Body: "expired token"},
	}
	svc, _ := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "balance", "Bearer tok")
	assert.Contains(t, reply.Text, "401")
	assert.Contains(t, reply.Text, "expired token")
}

func TestHistoryRendersAtMostFiveEntries(t *testing.T) {
	var list []any
	for i := 0; i < 7; i++ {
		list = append(list, map[string]any{
			"type":     "deposit",
			"amount":   float64(i + 1),
			"currency": "USD",
		})
	}
	gw := &fakeGateway{history: list}
	svc, _ := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "history", "Bearer tok")
	assert.Equal(t,
		"Latest transactions: deposit 1 USD, deposit 2 USD, deposit 3 USD, "+
			"deposit 4 USD, deposit 5 USD",
		reply.Text)
}

func TestHistoryEmptyList(t *testing.T) {
	gw := &fakeGateway{history: []any{}}
	svc, _ := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "history", "Bearer tok")
	assert.Equal(t, noTransactionsReply, reply.Text)
}

func TestHistoryNonListRendersRaw(t *testing.T) {
	gw := &fakeGateway{history: map[string]any{"error": "none"}}
	svc, _ := newTestService(gw, btcResolver(0))

	reply := svc.HandleMessage(context.Background(), "extrato", "Bearer tok")
	assert.Equal(t, `Transactions: {"error":"none"}`, reply.Text)
}

func TestEachDepositGetsFreshReferenceID(t *testing.T) {
	gw := &fakeGateway{}
	svc, pub := newTestService(gw, btcResolver(0))

	ctx := context.Background()
	svc.HandleMessage(ctx, "deposit 10 usd", "Bearer tok")
	svc.HandleMessage(ctx, "deposit 10 usd", "Bearer tok")

	require.Len(t, pub.events, 2)
	assert.NotEqual(t, pub.events[0].ReferenceID, pub.events[1].ReferenceID)
}
