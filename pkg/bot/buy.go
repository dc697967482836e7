package bot

import (
	"context"
	"fmt"

	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/dto"
	"github.com/google/uuid"
)

// Orders are attributed to a fixed placeholder account/wallet pair; the
// gateway maps the authenticated user to the real accounts.
var (
	placeholderAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	placeholderWalletID  = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

// buy resolves the target asset and submits a fiat-funded buy order.
// Fiat-denominated commands spend the parsed amount directly; asset-
// denominated commands convert via the resolved price, and abort when the
// price is not strictly positive rather than submit an order priced at zero.
func (s *Service) buy(ctx context.Context, cmd domain.ParsedCommand, auth string) Reply {
	if auth == "" {
		return Reply{Text: loginPrompt}
	}

	record, quote, err := s.resolver.Resolve(ctx, cmd.Symbol, auth)
	if err != nil {
		return Reply{Text: fmt.Sprintf("Could not prepare your buy order: %v", err)}
	}

	fiatAmount := cmd.Amount
	if !cmd.FiatDenominated {
		if quote.Price <= 0 {
			return Reply{Text: priceUnavailableReply(cmd.Symbol)}
		}
		fiatAmount = cmd.Amount * quote.Price
	}

	referenceID := uuid.NewString()
	req := dto.BuyOrderRequest{
		IDAccount:    placeholderAccountID,
		IDWallet:     placeholderWalletID,
		IDCurrency:   record.ID,
		FiatAmount:   fiatAmount,
		Fee:          0,
		CreateNewLot: true,
		ReferenceID:  referenceID,
	}
	resp, err := s.gateway.Buy(ctx, req, auth)
	if err != nil {
		return Reply{Text: fmt.Sprintf("Buy order failed: %v", err)}
	}

	return Reply{Text: fmt.Sprintf(
		"Buy order for %s submitted (US$ %.2f, reference %s). Gateway: %s",
		record.Symbol, fiatAmount, referenceID, renderRaw(resp))}
}
