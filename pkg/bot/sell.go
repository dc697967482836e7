package bot

import (
	"context"
	"fmt"

	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/dto"
	"github.com/google/uuid"
)

// sell mirrors buy but computes an asset quantity: fiat-denominated
// commands divide the fiat amount by the resolved price (aborting when the
// price is not strictly positive), asset-denominated commands sell the
// parsed amount directly. No lot hints are sent; lot selection is the
// gateway's call.
func (s *Service) sell(ctx context.Context, cmd domain.ParsedCommand, auth string) Reply {
	if auth == "" {
		return Reply{Text: loginPrompt}
	}

	record, quote, err := s.resolver.Resolve(ctx, cmd.Symbol, auth)
	if err != nil {
		return Reply{Text: fmt.Sprintf("Could not prepare your sell order: %v", err)}
	}

	assetAmount := cmd.Amount
	if cmd.FiatDenominated {
		if quote.Price <= 0 {
			return Reply{Text: priceUnavailableReply(cmd.Symbol)}
		}
		assetAmount = cmd.Amount / quote.Price
	}

	referenceID := uuid.NewString()
	req := dto.SellOrderRequest{
		IDAccount:    placeholderAccountID,
		IDWallet:     placeholderWalletID,
		IDCurrency:   record.ID,
		CriptoAmount: assetAmount,
		Fee:          0,
		ReferenceID:  referenceID,
	}
	resp, err := s.gateway.Sell(ctx, req, auth)
	if err != nil {
		return Reply{Text: fmt.Sprintf("Sell order failed: %v", err)}
	}

	return Reply{Text: fmt.Sprintf(
		"Sell order for %v %s submitted (reference %s). Gateway: %s",
		assetAmount, record.Symbol, referenceID, renderRaw(resp))}
}
