package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirasaad/coinchat/pkg/fields"
)

// balance renders the wallet valuation: a total line plus one fragment per
// asset, joined with " | ". Unrecognized payload shapes render raw.
func (s *Service) balance(ctx context.Context, auth string) Reply {
	if auth == "" {
		return Reply{Text: loginPrompt}
	}

	data, err := s.gateway.BalanceSummary(ctx, auth)
	if err != nil {
		return Reply{Text: fmt.Sprintf("Could not fetch your balance: %v", err)}
	}

	summary, ok := data.(map[string]any)
	if !ok {
		return Reply{Text: "Balance (unexpected response): " + renderRaw(data)}
	}

	var parts []string
	if total, ok := fields.First(summary, "totalValueUsd", "totalValue"); ok {
		parts = append(parts, fmt.Sprintf("Total: US$ %v", total))
	}

	if assets := assetFragments(summary); len(assets) > 0 {
		parts = append(parts, "Details: "+strings.Join(assets, ", "))
	}

	if len(parts) == 0 {
		return Reply{Text: "Balance: " + renderRaw(summary)}
	}
	return Reply{Text: strings.Join(parts, " | ")}
}

// assetFragments builds "{symbol}: {amount} (US$ {value})" pieces from the
// per-asset list; the value is optional per fragment.
func assetFragments(summary map[string]any) []string {
	positions, ok := fields.First(summary, "detailed", "positions")
	if !ok {
		return nil
	}
	list, ok := positions.([]any)
	if !ok {
		return nil
	}

	var parts []string
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		symbol, okSymbol := fields.First(m, "symbol", "asset", "currency")
		amount, okAmount := fields.First(m, "amount")
		if !okSymbol || !okAmount {
			continue
		}
		piece := fmt.Sprintf("%v: %v", symbol, amount)
		if value, ok := fields.First(m, "value", "currentValue"); ok {
			piece += fmt.Sprintf(" (US$ %v)", value)
		}
		parts = append(parts, piece)
	}
	return parts
}
