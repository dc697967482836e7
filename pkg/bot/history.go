package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirasaad/coinchat/pkg/fields"
)

// historyMaxEntries caps how many transactions one reply lists.
const historyMaxEntries = 5

// history renders the latest transactions as "{type} {amount} {symbol}"
// fragments. Non-list payloads render raw.
func (s *Service) history(ctx context.Context, auth string) Reply {
	if auth == "" {
		return Reply{Text: loginPrompt}
	}

	data, err := s.gateway.Transactions(ctx, auth)
	if err != nil {
		return Reply{Text: fmt.Sprintf("Could not fetch your transactions: %v", err)}
	}

	list, ok := data.([]any)
	if !ok {
		return Reply{Text: "Transactions: " + renderRaw(data)}
	}
	if len(list) == 0 {
		return Reply{Text: noTransactionsReply}
	}

	var parts []string
	for _, item := range list {
		if len(parts) == historyMaxEntries {
			break
		}
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		txType, _ := fields.First(m, "type", "transactionType")
		amount, _ := fields.First(m, "amount", "value")
		symbol, _ := fields.First(m, "currency", "symbol", "currencySymbol")

		var pieces []string
		for _, p := range []string{
			fields.String(txType), fields.String(amount), fields.String(symbol),
		} {
			if p != "" {
				pieces = append(pieces, p)
			}
		}
		if len(pieces) > 0 {
			parts = append(parts, strings.Join(pieces, " "))
		}
	}

	return Reply{Text: "Latest transactions: " + strings.Join(parts, ", ")}
}
