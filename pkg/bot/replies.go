package bot

import (
	"encoding/json"
	"fmt"
)

// loginPrompt is the uniform short-circuit reply for every command that
// needs a credential. Not a system fault.
const loginPrompt = "I need your authentication token for that. " +
	"Please log in and try again."

const helpReply = `I understand commands like:
- "What is my balance?"
- "deposit 200 USD"
- "buy 100 USD of BTC" or "buy 0.01 BTC"
- "sell 50 USD of ETH" or "sell 0.5 ETH"
- "history" to list your latest transactions`

const fallbackReply = `Sorry, I didn't understand. Ask "What is my balance?" ` +
	`or try commands like "deposit 200 USD", "buy 100 USD of BTC" or "history".`

const noTransactionsReply = "No transactions found."

func priceUnavailableReply(symbol string) string {
	return fmt.Sprintf(
		"The current price for %s is unavailable, so I cannot compute the "+
			"fiat value of your order. Please try again later.", symbol)
}

// renderRaw is the fallback rendering for gateway payloads whose shape we
// do not recognize.
func renderRaw(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}
