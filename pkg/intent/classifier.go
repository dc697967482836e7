package intent

import (
	"regexp"
	"strings"

	"github.com/amirasaad/coinchat/pkg/domain"
)

// Patterns accept English and Portuguese phrasings; the service predates
// its translation and users still type both.
var (
	balancePattern = regexp.MustCompile(
		`\b(?:saldo|balance)\b|quanto (?:eu )?tenho|how much do i have`)
	depositPattern = regexp.MustCompile(
		`\b(?:depositar|deposit)\s+(\d+[.,]?\d*)\s*([a-z]{3}|[a-z]+)?`)
	buyPattern = regexp.MustCompile(
		`\b(?:comprar|buy)\s+(\d+[.,]?\d*)\s*(usd|brl|eur|gbp)?\b\s*(?:of|de)?\s*([a-z]{2,10})?`)
	sellPattern = regexp.MustCompile(
		`\b(?:vender|sell)\s+(\d+[.,]?\d*)\s*(usd|brl|eur|gbp)?\b\s*(?:of|de)?\s*([a-z]{2,10})?`)
	historyPattern = regexp.MustCompile(
		`\b(?:hist[óo]rico|history|statement|transactions?|transa[çc][õo]es|extrato)\b`)
	helpPattern = regexp.MustCompile(
		`\b(?:help|ajuda|commands?|comandos?)\b|what can you do`)
)

// rule pairs a match predicate with a parameter extractor. Rules are tried
// in order and the first match wins, so financial queries take precedence
// over generic help when a message matches both.
type rule struct {
	intent  domain.Intent
	pattern *regexp.Regexp
	extract func(match []string) domain.ParsedCommand
}

var rules = []rule{
	{domain.IntentBalance, balancePattern, bare(domain.IntentBalance)},
	{domain.IntentDeposit, depositPattern, extractDeposit},
	{domain.IntentBuy, buyPattern, extractOrder(domain.IntentBuy)},
	{domain.IntentSell, sellPattern, extractOrder(domain.IntentSell)},
	{domain.IntentHistory, historyPattern, bare(domain.IntentHistory)},
	{domain.IntentHelp, helpPattern, bare(domain.IntentHelp)},
}

// Classify matches the trimmed, lowercased message against the fixed rule
// order and returns a fresh ParsedCommand. Messages matching no rule come
// back with IntentUnknown.
func Classify(message string) domain.ParsedCommand {
	raw := strings.TrimSpace(message)
	lower := strings.ToLower(raw)
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(lower); m != nil {
			cmd := r.extract(m)
			cmd.RawText = raw
			return cmd
		}
	}
	return domain.ParsedCommand{Intent: domain.IntentUnknown, RawText: raw}
}

func bare(intent domain.Intent) func([]string) domain.ParsedCommand {
	return func([]string) domain.ParsedCommand {
		return domain.ParsedCommand{Intent: intent}
	}
}

func extractDeposit(m []string) domain.ParsedCommand {
	return domain.ParsedCommand{
		Intent: domain.IntentDeposit,
		Amount: NormalizeNumber(m[1]),
		Symbol: NormalizeSymbol(m[2], DefaultFiatCurrency),
	}
}

// extractOrder distinguishes fiat-denominated orders ("buy 100 usd of btc")
// from asset-denominated ones ("buy 0.01 btc") by whether a fiat code was
// captured alongside the asset symbol.
func extractOrder(intent domain.Intent) func([]string) domain.ParsedCommand {
	return func(m []string) domain.ParsedCommand {
		return domain.ParsedCommand{
			Intent:          intent,
			Amount:          NormalizeNumber(m[1]),
			Symbol:          NormalizeSymbol(m[3], DefaultAssetSymbol),
			FiatDenominated: m[2] != "",
		}
	}
}
