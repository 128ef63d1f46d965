package codec

import (
	"math"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/solatis/typedprops/internal/types"
)

// FallbackCurrency is used when no default currency is configured.
const FallbackCurrency = "USD"

// Currency parses and formats currency amounts. Bare scalars upgrade to the
// configured default currency; display abbreviates large magnitudes with
// K/M/B suffixes using locale-aware grouping.
var Currency = Codec{
	Parse:  parseCurrency,
	Format: formatCurrency,
}

func parseCurrency(raw any, cfg Config) any {
	def := cfg.DefaultCurrency
	if def == "" {
		def = FallbackCurrency
	}

	switch v := raw.(type) {
	case nil:
		return nil
	case types.CurrencyValue:
		if v.Currency == "" {
			v.Currency = def
		}
		return v
	case map[string]any:
		amount, currency := v["value"], v["currency"]
		if emptyField(amount) && emptyField(currency) {
			return nil
		}
		out := types.CurrencyValue{Currency: def}
		if n, ok := asNumber(amount); ok {
			out.Amount = n
		}
		if s, ok := asString(currency); ok && s != "" {
			out.Currency = s
		}
		return out
	default:
		// Bare scalar upgrade path for values stored before the property
		// was typed as currency.
		if n, ok := asNumber(raw); ok {
			return types.CurrencyValue{Amount: n, Currency: def}
		}
		return nil
	}
}

func formatCurrency(v any, cfg Config) string {
	cur, ok := v.(types.CurrencyValue)
	if !ok {
		if parsed := parseCurrency(v, cfg); parsed != nil {
			cur = parsed.(types.CurrencyValue)
		} else {
			return ""
		}
	}

	symbol := cur.Currency
	if s, ok := cfg.Symbols[cur.Currency]; ok {
		symbol = s
	}
	return symbol + abbreviate(cur.Amount, cfg)
}

// abbreviate renders a compact magnitude: 1234567 -> "1.23M". Values under
// a thousand keep locale grouping with at most two fraction digits.
func abbreviate(n float64, cfg Config) string {
	abs := math.Abs(n)
	suffix := ""
	val := n
	switch {
	case abs >= 1_000_000_000:
		val = n / 1_000_000_000
		suffix = "B"
	case abs >= 1_000_000:
		val = n / 1_000_000
		suffix = "M"
	case abs >= 1_000:
		val = n / 1_000
		suffix = "K"
	}

	p := message.NewPrinter(cfg.locale())
	formatted := p.Sprint(number.Decimal(val,
		number.MaxFractionDigits(2),
		number.MinFractionDigits(0),
	))
	return formatted + suffix
}
