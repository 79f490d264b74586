package offers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"offersheet/internal/catalog"
)

// Per-field defaults applied when a value is absent or unparsable.
const (
	defaultCondition        = 5
	defaultClosingCosts     = 3000
	defaultMotivation       = 5
	defaultMinProfit        = 20000
	defaultAvailableCash    = 10000
	defaultExitStrategy     = "flip"
	defaultOptionTermMonths = 36
	defaultWeight           = 50
)

// Normalize converts a raw generate-request map into typed inputs. Every
// numeric field falls back to its documented default; only the two strategy
// selectors are required and must be catalog keys. The transformation is
// pure: raw is never mutated.
func Normalize(raw map[string]any, cat *catalog.Catalog) (Request, error) {
	strategyA := strings.TrimSpace(stringField(raw, "offer_a_strategy", ""))
	strategyB := strings.TrimSpace(stringField(raw, "offer_b_strategy", ""))
	if strategyA == "" || !cat.Has(strategyA) {
		return Request{}, NewMissingStrategyError("offer_a_strategy", strategyA)
	}
	if strategyB == "" || !cat.Has(strategyB) {
		return Request{}, NewMissingStrategyError("offer_b_strategy", strategyB)
	}

	req := Request{
		StrategyA: strategyA,
		StrategyB: strategyB,
		WeightA:   intField(raw, "offer_a_weight", defaultWeight),
		WeightB:   intField(raw, "offer_b_weight", defaultWeight),
		Property: PropertyData{
			ARV:             nonNegative(floatField(raw, "arv", 0)),
			MortgageBalance: nonNegative(floatField(raw, "mortgage_balance", 0)),
			MonthlyPayment:  nonNegative(floatField(raw, "monthly_payment", 0)),
			Arrears:         nonNegative(floatField(raw, "arrears", 0)),
			ClosingCosts:    nonNegative(floatField(raw, "closing_costs", defaultClosingCosts)),
			Condition:       intField(raw, "condition", defaultCondition),
		},
		Seller: SellerData{
			MotivationScore:   intField(raw, "motivation", defaultMotivation),
			PainPoint:         stringField(raw, "pain_point", ""),
			Timeline:          stringField(raw, "timeline", ""),
			SellerCashRequest: nonNegative(floatField(raw, "seller_cash_request", 0)),
			Priorities:        stringsField(raw, "priorities"),
		},
		Investor: InvestorCriteria{
			MaxOfferPercent: optionalFloatField(raw, "max_offer_pct"),
			MinProfit:       floatField(raw, "min_profit", defaultMinProfit),
			AvailableCash:   floatField(raw, "available_cash", defaultAvailableCash),
			ExitStrategy:    stringField(raw, "exit_strategy", defaultExitStrategy),
		},
		Creative: CreativeFinancingTerms{
			OptionTermMonths:        intField(raw, "option_term_months", defaultOptionTermMonths),
			AdditionalOptionPrice:   nonNegative(floatField(raw, "additional_option_price", 0)),
			MonthlyPaymentMarkup:    nonNegative(floatField(raw, "monthly_payment_markup", 0)),
			AdditionalPurchasePrice: nonNegative(floatField(raw, "additional_purchase_price", 0)),
		},
	}
	return req, nil
}

func nonNegative(v float64) float64 {
	return math.Max(v, 0)
}

// parseNumber coerces the loose shapes a decoded JSON map can hold. UI
// clients send numeric fields as both numbers and strings.
func parseNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func floatField(raw map[string]any, key string, def float64) float64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	f, ok := parseNumber(v)
	if !ok {
		return def
	}
	return f
}

func intField(raw map[string]any, key string, def int) int {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	f, ok := parseNumber(v)
	if !ok {
		return def
	}
	return int(f)
}

// optionalFloatField returns nil for absent, blank, zero, or unparsable
// values. A zero max-offer percentage means "no cap", matching the caller
// convention of sending an empty field to disable it.
func optionalFloatField(raw map[string]any, key string) *float64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	f, ok := parseNumber(v)
	if !ok || f == 0 {
		return nil
	}
	return &f
}

func stringField(raw map[string]any, key, def string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func stringsField(raw map[string]any, key string) []string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
