package offers

import (
	"errors"
	"testing"
)

const validDraft = `{
  "offer_a": {
    "strategy": "cash",
    "headline": "Clean cash close",
    "purchase_price": 270000,
    "cash_at_closing": 9999,
    "payment_structure": "All cash at closing",
    "timeline_days": 14,
    "terms": ["As-is"],
    "seller_benefits": ["Speed"],
    "presentation_script": "Mr. Seller...",
    "investor_notes": "Hold firm."
  },
  "offer_b": {
    "strategy": "subject_to",
    "headline": "Take over payments",
    "purchase_price": 263000,
    "cash_at_closing": 5000,
    "payment_structure": "Payoff at closing",
    "timeline_days": 21,
    "terms": ["Subject to"],
    "seller_benefits": ["Debt relief"],
    "presentation_script": "Mr. Seller...",
    "investor_notes": "Verify note terms."
  },
  "comparison_intro": "Two ways to solve this.",
  "closing_question": "Which works better for you?"
}`

func TestParseDraftValid(t *testing.T) {
	pair, err := ParseDraft(validDraft)
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if pair.OfferA.Strategy != "cash" || pair.OfferB.Strategy != "subject_to" {
		t.Fatalf("strategies = %q/%q", pair.OfferA.Strategy, pair.OfferB.Strategy)
	}
	if pair.OfferA.PurchasePrice != 270000 {
		t.Fatalf("offer A price = %v", pair.OfferA.PurchasePrice)
	}
	if pair.ComparisonIntro == "" || pair.ClosingQuestion == "" {
		t.Fatal("presenter scripts missing")
	}
}

func TestParseDraftStripsCodeFences(t *testing.T) {
	pair, err := ParseDraft("```json\n" + validDraft + "\n```")
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if pair.OfferB.TimelineDays != 21 {
		t.Fatalf("offer B timeline = %d", pair.OfferB.TimelineDays)
	}
}

func TestParseDraftMissingOfferB(t *testing.T) {
	_, err := ParseDraft(`{"offer_a": {"strategy": "cash"}}`)
	var oe *Error
	if !errors.As(err, &oe) || oe.Code != CodeMalformedDraft {
		t.Fatalf("expected malformed_draft error, got %v", err)
	}
	if oe.Status != 502 {
		t.Fatalf("status = %d, want 502", oe.Status)
	}
}

func TestParseDraftInvalidJSON(t *testing.T) {
	_, err := ParseDraft("I would suggest two offers...")
	var oe *Error
	if !errors.As(err, &oe) || oe.Code != CodeMalformedDraft {
		t.Fatalf("expected malformed_draft error, got %v", err)
	}
}

func TestParseDraftEmptyResponse(t *testing.T) {
	_, err := ParseDraft("   ")
	var oe *Error
	if !errors.As(err, &oe) || oe.Code != CodeMalformedDraft {
		t.Fatalf("expected malformed_draft error, got %v", err)
	}
}

func TestParseDraftMissingPriceDefaultsToZero(t *testing.T) {
	pair, err := ParseDraft(`{"offer_a": {"strategy": "cash"}, "offer_b": {"strategy": "subject_to"}}`)
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if pair.OfferA.PurchasePrice != 0 {
		t.Fatalf("missing purchase_price should read as 0, got %v", pair.OfferA.PurchasePrice)
	}
}

func TestStripCodeFences(t *testing.T) {
	in := "```json\n{\"a\":1}\n```"
	if got := stripCodeFences(in); got != `{"a":1}` {
		t.Fatalf("unexpected: %q", got)
	}
	if got := stripCodeFences(`{"a":1}`); got != `{"a":1}` {
		t.Fatalf("plain JSON should pass through: %q", got)
	}
}

func TestNewAnthropicDrafterFromEnvRequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropicDrafterFromEnv(); err == nil {
		t.Fatal("expected error without ANTHROPIC_API_KEY")
	}
}
