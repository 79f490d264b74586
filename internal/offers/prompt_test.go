package offers

import (
	"strings"
	"testing"

	"offersheet/internal/catalog"
)

func promptRequest() Request {
	pct := 70.0
	return Request{
		StrategyA: catalog.StrategySubjectTo,
		StrategyB: catalog.StrategySubjectTo,
		WeightA:   70,
		WeightB:   30,
		Property: PropertyData{
			ARV:             325000,
			MortgageBalance: 260000,
			Arrears:         3000,
			MonthlyPayment:  1850,
			ClosingCosts:    3000,
			Condition:       6,
		},
		Seller: SellerData{
			MotivationScore:   8,
			PainPoint:         "foreclosure",
			Timeline:          "30 days",
			SellerCashRequest: 5000,
			Priorities:        []string{"speed", "debt relief"},
		},
		Investor: InvestorCriteria{MaxOfferPercent: &pct, MinProfit: 20000, AvailableCash: 10000, ExitStrategy: "flip"},
		Creative: CreativeFinancingTerms{OptionTermMonths: 36},
	}
}

func TestComposePromptWeightLabels(t *testing.T) {
	prompt, err := ComposePrompt(promptRequest(), catalog.New())
	if err != nil {
		t.Fatalf("ComposePrompt: %v", err)
	}
	if !strings.Contains(prompt, "Weight: 70% - MORE attractive") {
		t.Fatal("higher weight not labeled MORE attractive")
	}
	if !strings.Contains(prompt, "Weight: 30% - LESS attractive") {
		t.Fatal("lower weight not labeled LESS attractive")
	}
}

func TestComposePromptEqualWeightLabel(t *testing.T) {
	req := promptRequest()
	req.WeightA, req.WeightB = 50, 50
	prompt, err := ComposePrompt(req, catalog.New())
	if err != nil {
		t.Fatalf("ComposePrompt: %v", err)
	}
	if strings.Count(prompt, "EQUALLY attractive") != 2 {
		t.Fatal("equal weights not labeled EQUALLY attractive")
	}
}

func TestComposePromptCarriesStrategyRules(t *testing.T) {
	prompt, err := ComposePrompt(promptRequest(), catalog.New())
	if err != nil {
		t.Fatalf("ComposePrompt: %v", err)
	}
	for _, want := range []string{
		"FOR SUBJECT-TO OFFERS:",
		"FOR LEASE OPTION OFFERS:",
		"FOR SELLER FINANCING (WRAP) OFFERS:",
		"FOR ALL-CASH OFFERS:",
		"Purchase price = Mortgage Balance + Arrears",
		"Seller's Cash Request: $5,000",
		"70% of ARV (only applies to all-cash offers)",
		`"offer_a"`,
		`"offer_b"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestComposePromptNoMaxOfferCap(t *testing.T) {
	req := promptRequest()
	req.Investor.MaxOfferPercent = nil
	prompt, err := ComposePrompt(req, catalog.New())
	if err != nil {
		t.Fatalf("ComposePrompt: %v", err)
	}
	if !strings.Contains(prompt, "Max Cash Offer: none") {
		t.Fatal("unset max offer percent should read as none")
	}
}

func TestComposePromptUnknownStrategyFails(t *testing.T) {
	req := promptRequest()
	req.StrategyA = "wholesale"
	if _, err := ComposePrompt(req, catalog.New()); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
