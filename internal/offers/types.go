// Package offers implements the offer calculation and validation engine:
// input normalization, drafting-service adaptation, and the deterministic
// cash-offer reconciliation that corrects drafted figures before they are
// shown to a seller.
package offers

import "time"

type Viability string

const (
	Viable    Viability = "VIABLE"
	NotViable Viability = "NOT_VIABLE"
)

// PropertyData carries the property-side inputs. All currency fields are
// whole-dollar amounts and are never negative after normalization.
type PropertyData struct {
	ARV             float64 `json:"arv"`
	MortgageBalance float64 `json:"mortgage_balance"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	Arrears         float64 `json:"arrears"`
	ClosingCosts    float64 `json:"closing_costs"`
	Condition       int     `json:"condition"`
}

type SellerData struct {
	MotivationScore   int      `json:"motivation_score"`
	PainPoint         string   `json:"pain_point"`
	Timeline          string   `json:"timeline"`
	SellerCashRequest float64  `json:"seller_cash_request"`
	Priorities        []string `json:"priorities"`
}

// InvestorCriteria holds the investor's acquisition box. MaxOfferPercent is
// nil when unset; it constrains cash-strategy offers only.
type InvestorCriteria struct {
	MaxOfferPercent *float64 `json:"max_offer_percent"`
	MinProfit       float64  `json:"min_profit"`
	AvailableCash   float64  `json:"available_cash"`
	ExitStrategy    string   `json:"exit_strategy"`
}

type CreativeFinancingTerms struct {
	OptionTermMonths        int     `json:"option_term_months"`
	AdditionalOptionPrice   float64 `json:"additional_option_price"`
	MonthlyPaymentMarkup    float64 `json:"monthly_payment_markup"`
	AdditionalPurchasePrice float64 `json:"additional_purchase_price"`
}

// Request is the fully normalized input for one generation call.
type Request struct {
	StrategyA string
	StrategyB string
	WeightA   int
	WeightB   int
	Property  PropertyData
	Seller    SellerData
	Investor  InvestorCriteria
	Creative  CreativeFinancingTerms
}

// Offer is one drafted purchase scenario. The validation engine overwrites
// CashAtClosing, ViabilityFlag, ViabilityNote and, for non-viable cash
// offers, InvestorNotes and PresentationScript; every other field passes
// through from the draft untouched.
type Offer struct {
	Strategy           string    `json:"strategy"`
	Headline           string    `json:"headline"`
	PurchasePrice      float64   `json:"purchase_price"`
	CashAtClosing      float64   `json:"cash_at_closing"`
	PaymentStructure   string    `json:"payment_structure"`
	TimelineDays       int       `json:"timeline_days"`
	Terms              []string  `json:"terms"`
	SellerBenefits     []string  `json:"seller_benefits"`
	PresentationScript string    `json:"presentation_script"`
	InvestorNotes      string    `json:"investor_notes"`
	ViabilityFlag      Viability `json:"viability_flag,omitempty"`
	ViabilityNote      string    `json:"viability_note,omitempty"`
}

// OfferPair is the engine's output: two validated offers plus presenter
// scripts and audit metadata.
type OfferPair struct {
	OfferA           Offer     `json:"offer_a"`
	OfferB           Offer     `json:"offer_b"`
	ComparisonIntro  string    `json:"comparison_intro"`
	ClosingQuestion  string    `json:"closing_question"`
	GenerationID     string    `json:"generation_id,omitempty"`
	GeneratedAt      time.Time `json:"generated_at"`
	PropertyARV      float64   `json:"property_arv"`
	SellerMotivation int       `json:"seller_motivation"`
}
