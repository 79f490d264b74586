package offers

import (
	"fmt"
	"strings"

	"offersheet/internal/catalog"
)

// ComposePrompt builds the drafting-service instruction set for one request.
// The rules here are the drafting side of the contract: the engine
// re-verifies cash-offer arithmetic after the fact, every other strategy's
// numbers are governed only by these instructions.
func ComposePrompt(req Request, cat *catalog.Catalog) (string, error) {
	infoA, err := cat.Lookup(req.StrategyA)
	if err != nil {
		return "", err
	}
	infoB, err := cat.Lookup(req.StrategyB)
	if err != nil {
		return "", err
	}

	maxOffer := "none"
	if req.Investor.MaxOfferPercent != nil {
		maxOffer = fmt.Sprintf("%.0f%% of ARV (only applies to all-cash offers)", *req.Investor.MaxOfferPercent)
	}

	var b strings.Builder
	b.WriteString("You are an expert real estate investor creating strategic offer scenarios.\n\n")

	fmt.Fprintf(&b, `PROPERTY DETAILS:
- ARV (After Repair Value): %s
- Current Mortgage: %s
- Arrears/Back Payments: %s
- Monthly Payment: %s
- Estimated Closing Costs: %s
- Property Condition: %d/10

`,
		usd(req.Property.ARV), usd(req.Property.MortgageBalance), usd(req.Property.Arrears),
		usd(req.Property.MonthlyPayment), usd(req.Property.ClosingCosts), req.Property.Condition)

	fmt.Fprintf(&b, `SELLER SITUATION:
- Motivation Score: %d/10
- Primary Pain Point: %s
- Timeline: %s
- Seller's Cash Request: %s
- Priorities: %s

`,
		req.Seller.MotivationScore, req.Seller.PainPoint, req.Seller.Timeline,
		usd(req.Seller.SellerCashRequest), strings.Join(req.Seller.Priorities, ", "))

	fmt.Fprintf(&b, `INVESTOR CRITERIA:
- Max Cash Offer: %s
- Minimum Profit Target: %s
- Available Cash: %s
- Exit Strategy: %s

`,
		maxOffer, usd(req.Investor.MinProfit), usd(req.Investor.AvailableCash), req.Investor.ExitStrategy)

	fmt.Fprintf(&b, `CREATIVE FINANCING TERMS:
- Option Term: %d months (for Lease Option)
- Additional Option Price: %s (for Lease Option)
- Monthly Payment Markup: %s (for Seller Financing Wrap)
- Additional Purchase Price: %s (for Seller Financing Wrap)

`,
		req.Creative.OptionTermMonths, usd(req.Creative.AdditionalOptionPrice),
		usd(req.Creative.MonthlyPaymentMarkup), usd(req.Creative.AdditionalPurchasePrice))

	fmt.Fprintf(&b, `OFFER STRATEGIES:
Offer A: %s (Weight: %d%% - %s)
Offer B: %s (Weight: %d%% - %s)

`,
		infoA.Name, req.WeightA, weightLabel(req.WeightA),
		infoB.Name, req.WeightB, weightLabel(req.WeightB))

	fmt.Fprintf(&b, `INSTRUCTIONS:
Generate TWO complete offer scenarios using the EXACT strategies specified above (Offer A and Offer B).

IMPORTANT: You MUST use the strategy specified for each offer:
- Offer A MUST use the strategy: %s
- Offer B MUST use the strategy: %s
- DO NOT auto-generate variations of the same strategy unless BOTH offers use the same strategy

The weighting determines relative attractiveness:
- Higher weight (>50%%) = More attractive terms for seller (higher price, more cash, faster close, better terms)
- Lower weight (<50%%) = Less attractive but still legitimate (lower price, less cash, longer timeline)
- Equal weight (50/50) = Both equally attractive with different benefits

`, infoA.Name, infoB.Name)

	b.WriteString(`IMPORTANT CALCULATION RULES:

FOR SUBJECT-TO OFFERS:
- Purchase price = Mortgage Balance + Arrears (you're handling the mortgage payments)
- Cash at closing - STRATEGIC VARIATION when BOTH offers are Subject-To, trading CASH TIMING against CASH AMOUNT:
  * HIGHER WEIGHT OFFER ("All Cash Now"): 90-100% of seller's cash request, 100% paid at closing
  * LOWER WEIGHT OFFER ("More Money, But Wait"): 105-120% of seller's cash request in total,
    split 40-50% at closing + 50-60% in 60 days. Its total MUST exceed the upfront offer's total,
    and its closing amount MUST be less than the upfront offer's closing amount.
  * EQUAL WEIGHTS (50/50): BOTH offers get 100% of the request, paid upfront, no split
  * If only ONE offer is Subject-To: use the seller's cash request as-is or adjust by weight
- The split offer's closing payment is ALWAYS less than the upfront offer's closing payment;
  that is the trade-off: "Take less now, or wait for more"

FOR LEASE OPTION OFFERS:
- Monthly lease payment = Current PITI (mortgage payment)
- Option price = Mortgage Balance + Additional Option Price
- Option term = the user-specified months above
- NO upfront option fee or option payment at closing ($0)
- If BOTH offers are Lease Option: vary the additional option price (80% and 120%)
- Structure: "Lease for $X/month with option to purchase for $Y within Z months"

FOR SELLER FINANCING (WRAP) OFFERS:
- This is a WRAP mortgage - seller keeps existing mortgage, you pay seller, seller pays their mortgage
- Monthly payment to seller = PITI + Monthly Payment Markup
- Purchase price = Mortgage Balance + Additional Purchase Price
- Interest rate and term = same as the seller's existing note
- If BOTH offers are Seller Financing: vary the markup and additional price (80% and 120%)

FOR ALL-CASH OFFERS:
- Base calculation: Purchase price = ARV x Max Cash Offer Percentage
- Cash at closing = Purchase price - Mortgage Balance - Arrears - Closing Costs
- If cash at closing is negative, this offer is NOT viable (seller would owe money at closing)
- Closing costs reduce what the seller nets, so factor them into the purchase price
- Consider the seller's cash request: higher weight targets 100-110% of it, lower weight 80-95%,
  equal weight 95-100%. Adjust the purchase price DOWN toward a reasonable amount when the
  ARV-based figure wildly exceeds the request; the cash at closing shown to the seller is what
  they NET after all costs are paid.

For each offer, provide:
1. Purchase price (calculated per rules above)
2. Cash at closing (what seller receives after mortgage/arrears payoff)
3. Payment structure (for Subject-To, include split payment details if applicable)
4. Closing timeline
5. Key terms and conditions
6. 3-4 seller benefits (why this works for them)
7. Presentation script
8. Strategic notes for investor (negotiation tips, fallback positions)

CRITICAL - PRESENTATION SCRIPT ACCURACY:
- ONLY claim "more than your request" or "exceeds your request" if total cash ACTUALLY exceeds the seller's cash request
- If total cash EQUALS the request, emphasize OTHER benefits (timing flexibility, certainty, speed) instead
- NEVER use "bonus" or "additional" language when offering LESS than the request;
  a bonus exists only when total cash exceeds the request
- NEVER make false claims about amounts - verify the math before writing scripts

`)

	fmt.Fprintf(&b, `Return ONLY valid JSON in this exact format:
{
  "offer_a": {
    "strategy": "%s",
    "headline": "Compelling headline for this offer",
    "purchase_price": 100000,
    "cash_at_closing": 5000,
    "payment_structure": "Description of payment terms",
    "timeline_days": 14,
    "terms": ["Term 1", "Term 2", "Term 3"],
    "seller_benefits": ["Benefit 1", "Benefit 2", "Benefit 3"],
    "presentation_script": "Mr. Seller, this option...",
    "investor_notes": "Strategic guidance for investor"
  },
  "offer_b": {
    "strategy": "%s",
    "headline": "Compelling headline for this offer",
    "purchase_price": 95000,
    "cash_at_closing": 3000,
    "payment_structure": "Description of payment terms",
    "timeline_days": 10,
    "terms": ["Term 1", "Term 2", "Term 3"],
    "seller_benefits": ["Benefit 1", "Benefit 2", "Benefit 3"],
    "presentation_script": "Mr. Seller, this option...",
    "investor_notes": "Strategic guidance for investor"
  },
  "comparison_intro": "Brief intro script for presenting both offers together",
  "closing_question": "Question to ask after presenting both offers"
}`, req.StrategyA, req.StrategyB)

	return b.String(), nil
}

func weightLabel(weight int) string {
	switch {
	case weight > 50:
		return "MORE attractive"
	case weight < 50:
		return "LESS attractive"
	default:
		return "EQUALLY attractive"
	}
}
