package offers

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"offersheet/internal/catalog"
)

// Cash offers estimate closing costs as a flat percentage of purchase
// price. The normalized closing-costs input feeds the drafting prompt only;
// the validator derives its own figure so the published seller-net math is
// never dependent on drafted numbers.
const closingCostRate = 0.02

// ValidateAndCorrect reconciles the cash figures of a cash-strategy offer
// against the property's payoff obligations and attaches the viability
// verdict. Offers using any other strategy are returned unchanged; their
// arithmetic is owned by the drafting rules and is not re-verified here.
//
// The computation reads only PurchasePrice and the property inputs, never a
// previously written CashAtClosing, so applying it twice yields the same
// offer.
func ValidateAndCorrect(offer Offer, property PropertyData) Offer {
	if offer.Strategy != catalog.StrategyCash {
		return offer
	}

	// A draft with no purchase price reads as zero. That is deliberately
	// absorbed: the reconciliation below then reports a large shortfall and
	// the offer comes back flagged NOT_VIABLE instead of failing the request.
	price := offer.PurchasePrice
	payoff := property.MortgageBalance + property.Arrears
	net := price - payoff - price*closingCostRate
	offer.CashAtClosing = math.Round(net)

	if net < 0 {
		shortfall := math.Abs(math.Round(net))
		offer.ViabilityFlag = NotViable
		offer.ViabilityNote = fmt.Sprintf(
			"Seller would need to bring %s to closing to cover mortgage shortfall", usd(shortfall))
		offer.InvestorNotes = fmt.Sprintf(
			"NOT VIABLE: Purchase price (%s) is less than mortgage + arrears (%s). Seller would owe %s at closing. %s",
			usd(price), usd(payoff), usd(shortfall), offer.InvestorNotes)
		offer.PresentationScript = fmt.Sprintf(
			"Mr. Seller, while I've calculated a cash offer at %s, I need to be transparent with you: "+
				"after paying off your mortgage (%s) and arrears (%s), plus closing costs, you would need to bring "+
				"approximately %s to closing. This is why I believe the other offer I'm presenting would work much "+
				"better for your situation.",
			usd(price), usd(property.MortgageBalance), usd(property.Arrears), usd(shortfall))
		return offer
	}

	offer.ViabilityFlag = Viable
	offer.ViabilityNote = fmt.Sprintf("Seller receives %s cash after all payoffs", usd(math.Round(net)))
	return offer
}

// usd renders a whole-dollar amount with comma grouping, e.g. $268,000.
func usd(v float64) string {
	r := int64(math.Round(v))
	if r < 0 {
		return "-$" + humanize.Comma(-r)
	}
	return "$" + humanize.Comma(r)
}
