// Package catalog holds the fixed reference data for the five financing
// strategies. It is the single source of truth for the human-facing strategy
// names used in generated and rendered text.
package catalog

import (
	"errors"
	"fmt"
)

const (
	StrategyCash            = "cash"
	StrategySubjectTo       = "subject_to"
	StrategyLeaseOption     = "lease_option"
	StrategySellerFinancing = "seller_financing"
	StrategyHybrid          = "hybrid"
)

var ErrNotFound = errors.New("strategy not found")

// StrategyInfo describes a financing strategy for presenters and the UI.
type StrategyInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	WhenToUse   string   `json:"when_to_use"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
}

// Catalog is an immutable set of strategy entries, safe for concurrent reads.
type Catalog struct {
	entries map[string]StrategyInfo
}

func New() *Catalog {
	return &Catalog{entries: map[string]StrategyInfo{
		StrategyCash: {
			Name:        "All Cash",
			Description: "Traditional cash purchase - fastest and simplest",
			WhenToUse:   "High motivation, needs speed, wants certainty",
			Pros:        []string{"Fastest close", "No financing contingencies", "Simplest transaction"},
			Cons:        []string{"Requires capital", "Usually lowest price", "Limited flexibility"},
		},
		StrategySubjectTo: {
			Name:        "Subject-To (Handle The Mortgage Payments)",
			Description: "Handle existing mortgage payments until refinance or resale",
			WhenToUse:   "Seller has equity, good loan terms, needs debt relief",
			Pros:        []string{"Low cash needed", "Leverage existing financing", "Can offer higher price"},
			Cons:        []string{"Due-on-sale risk", "Requires seller trust", "More complex"},
		},
		StrategyLeaseOption: {
			Name:        "Lease Option",
			Description: "Lease property with option to purchase later",
			WhenToUse:   "Low cash available, seller flexible on timing, needs income",
			Pros:        []string{"Minimal cash needed", "Control without ownership", "Time to improve property"},
			Cons:        []string{"No immediate ownership", "Monthly payments", "Seller retains title"},
		},
		StrategySellerFinancing: {
			Name:        "Seller Financing",
			Description: "Seller acts as the bank and carries a note",
			WhenToUse:   "Seller owns free and clear, wants income stream, flexible",
			Pros:        []string{"Creative terms possible", "Lower down payment", "Seller gets interest"},
			Cons:        []string{"Seller retains lien", "Monthly payments", "Requires seller trust"},
		},
		StrategyHybrid: {
			Name:        "Hybrid (Cash + Terms)",
			Description: "Combination of cash and creative financing",
			WhenToUse:   "Moderate motivation, some cash available, needs flexibility",
			Pros:        []string{"Balanced approach", "Flexible structure", "Appeals to more sellers"},
			Cons:        []string{"More complex", "Requires negotiation", "Medium cash needed"},
		},
	}}
}

// Lookup returns the entry for tag, or ErrNotFound for unknown tags.
func (c *Catalog) Lookup(tag string) (StrategyInfo, error) {
	info, ok := c.entries[tag]
	if !ok {
		return StrategyInfo{}, fmt.Errorf("%q: %w", tag, ErrNotFound)
	}
	return info, nil
}

func (c *Catalog) Has(tag string) bool {
	_, ok := c.entries[tag]
	return ok
}

// Entries returns a copy of the full catalog keyed by strategy tag.
func (c *Catalog) Entries() map[string]StrategyInfo {
	out := make(map[string]StrategyInfo, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}
