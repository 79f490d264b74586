package offers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"offersheet/internal/catalog"
)

// Generator runs the full request pipeline: normalize the raw inputs,
// compose and send the drafting request, parse the untrusted draft, and
// reconcile cash-strategy figures. Each call operates on request-scoped
// values only; a Generator is safe for concurrent use.
type Generator struct {
	catalog      *catalog.Catalog
	drafter      Drafter
	draftTimeout time.Duration
	now          func() time.Time
	newID        func() string
}

func NewGenerator(cat *catalog.Catalog, drafter Drafter, draftTimeout time.Duration) *Generator {
	return &Generator{
		catalog:      cat,
		drafter:      drafter,
		draftTimeout: draftTimeout,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

func (g *Generator) Generate(ctx context.Context, raw map[string]any) (OfferPair, error) {
	req, err := Normalize(raw, g.catalog)
	if err != nil {
		return OfferPair{}, err
	}
	prompt, err := ComposePrompt(req, g.catalog)
	if err != nil {
		return OfferPair{}, err
	}

	draftCtx := ctx
	if g.draftTimeout > 0 {
		var cancel context.CancelFunc
		draftCtx, cancel = context.WithTimeout(ctx, g.draftTimeout)
		defer cancel()
	}
	draft, err := g.drafter.DraftJSON(draftCtx, prompt)
	if err != nil {
		return OfferPair{}, NewDraftingFailureError(err)
	}

	pair, err := ParseDraft(draft)
	if err != nil {
		return OfferPair{}, err
	}

	pair.OfferA = ValidateAndCorrect(pair.OfferA, req.Property)
	pair.OfferB = ValidateAndCorrect(pair.OfferB, req.Property)

	pair.GenerationID = g.newID()
	pair.GeneratedAt = g.now().UTC()
	pair.PropertyARV = req.Property.ARV
	pair.SellerMotivation = req.Seller.MotivationScore
	return pair, nil
}
