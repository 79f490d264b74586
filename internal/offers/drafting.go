package offers

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const draftSystemPrompt = "You are an expert real estate investor and negotiation strategist. " +
	"Generate realistic, strategic offer scenarios in valid JSON format."

// Drafter is the offer drafting service: given the composed instruction set
// it returns the raw structured-JSON draft. Its output is untrusted; the
// validation engine owns the numbers.
type Drafter interface {
	DraftJSON(ctx context.Context, prompt string) (string, error)
}

type AnthropicDrafter struct {
	messages AnthropicMessager
}

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

func NewAnthropicDrafter(messages AnthropicMessager) *AnthropicDrafter {
	return &AnthropicDrafter{messages: messages}
}

func NewAnthropicDrafterFromEnv() (*AnthropicDrafter, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicDrafter{messages: &c.Messages}, nil
}

// DraftJSON makes a single attempt; the deadline comes in on ctx and
// failures propagate to the caller unretried.
func (d *AnthropicDrafter) DraftJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := d.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   2048,
		System:      []anthropic.TextBlockParam{{Text: draftSystemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0.7),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

type draftEnvelope struct {
	OfferA          *Offer `json:"offer_a"`
	OfferB          *Offer `json:"offer_b"`
	ComparisonIntro string `json:"comparison_intro"`
	ClosingQuestion string `json:"closing_question"`
}

// ParseDraft decodes a drafting response into an OfferPair. A response that
// is not a JSON object or lacks either offer key fails with MalformedDraft;
// missing fields inside a present offer are tolerated and default to zero
// values for the validator to absorb.
func ParseDraft(raw string) (OfferPair, error) {
	clean := stripCodeFences(raw)
	if strings.TrimSpace(clean) == "" {
		return OfferPair{}, NewMalformedDraftError("drafting service returned an empty response")
	}
	var env draftEnvelope
	if err := json.Unmarshal([]byte(clean), &env); err != nil {
		return OfferPair{}, NewMalformedDraftError("drafting service returned invalid JSON: " + err.Error())
	}
	if env.OfferA == nil || env.OfferB == nil {
		return OfferPair{}, NewMalformedDraftError("draft is missing offer_a or offer_b")
	}
	return OfferPair{
		OfferA:          *env.OfferA,
		OfferB:          *env.OfferB,
		ComparisonIntro: env.ComparisonIntro,
		ClosingQuestion: env.ClosingQuestion,
	}, nil
}

// Models often wrap JSON in markdown fences despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}
