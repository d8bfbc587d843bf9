// Package agent drafts ledger transactions from free-form text using a
// Gemini model. The model only ever produces a draft; nothing is applied
// until the user confirms it.
package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Drafter turns a natural-language description into a transaction draft.
type Drafter struct {
	client *genai.Client
	model  string
}

// NewDrafter creates a drafter on an initialized Gemini client.
func NewDrafter(client *genai.Client, model string) *Drafter {
	return &Drafter{client: client, model: model}
}

const systemInstruction = `You convert one natural-language sentence about a personal
finance event into a single JSON transaction draft. Use only information
present in the sentence. If the amount is missing or ambiguous, return
{"type": ""} instead of guessing. Amounts are decimal strings without a
currency symbol. Dates are YYYY-MM-DD; omit the date when the sentence
does not name one.`

// draftSchema constrains the model to the draft JSON shape.
var draftSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"type":        {Type: genai.TypeString, Description: "INCOME, EXPENSE, INVESTMENT or TRANSFER."},
		"description": {Type: genai.TypeString},
		"amount":      {Type: genai.TypeString, Description: "Decimal amount, e.g. 42.50."},
		"date":        {Type: genai.TypeString, Description: "YYYY-MM-DD, empty for today."},
		"category":    {Type: genai.TypeString},
		"account":     {Type: genai.TypeString, Description: "Account name mentioned, if any."},
		"card":        {Type: genai.TypeString, Description: "Card name mentioned, if any."},
		"ticker":      {Type: genai.TypeString},
		"quantity":    {Type: genai.TypeString},
		"action":      {Type: genai.TypeString, Description: "BUY or SELL for investments."},
		"fromAccount": {Type: genai.TypeString},
		"toAccount":   {Type: genai.TypeString},
	},
	Required: []string{"type"},
}

// Draft asks the model for a transaction draft. It returns an error when the
// model cannot extract an unambiguous transaction from the text.
func (d *Drafter) Draft(ctx context.Context, text string) (*Draft, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    draftSchema,
	}

	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("drafting failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from model %s", d.model)
	}
	return parseDraft(resp.Candidates[0].Content.Parts[0].Text)
}

// stripFences removes a markdown code fence around a JSON payload; models
// add one despite the JSON response type.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
