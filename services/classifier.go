package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"budgettracker/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const classifierTimeout = 10 * time.Second

// Classifier maps an expense title onto the fixed category set using a
// chat-completions endpoint. It never fails outward: any error, timeout, or
// unrecognized reply degrades to "Other".
type Classifier struct {
	client openai.Client
	apiKey string
	model  string
	log    *slog.Logger
}

func NewClassifier(apiKey, baseURL, model string, log *slog.Logger) *Classifier {
	return &Classifier{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		apiKey: apiKey,
		model:  model,
		log:    log,
	}
}

func (c *Classifier) Categorize(ctx context.Context, title string) string {
	if c.apiKey == "" {
		return models.CategoryOther
	}

	ctx, cancel := context.WithTimeout(ctx, classifierTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(classifierPrompt(title)),
		},
		MaxTokens:   openai.Int(50),
		Temperature: openai.Float(0),
	})
	if err != nil {
		c.log.Warn("expense categorization failed, returning 'Other'", "error", err)
		return models.CategoryOther
	}
	if len(resp.Choices) == 0 {
		c.log.Warn("expense categorization returned no choices")
		return models.CategoryOther
	}

	return NormalizeCategory(resp.Choices[0].Message.Content)
}

func classifierPrompt(title string) string {
	return fmt.Sprintf(`
You are a strict expense classifier. Only respond with one of these categories: %s.
Do NOT write anything else, no explanation, no punctuation, only the category name.

Here are guaranteed examples:
- Facebook Ads => Marketing
- Google Ads Campaign => Marketing
- Laptop => Tech
- Software Subscription => Tech
- Recruitment Fee => HR
- Training Course => HR
- Office Rent => Operations
- Electricity Bill => Operations

Now categorize this expense: %q
`, strings.Join(models.ValidCategories, ", "), title)
}

var nonAlpha = regexp.MustCompile(`[^a-zA-Z]`)

// NormalizeCategory strips non-alphabetic characters from a model reply and
// matches it case-insensitively onto the canonical label set. Anything else
// is "Other".
func NormalizeCategory(raw string) string {
	cleaned := nonAlpha.ReplaceAllString(raw, "")
	for _, c := range models.ValidCategories {
		if strings.EqualFold(cleaned, c) {
			return c
		}
	}
	return models.CategoryOther
}
