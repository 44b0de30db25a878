package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
)

const (
	messagesPath       = "/v1/messages"
	defaultTemperature = 0.7
)

type messageRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type generativeAdapter struct {
	client *utils.HTTPClient

	apiKey     string
	apiVersion string
	model      string
	maxTokens  int

	logger *logger.Logger
}

// NewGenerativeAdapter constructs a [GenerativeAdapter] talking to the
// messages API at cfg.BaseURL. An empty cfg.APIKey is accepted; every call
// then fails with [ErrNotConfigured].
func NewGenerativeAdapter(cfg config.Generative, log *logger.Logger) GenerativeAdapter {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.RequestTimeout)

	return &generativeAdapter{
		client:     client,
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		logger:     log,
	}
}

func (g *generativeAdapter) SuggestAlternatives(ctx context.Context, items []models.HighWasteItem) ([]models.PackagingAlternative, error) {
	if g.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if len(items) == 0 {
		return []models.PackagingAlternative{}, nil
	}

	body := messageRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: defaultTemperature,
		Messages:    []message{{Role: "user", Content: buildAlternativesPrompt(items)}},
	}

	var result messageResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", g.apiKey).
		SetHeader("anthropic-version", g.apiVersion).
		SetBody(body).
		SetResult(&result).
		Post(messagesPath)
	if err != nil {
		return nil, fmt.Errorf("alternatives request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Err(err).Str("func", "generativeAdapter.SuggestAlternatives").Int("status", resp.StatusCode()).Msg("model returned an error")
		return nil, err
	}

	if len(result.Content) == 0 || result.Content[0].Text == "" {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidResponse)
	}

	raw, err := extractJSON(result.Content[0].Text)
	if err != nil {
		return nil, err
	}

	var parsed models.AlternativesResponse
	if err = json.Unmarshal([]byte(raw), &parsed); err != nil {
		g.logger.Err(err).Str("func", "generativeAdapter.SuggestAlternatives").Str("raw", raw).Msg("cannot decode model output")
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if parsed.Alternatives == nil {
		parsed.Alternatives = []models.PackagingAlternative{}
	}

	return parsed.Alternatives, nil
}

// extractJSON cuts the text between the first '{' and the last '}'.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("%w: no JSON object in model output", ErrInvalidResponse)
	}

	return text[start : end+1], nil
}

func buildAlternativesPrompt(items []models.HighWasteItem) string {
	described := make([]string, 0, len(items))
	for _, item := range items {
		packaging := item.PackagingLabel
		if packaging == "" {
			packaging = item.PackagingType
		}
		described = append(described, fmt.Sprintf("%s (currently packaged in: %s)", item.FoodItemName, packaging))
	}

	return fmt.Sprintf(`You are a sustainability expert helping users reduce packaging waste. Given these food items with high-waste packaging:

%s

For each item, suggest better packaging alternatives following this JSON format strictly:
{
  "alternatives": [
    {
      "foodItem": "Item name",
      "currentPackaging": "Current packaging type (as provided in input, e.g., Plastic - Film)",
      "suggestedAlternative": "Better packaging option",
      "reasoning": "Why this alternative is better (brief)",
      "impactReduction": "Environmental benefit (e.g., '70%% less plastic waste')",
      "whereToFind": "Where to find this alternative (specific stores/brands if possible, or general advice like 'Bulk section of grocery stores')",
      "difficultyLevel": "Easy/Medium/Hard"
    }
  ]
}

Focus on practical, realistic alternatives available in most areas. Consider bulk stores, farmer's markets, specific brands, or different store sections.
Ensure the output is a valid JSON object starting with { and ending with }. Do not include any text before or after the JSON structure.`,
		strings.Join(described, ", "))
}
