package enhance

import (
	"context"
	"fmt"
	"strings"

	"resumecraft/internal/config"
	appErrors "resumecraft/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini. It asks for a plain
// text rewrite and returns the response verbatim.
type GeminiProvider struct {
	client *genai.Client
	config *config.EnhanceConfig
	logger *appErrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance.
func NewGeminiProvider(cfg *config.EnhanceConfig, logger *appErrors.Logger) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, appErrors.NewConfigError(appErrors.ErrCodeMissingAPIKey,
			"Gemini provider requires an API key", nil)
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, appErrors.NewEnhanceError(appErrors.ErrCodeEnhanceFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

func (g *GeminiProvider) Name() string { return "gemini" }

// Enhance sends the section content to Gemini with the per-section prompt.
// There is no retry; transient failures propagate to the breaker and session.
func (g *GeminiProvider) Enhance(ctx context.Context, req Request) (Response, error) {
	tracer := otel.Tracer("resumecraft.enhance.gemini")
	ctx, span := tracer.Start(ctx, "gemini.enhance")
	defer span.End()

	span.SetAttributes(
		attribute.String("enhance.provider", "gemini"),
		attribute.String("enhance.model", g.config.Model),
		attribute.String("enhance.section", req.Section),
		attribute.Int("enhance.content_length", len(req.Content)),
	)

	genaiConfig := &genai.GenerateContentConfig{
		Temperature:       g.config.Temperature,
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
	}

	callCtx, cancel := context.WithTimeout(ctx, *g.config.Timeout)
	defer cancel()

	userPrompt := fmt.Sprintf(promptFor(strings.ToLower(req.Section)), req.Content)
	result, err := g.client.Models.GenerateContent(callCtx, g.config.Model, genai.Text(userPrompt), genaiConfig)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return Response{}, appErrors.NewEnhanceError(appErrors.ErrCodeEnhanceFailed,
			"Failed to generate enhanced content", err).
			WithContext("section", req.Section)
	}

	enhanced := strings.TrimSpace(result.Text())
	if enhanced == "" {
		span.SetAttributes(attribute.Bool("success", false))
		return Response{}, appErrors.NewEnhanceError(appErrors.ErrCodeEnhanceFailed,
			"Gemini returned an empty response", nil).
			WithContext("section", req.Section)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("enhance.enhanced_length", len(enhanced)),
	)
	return Response{EnhancedContent: enhanced}, nil
}
