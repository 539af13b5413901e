package service

import (
	"context"
	"fmt"

	"github.com/SDhinakar/Interview-Prep-Backend/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// LLMClient is the only surface the rest of the application sees of the
// generative model. Keeping it this narrow lets every normalization path
// be exercised with canned text in tests.
type LLMClient interface {
	// GenerateContent performs a one-shot generation call.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// SendChatMessage sends the prompt through a fresh chat session.
	SendChatMessage(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient builds the Gemini-backed LLMClient. With no API key
// configured the client is still constructed but every call fails, which
// the availability-first endpoints absorb through their fallbacks.
func NewGeminiClient(cfg *config.Config) (LLMClient, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AI endpoints will rely on fallback output.")
		return &geminiClient{model: nil}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash-lite")
	model.SetTemperature(1)
	model.SetTopP(0.95)
	model.SetTopK(40)
	model.SetMaxOutputTokens(2048)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	return &geminiClient{model: model}, nil
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini GenerateContent call failed")
		return "", err
	}
	return textFromResponse(resp)
}

func (c *geminiClient) SendChatMessage(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	chat := c.model.StartChat()
	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini chat call failed")
		return "", err
	}
	return textFromResponse(resp)
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text, nil
}
