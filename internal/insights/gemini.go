package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// defaultGenerativeModel handles key-phrase and sentiment generations.
	defaultGenerativeModel = "gemini-2.5-flash-lite"
	// defaultEmbeddingModel backs semantic similarity.
	defaultEmbeddingModel = "text-embedding-004"
	// generationTemperature keeps JSON output consistent across calls.
	generationTemperature = 0.1
	// maxAnalyzedRunes bounds the text sent to the remote service.
	maxAnalyzedRunes = 8000
)

// Gemini is the remote insights provider backed by Google Gemini. Key phrases
// and sentiment come from JSON-mode generations validated against embedded
// schemas; similarity comes from the embedding API. Text quality stays local:
// passive-voice detection is a deterministic regex analysis, not a model call.
type Gemini struct {
	client    *genai.Client
	model     string
	embedding string
	local     *Local
	validate  *validator.Validate
}

// NewGemini creates a Gemini-backed provider.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client:    client,
		model:     defaultGenerativeModel,
		embedding: defaultEmbeddingModel,
		local:     NewLocal(),
		validate:  validator.New(),
	}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

const keyPhrasesPrompt = `Extract the most important key phrases from the document below.
Key phrases are short noun phrases naming skills, technologies, roles, domains or responsibilities.
Return a JSON object with this exact structure:
{"key_phrases": ["<phrase>", ...]}
Return at most 50 phrases. Return ONLY the JSON object.

DOCUMENT:
%s`

type keyPhrasesResponse struct {
	KeyPhrases []string `json:"key_phrases" validate:"required"`
}

// KeyPhrases extracts key phrases via a JSON-mode generation.
func (g *Gemini) KeyPhrases(ctx context.Context, text string) ([]string, error) {
	raw, err := g.generateJSON(ctx, fmt.Sprintf(keyPhrasesPrompt, truncateRunes(text, maxAnalyzedRunes)))
	if err != nil {
		return nil, fmt.Errorf("key phrases: %w", err)
	}

	if err := validateAgainstSchema(keyPhrasesSchema, raw); err != nil {
		return nil, fmt.Errorf("key phrases response: %w", err)
	}

	var resp keyPhrasesResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse key phrases JSON: %w", err)
	}
	if err := g.validate.Struct(&resp); err != nil {
		return nil, fmt.Errorf("key phrases response invalid: %w", err)
	}

	return resp.KeyPhrases, nil
}

const sentimentPrompt = `Classify the overall sentiment of the document below.
Return a JSON object with this exact structure:
{"sentiment": "<positive|neutral|negative|mixed>"}
Return ONLY the JSON object.

DOCUMENT:
%s`

type sentimentResponse struct {
	Sentiment string `json:"sentiment" validate:"required,oneof=positive neutral negative mixed"`
}

// Sentiment classifies document sentiment via a JSON-mode generation.
func (g *Gemini) Sentiment(ctx context.Context, text string) (types.Sentiment, error) {
	raw, err := g.generateJSON(ctx, fmt.Sprintf(sentimentPrompt, truncateRunes(text, maxAnalyzedRunes)))
	if err != nil {
		return types.Sentiment{}, fmt.Errorf("sentiment: %w", err)
	}

	if err := validateAgainstSchema(sentimentSchema, raw); err != nil {
		return types.Sentiment{}, fmt.Errorf("sentiment response: %w", err)
	}

	var resp sentimentResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return types.Sentiment{}, fmt.Errorf("failed to parse sentiment JSON: %w", err)
	}
	if err := g.validate.Struct(&resp); err != nil {
		return types.Sentiment{}, fmt.Errorf("sentiment response invalid: %w", err)
	}

	return types.Sentiment{Sentiment: resp.Sentiment}, nil
}

// TextQuality delegates to the local regex analyzer; passive-voice detection
// needs no remote call.
func (g *Gemini) TextQuality(ctx context.Context, text string) (types.TextQuality, error) {
	return g.local.TextQuality(ctx, text)
}

// Similarity embeds both texts and returns their cosine similarity clamped to
// [0,1].
func (g *Gemini) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := g.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := g.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	if len(va) != len(vb) || len(va) == 0 {
		return 0, fmt.Errorf("embedding dimensions mismatch: %d vs %d", len(va), len(vb))
	}

	var dot, na, nb float64
	for i := range va {
		dot += float64(va[i]) * float64(vb[i])
		na += float64(va[i]) * float64(va[i])
		nb += float64(vb[i]) * float64(vb[i])
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}

	cos := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if cos < 0 {
		cos = 0
	}
	if cos > 1 {
		cos = 1
	}
	return cos, nil
}

func (g *Gemini) embed(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.embedding)
	resp, err := em.EmbedContent(ctx, genai.Text(truncateRunes(text, maxAnalyzedRunes)))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding response is empty")
	}
	return resp.Embedding.Values, nil
}

// generateJSON runs a low-temperature JSON-mode generation and strips any
// markdown wrapper from the response.
func (g *Gemini) generateJSON(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(generationTemperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// extractTextFromResponse concatenates the text parts of the first candidate.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return out, nil
}

// truncateRunes shortens s to at most limit runes.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
