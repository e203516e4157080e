package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Creative picks, but keep the tool arguments well-formed.
	model.SetTemperature(1.0)

	// Advertise the single recommendPlace capability. Both arguments are required
	// strings; the model decides whether to call it or answer in free text.
	model.Tools = []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{{
			Name:        RecommendPlaceTool,
			Description: "Shows the user a map of the place provided, with a caption describing why it fits their request.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					ArgLocation: {
						Type:        genai.TypeString,
						Description: "Give a specific place, including country name.",
					},
					ArgCaption: {
						Type:        genai.TypeString,
						Description: "Give the place name and the fascinating reason you selected this particular place. Keep to one or two sentences.",
					},
				},
				Required: []string{ArgLocation, ArgCaption},
			},
		}},
	}}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// RecommendStream opens a streaming generation for the given travel prompt.
func (p *GeminiProvider) RecommendStream(ctx context.Context, prompt string) (Stream, error) {
	// Combine system instructions and user prompt into one channel.
	// Note: While Gemini supports SystemInstruction, appending the user text directly
	// to the instructions keeps the request shape identical across providers.
	fullPrompt := fmt.Sprintf("%s\n\n%s", systemInstructions, prompt)

	iter := p.model.GenerateContentStream(ctx, genai.Text(fullPrompt))
	return &geminiStream{iter: iter}, nil
}

// geminiStream adapts the SDK response iterator to the Stream interface.
type geminiStream struct {
	iter *genai.GenerateContentResponseIterator
}

func (s *geminiStream) Next() (*Chunk, error) {
	resp, err := s.iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("gemini stream: %w", err)
	}

	chunk := &Chunk{}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch v := part.(type) {
			case genai.Text:
				text.WriteString(string(v))
			case genai.FunctionCall:
				chunk.Calls = append(chunk.Calls, FunctionCall{Name: v.Name, Args: v.Args})
			}
		}
	}
	chunk.Text = text.String()
	return chunk, nil
}

// systemInstructions steer the model towards one surprising destination per
// request, delivered through the recommendPlace capability.
const systemInstructions = `Role: You are "Wander", a travel guide whose job is to surprise people with destinations they would never have thought of.

RULES:
1. When the user asks for a place (directly or indirectly), pick ONE destination that genuinely fits the request but is unexpected: prefer lesser-known places over the obvious tourist answer.
2. Deliver the pick by calling ` + RecommendPlaceTool + ` with:
   - ` + ArgLocation + `: a specific, mappable place name including the country (e.g. "Oymyakon, Russia").
   - ` + ArgCaption + `: one or two sentences naming the place and the fascinating reason it fits.
3. Only answer in plain text when the request cannot be answered with a destination at all; keep such answers short and steer the user back to asking about places.
4. Never invent places. Never return coordinates; always a human-readable place name.`
