package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"wander/internal/ai"
)

// Service orchestrates one prompt dispatch: it opens a streaming generation,
// folds the chunk stream into sink side effects, and reports the terminal outcome.
type Service struct {
	provider ai.Provider
}

// NewService creates a Service backed by the given provider.
func NewService(provider ai.Provider) *Service {
	return &Service{provider: provider}
}

// Dispatch sends the prompt to the provider and consumes the response stream
// in arrival order. Every valid recommendPlace invocation fires
// sink.ShowPlace immediately (later invocations overwrite earlier ones at
// the sink); if none fired and the accumulated text is not blank, the text
// is shown once as a fallback after the stream is exhausted.
//
// The returned Result mirrors the last sink effect: the last Place, else the
// Text fallback, else nil when the stream produced nothing visible. Any
// transport error aborts the dispatch; callers surface all such errors as
// one generic failure. The prompt is forwarded as-is; callers must reject
// empty input beforehand.
func (s *Service) Dispatch(ctx context.Context, prompt string, sink Sink) (*Result, error) {
	stream, err := s.provider.RecommendStream(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("open recommendation stream: %w", err)
	}

	// Accumulator state, scoped to this dispatch.
	var accumulated strings.Builder
	var lastPlace *Place

	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read recommendation stream: %w", err)
		}

		accumulated.WriteString(chunk.Text)

		for _, call := range chunk.Calls {
			if call.Name != ai.RecommendPlaceTool {
				continue
			}
			location, locOK := call.Args[ai.ArgLocation].(string)
			caption, capOK := call.Args[ai.ArgCaption].(string)
			if !locOK || !capOK {
				// Malformed arguments: skip the invocation, keep consuming.
				continue
			}
			sink.ShowPlace(location, caption)
			lastPlace = &Place{Location: location, Caption: caption}
		}
	}

	if lastPlace != nil {
		return &Result{Place: lastPlace}, nil
	}

	// Text fallback fires at most once and only when no invocation did.
	// The blank check trims; the displayed body does not.
	body := accumulated.String()
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	sink.ShowText(body)
	return &Result{Text: body}, nil
}
