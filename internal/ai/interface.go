package ai

import (
	"context"
)

// Stream is a lazy, finite, non-restartable sequence of response chunks.
// Next returns io.EOF once the stream is exhausted; any other error means
// the transport failed mid-stream and the stream must be abandoned.
type Stream interface {
	Next() (*Chunk, error)
}

// Provider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type Provider interface {
	// RecommendStream opens a streaming generation for the given prompt with the
	// recommendPlace capability advertised. The prompt is sent as-is; callers are
	// responsible for rejecting empty input.
	RecommendStream(ctx context.Context, prompt string) (Stream, error)
}
