package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"wander/internal/ai"
	"wander/internal/modules/recommend"
)

// stdoutSink prints presentation effects as they fire.
type stdoutSink struct{}

func (stdoutSink) ShowPlace(location, caption string) {
	fmt.Printf("Place: %s\nCaption: %s\n", location, caption)
}

func (stdoutSink) ShowText(body string) {
	fmt.Printf("Text: %s\n", body)
}

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	prompt := "Where is somewhere really cold?"
	if len(os.Args) > 1 {
		prompt = strings.Join(os.Args[1:], " ")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey, "gemini-2.0-flash")
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	fmt.Printf("User: %s\n", prompt)

	svc := recommend.NewService(provider)
	result, err := svc.Dispatch(ctx, prompt, stdoutSink{})
	if err != nil {
		log.Fatalf("Dispatch failed: %v", err)
	}
	if result == nil {
		fmt.Println("(no visible result)")
	}
}
