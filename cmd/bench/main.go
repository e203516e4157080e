// README: Scenario runner; replays recommendation prompts against a live server and prints results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	bench := NewRunner(cfg)
	results := bench.RunAll(ctx)

	fmt.Println("\n== Summary ==")
	pass, fail, skipped := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case "PASS":
			pass++
		case "FAIL":
			fail++
		case "SKIP":
			skipped++
		}
	}
	fmt.Printf("PASS=%d FAIL=%d SKIP=%d\n", pass, fail, skipped)

	if fail > 0 {
		os.Exit(1)
	}
	if cfg.Strict && skipped > 0 {
		os.Exit(1)
	}
}

type Config struct {
	BaseURL string
	Strict  bool
	Timeout time.Duration
	Live    bool
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", envOrDefault("WANDER_BENCH_BASE_URL", "http://localhost:8080"), "API base URL")
	flag.BoolVar(&cfg.Strict, "strict", envOrDefaultBool("WANDER_BENCH_STRICT", false), "Fail on skipped scenarios")
	flag.DurationVar(&cfg.Timeout, "timeout", envOrDefaultDuration("WANDER_BENCH_TIMEOUT", 120*time.Second), "Total timeout")
	flag.BoolVar(&cfg.Live, "live", envOrDefaultBool("WANDER_BENCH_LIVE", true), "Run scenarios that spend real AI calls")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
