// README: Scenario definitions; endpoint checks plus live recommendation prompts.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 90 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	var results []Result
	for _, tc := range cases {
		start := time.Now()
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		res.Latency = time.Since(start)
		fmt.Printf("[%s] %s (%s) %s\n", res.Status, res.Name, res.Latency.Round(time.Millisecond), res.Note)
		results = append(results, res)
	}
	return results
}

var cases = []TestCase{
	{
		Name: "health endpoint",
		Run: func(ctx context.Context, r *Runner) Result {
			status, body, err := r.get(ctx, "/health")
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			if status != http.StatusOK || !strings.Contains(body, "OK") {
				return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", status)}
			}
			return Result{Status: "PASS"}
		},
	},
	{
		Name: "preset list",
		Run: func(ctx context.Context, r *Runner) Result {
			status, body, err := r.get(ctx, "/api/presets")
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			if status != http.StatusOK || !strings.Contains(body, "cold") {
				return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", status)}
			}
			return Result{Status: "PASS"}
		},
	},
	{
		Name: "missing prompt rejected",
		Run: func(ctx context.Context, r *Runner) Result {
			status, _, err := r.get(ctx, "/api/recommend")
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			if status != http.StatusBadRequest {
				return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d, want 400", status)}
			}
			return Result{Status: "PASS"}
		},
	},
	{
		Name: "cold place recommendation",
		Run: func(ctx context.Context, r *Runner) Result {
			return r.recommendScenario(ctx, "Where is somewhere really cold?", "event:place")
		},
	},
	{
		Name: "tropical place recommendation",
		Run: func(ctx context.Context, r *Runner) Result {
			return r.recommendScenario(ctx, "Where is somewhere tropical and remote?", "event:place")
		},
	},
	{
		Name: "non-travel prompt still terminates",
		Run: func(ctx context.Context, r *Runner) Result {
			// Any terminal event is acceptable here; the reducer may answer with
			// a place, a text fallback, or nothing, but "done" must always arrive.
			return r.recommendScenario(ctx, "Explain quicksort.", "event:done")
		},
	},
}

// recommendScenario runs one dispatch over SSE and checks the body for the
// wanted event marker. Scenarios that spend real AI calls are skipped unless
// -live is set.
func (r *Runner) recommendScenario(ctx context.Context, prompt, want string) Result {
	if !r.cfg.Live {
		return Result{Status: "SKIP", Note: "live scenarios disabled"}
	}
	status, body, err := r.get(ctx, "/api/recommend?prompt="+url.QueryEscape(prompt))
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	if status == http.StatusTooManyRequests {
		return Result{Status: "SKIP", Note: "daily quota exhausted"}
	}
	if status != http.StatusOK {
		return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", status)}
	}
	if strings.Contains(body, "event:error") {
		return Result{Status: "FAIL", Note: "service error event"}
	}
	if !strings.Contains(body, want) {
		return Result{Status: "FAIL", Note: "missing " + want}
	}
	return Result{Status: "PASS"}
}

func (r *Runner) get(ctx context.Context, path string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, "", err
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(body), nil
}
